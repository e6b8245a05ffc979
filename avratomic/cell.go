package avratomic

import "github.com/mbuesch/avr-atomic/internal/mem"

// Cell is one byte of shared storage with atomic load and store.
//
// The type parameter is a compile-time tag only; a Cell occupies exactly one
// byte regardless of T. The stored byte is always a value produced by
// T.EncodeByte, or 0 before the first store.
//
// A Cell may be shared freely: any number of readers and writers, from any
// execution context, may call Load and Store at any time without external
// synchronization. The Cell itself is the synchronization boundary. On AVR
// this includes interrupt handlers; on the host fallback it includes OS
// threads.
//
// The zero Cell holds the zero byte and is ready to use. A Cell must not be
// copied after first use: copies would each hold an independent byte.
type Cell[T Convertible[T]] struct {
	raw byte
}

// New returns a Cell holding the zero byte.
//
// Equivalent to the zero value; provided for symmetry with [NewValue].
func New[T Convertible[T]]() *Cell[T] {
	return &Cell[T]{}
}

// NewValue returns a Cell holding the encoding of v.
//
// The initial write happens before the Cell can be shared, so it does not go
// through the atomic primitive.
func NewValue[T Convertible[T]](v T) *Cell[T] {
	return &Cell[T]{raw: v.EncodeByte()}
}

// Load atomically reads the current value.
//
// The result is always a valid T: only encoded bytes (or the zero default)
// are ever stored. The read is a full sequentially consistent barrier.
func (c *Cell[T]) Load() T {
	var anchor T
	return anchor.DecodeByte(mem.LoadByte(&c.raw))
}

// Store atomically writes a new value.
//
// The write is a full sequentially consistent barrier.
func (c *Cell[T]) Store(v T) {
	mem.StoreByte(&c.raw, v.EncodeByte())
}

// LoadRaw atomically reads the stored byte without decoding it.
func (c *Cell[T]) LoadRaw() byte {
	return mem.LoadByte(&c.raw)
}

// StoreRaw atomically writes a raw byte without encoding it.
//
// The caller must ensure raw is a byte that T.DecodeByte accepts, i.e. one
// that T.EncodeByte can produce or 0. Storing any other byte breaks the
// [Convertible] contract and makes the result of the next Load unspecified.
// Prefer [Cell.Store], which cannot violate the contract.
func (c *Cell[T]) StoreRaw(raw byte) {
	mem.StoreByte(&c.raw, raw)
}
