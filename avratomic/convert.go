package avratomic

// Convertible maps a logical type T to and from its one-byte encoding.
//
// Implementations must uphold two rules:
//
//   - DecodeByte must produce a valid T for every byte EncodeByte can
//     return, AND for the byte 0, even if EncodeByte never returns 0.
//     Zero is the forced initial state of every [Cell] before the first
//     store.
//   - DecodeByte is never passed any other byte (unless the caller broke
//     the [Cell.StoreRaw] contract).
//
// DecodeByte is called on a dispatch anchor, typically the zero value of T;
// implementations must build the result from raw alone and never read the
// receiver. Dispatch is resolved at compile time through the generic
// constraint, so a Cell access carries no interface or reflection overhead.
type Convertible[T any] interface {
	// EncodeByte returns the one-byte encoding of the value.
	EncodeByte() byte

	// DecodeByte builds a value from its one-byte encoding.
	DecodeByte(raw byte) T
}

// Uint8 is an unsigned 8-bit logical type with identity encoding.
type Uint8 uint8

// DecodeByte implements [Convertible].
func (Uint8) DecodeByte(raw byte) Uint8 { return Uint8(raw) }

// EncodeByte implements [Convertible].
func (v Uint8) EncodeByte() byte { return byte(v) }

// Int8 is a signed 8-bit logical type. The encoding keeps the two's
// complement bit pattern unchanged.
type Int8 int8

// DecodeByte implements [Convertible].
func (Int8) DecodeByte(raw byte) Int8 { return Int8(raw) }

// EncodeByte implements [Convertible].
func (v Int8) EncodeByte() byte { return byte(v) }

// Bool is a boolean logical type. False encodes as 0 and true as 1; any
// nonzero byte decodes as true.
type Bool bool

// DecodeByte implements [Convertible].
func (Bool) DecodeByte(raw byte) Bool { return raw != 0 }

// EncodeByte implements [Convertible].
func (v Bool) EncodeByte() byte {
	if v {
		return 1
	}
	return 0
}
