// Package avratomic provides a fast atomic type for 8-bit values on AVR
// microcontrollers.
//
// AVR has no multi-byte atomic instructions and no atomic read-modify-write,
// but a single 8-bit load or store is indivisible with respect to
// interrupts. [Cell] builds on exactly that guarantee: one byte of shared
// storage with atomic, sequentially consistent Load and Store, safe to share
// between the main execution context and interrupt handlers without
// disabling interrupts and without any locking overhead.
//
// # Quick Start
//
//	var ready avratomic.Cell[avratomic.Bool]
//	var level avratomic.Cell[avratomic.Uint8]
//
//	// Any context, any time:
//	level.Store(0x42)        // main loop
//	if ready.Load() { ... }  // interrupt handler
//
// The zero Cell is ready to use and holds the zero byte.
//
// # Logical Types
//
// A Cell stores one byte, but is parameterized by a logical type describing
// what that byte means. The [Convertible] capability maps a logical value to
// and from its one-byte encoding. [Uint8], [Int8] and [Bool] ship ready-made;
// any user type that can round-trip through one byte can implement
// Convertible and be stored atomically:
//
//	type Gear uint8
//
//	func (Gear) DecodeByte(raw byte) Gear { return Gear(raw) }
//	func (g Gear) EncodeByte() byte       { return byte(g) }
//
//	var gear avratomic.Cell[Gear]
//
// # Scope
//
// Load and Store are the entire operation set. There is no compare-and-swap,
// no fetch-and-add, and no weaker memory ordering: AVR exposes no atomic RMW
// instruction for a byte, so any RMW would have to disable interrupts, which
// this type exists to avoid. Callers that layer read-then-write logic on top
// of a Cell own the resulting race.
//
// # Targets
//
// On the TinyGo AVR target every access compiles to a single volatile
// instruction. On any other platform a process-wide lock emulates the same
// guarantee; that path exists for tests, examples, and the avrstress tool
// only. [GetInfo] reports which backend is compiled in.
package avratomic
