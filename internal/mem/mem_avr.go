// Copyright 2025 The avr-atomic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build avr

// Byte access primitive for the TinyGo AVR target.
//
// An 8-bit load or store is atomic on AVR: the CPU cannot take an interrupt
// in the middle of a single LD, LDS, LDD, ST, STS or STD instruction. The
// volatile access below is expected to compile to exactly one such
// instruction and to never be split, merged, or reordered against other
// volatile accesses by the compiler.
//
// This is the same assumption most C and Rust code on AVR is built on. It is
// not a formal guarantee of the toolchain, but it is load-bearing across the
// whole AVR ecosystem and a future compiler is very unlikely to break it.
// Inline assembly would make the guarantee explicit, but would also force an
// indirect memory access where the compiler can otherwise emit a direct one
// (LDS/STS), so it is deliberately not used here.
//
// There is no locking and no interrupt masking on this path.

package mem

import "runtime/volatile"

// loadByte is the AVR provider for LoadByte.
func loadByte(addr *byte) byte {
	return volatile.LoadUint8(addr)
}

// storeByte is the AVR provider for StoreByte.
func storeByte(addr *byte, v byte) {
	volatile.StoreUint8(addr, v)
}

// Backend identifies the compiled-in access provider.
func Backend() string {
	return "avr-volatile"
}

// Lockless reports whether the provider works without any lock.
// Always true on AVR: the instruction itself is the atomicity guarantee.
func Lockless() bool {
	return true
}
