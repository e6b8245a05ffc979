// Copyright 2025 The avr-atomic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Platform-independent entry points for the byte access primitive.
//
// The actual loadByte()/storeByte() providers are selected by build tags:
//   - mem_avr.go: TinyGo AVR target, single volatile instruction
//   - mem_host.go: everything else, process-wide lock fallback
//
// API:
//   - LoadByte(): main load entry point
//   - StoreByte(): main store entry point
//   - Backend(), Lockless(): provided by the active provider file

package mem

// LoadByte atomically reads one byte from addr.
//
// The read is a single indivisible access with full sequentially consistent
// ordering. It cannot fail; addr must be a valid byte location.
func LoadByte(addr *byte) byte {
	return loadByte(addr)
}

// StoreByte atomically writes v to addr.
//
// The write is a single indivisible access with full sequentially consistent
// ordering. It cannot fail; addr must be a valid byte location.
func StoreByte(addr *byte, v byte) {
	storeByte(addr, v)
}
