// Copyright 2025 The avr-atomic Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !avr

// Byte access fallback for non-AVR platforms.
//
// General-purpose hosts run this library only for tests, examples, and the
// avrstress verification tool, so performance does not matter here. A single
// process-wide mutex is held for the duration of each access. The mutex
// gives both properties the AVR instruction gives for free:
//   - indivisibility: no other context can observe the access half-done
//   - ordering: lock acquire/release brackets the access, so surrounding
//     memory operations cannot be reordered across it
//
// Blocking is bounded by the duration of one concurrent byte access.

package mem

import "sync"

// lock serializes every byte access in the process.
var lock sync.Mutex

// loadByte is the host provider for LoadByte.
func loadByte(addr *byte) byte {
	lock.Lock()
	v := *addr
	lock.Unlock()
	return v
}

// storeByte is the host provider for StoreByte.
func storeByte(addr *byte, v byte) {
	lock.Lock()
	*addr = v
	lock.Unlock()
}

// Backend identifies the compiled-in access provider.
func Backend() string {
	return "host-lock"
}

// Lockless reports whether the provider works without any lock.
// Always false on the host fallback.
func Lockless() bool {
	return false
}
