// Package mem implements the platform byte load/store primitive.
//
// One byte is the only word size this library touches, and one indivisible
// access is the only operation it needs. Two providers exist, selected at
// build time:
//   - mem_avr.go: single-instruction volatile access on the TinyGo AVR target
//   - mem_host.go: process-wide lock fallback for every other platform
//
// The AVR provider has no locking overhead: an 8-bit LD*/ST* instruction is
// already indivisible with respect to interrupts. The host provider exists
// only so that tests, examples, and the avrstress tool can run on a
// general-purpose machine; it is never a production code path.
//
// Both providers give full sequentially consistent ordering: from the point
// of view of any other context (interrupt handler on AVR, OS thread on the
// host) an access is never observed half-done, and surrounding memory
// operations are not reordered across it.
//
// API:
//   - LoadByte(addr): one atomic byte read
//   - StoreByte(addr, v): one atomic byte write
//   - Backend() / Lockless(): identify the compiled-in provider
package mem
