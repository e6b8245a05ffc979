package avratomic

import "github.com/mbuesch/avr-atomic/internal/mem"

// Version information for the avr-atomic library.
const (
	// Version is the current version of the library.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info describes the library build.
type Info struct {
	// Version is the library version string.
	Version string

	// Backend names the compiled-in byte access provider
	// ("avr-volatile" on the AVR target, "host-lock" elsewhere).
	Backend string

	// Lockless reports whether accesses complete without any lock.
	// True only on the AVR target.
	Lockless bool
}

// GetInfo returns information about the compiled-in backend.
//
// Example:
//
//	info := avratomic.GetInfo()
//	fmt.Printf("avr-atomic %s (%s)\n", info.Version, info.Backend)
func GetInfo() Info {
	return Info{
		Version:  Version,
		Backend:  mem.Backend(),
		Lockless: mem.Lockless(),
	}
}
