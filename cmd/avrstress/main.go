// Package main implements the avrstress CLI tool.
//
// avrstress verifies the avr-atomic byte primitive on a general-purpose
// host. The AVR target gets its atomicity from a single machine instruction
// and has nothing to verify at runtime; the host fallback emulates that
// guarantee with a lock, and this tool hammers the emulation with
// concurrent writers and readers looking for torn values.
//
// Usage:
//
//	avrstress run [config.toml]   # Run the torn-value stress harness
//	avrstress doctor              # Check for an AVR-capable TinyGo toolchain
//	avrstress version             # Show version information
//
// This is the CLI entry point for the stress tool.
package main

import (
	"fmt"
	"os"

	"github.com/mbuesch/avr-atomic/avratomic"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "run":
		runCommand(os.Args[2:])
	case "doctor":
		doctorCommand(os.Args[2:])
	case "version", "--version", "-v":
		info := avratomic.GetInfo()
		fmt.Printf("avrstress version %s (backend: %s)\n", info.Version, info.Backend)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`avrstress - avr-atomic verification tool

USAGE:
    avrstress <command> [arguments]

COMMANDS:
    run        Run the torn-value stress harness
    doctor     Check for an AVR-capable TinyGo toolchain
    version    Show version information
    help       Show this help message

EXAMPLES:
    # Stress the host fallback with the default workload
    avrstress run

    # Stress with a custom workload
    avrstress run stress.toml

    # Check whether AVR firmware can be built on this machine
    avrstress doctor

CONFIG FILE (TOML):
    writers    = 4                          # storing goroutines
    readers    = 2                          # loading goroutines
    iterations = 50000                      # stores per writer
    values     = [15, 240, 85, 170]         # distinct per-writer bytes
`)
}
