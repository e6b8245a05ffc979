// doctor.go implements the 'avrstress doctor' command.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/mbuesch/avr-atomic/avratomic"
)

// minTinyGoVersion is the oldest TinyGo release whose AVR support this
// library is tested against.
const minTinyGoVersion = "v0.30.0"

// doctorCommand implements the 'avrstress doctor' command.
//
// The library itself runs anywhere, but the AVR backend only exists when
// built with TinyGo for an AVR target. doctor checks whether this machine
// can produce such a build:
//  1. Report the host toolchain and the backend compiled into this binary
//  2. Locate tinygo on PATH
//  3. Parse its version and compare against the minimum supported release
func doctorCommand(args []string) {
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "Usage: avrstress doctor\n")
		os.Exit(1)
	}

	info := avratomic.GetInfo()
	fmt.Printf("avr-atomic %s\n", info.Version)
	fmt.Printf("Host:           %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Printf("This binary:    backend %s (lockless: %v)\n", info.Backend, info.Lockless)

	path, err := exec.LookPath("tinygo")
	if err != nil {
		fmt.Println("TinyGo:         not found on PATH")
		fmt.Println()
		fmt.Println("AVR builds are NOT possible on this machine.")
		fmt.Println("Install TinyGo " + strings.TrimPrefix(minTinyGoVersion, "v") + " or newer: https://tinygo.org")
		os.Exit(1)
	}

	out, err := exec.Command(path, "version").Output()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: running tinygo version: %v\n", err)
		os.Exit(1)
	}

	version, err := parseTinyGoVersion(string(out))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("TinyGo:         %s (%s)\n", version, path)
	fmt.Println()

	if semver.Compare(version, minTinyGoVersion) < 0 {
		fmt.Printf("TinyGo %s is older than the minimum supported %s.\n", version, minTinyGoVersion)
		fmt.Println("AVR builds may not work; please upgrade.")
		os.Exit(1)
	}

	fmt.Println("AVR builds are possible on this machine, e.g.:")
	fmt.Println("    tinygo build -target=arduino ./...")
}

// parseTinyGoVersion extracts a canonical semver out of `tinygo version`
// output, e.g. "tinygo version 0.34.0 linux/amd64 (using go 1.23.2)".
func parseTinyGoVersion(out string) (string, error) {
	fields := strings.Fields(out)
	for i, f := range fields {
		if f != "version" || i+1 >= len(fields) {
			continue
		}
		v := "v" + strings.TrimPrefix(fields[i+1], "v")
		if !semver.IsValid(v) {
			return "", fmt.Errorf("parse tinygo version: %q is not a valid version", fields[i+1])
		}
		return v, nil
	}
	return "", fmt.Errorf("parse tinygo version: no version in %q", strings.TrimSpace(out))
}
