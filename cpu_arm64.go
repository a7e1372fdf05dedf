//go:build arm64

package aes

import "golang.org/x/sys/cpu"

// cpuSupportsAES reports the ARMv8 Cryptography Extensions' AES
// instruction support, the architecture-equivalent of AES-NI that
// spec.md Section 4.5 allows for "other architectures".
func cpuSupportsAES() bool {
	return cpu.ARM64.HasAES
}
