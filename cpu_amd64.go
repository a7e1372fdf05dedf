//go:build amd64

package aes

import "golang.org/x/sys/cpu"

// cpuSupportsAES queries CPUID leaf 1, ECX bit 25 (mask 0x02000000) via
// golang.org/x/sys/cpu, which parses the same leaf spec.md Section 4.5
// describes rather than this package reimplementing CPUID dispatch.
func cpuSupportsAES() bool {
	return cpu.X86.HasAES
}
