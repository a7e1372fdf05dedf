//go:build !amd64

package aes

import "errors"

// newHardwareBackend has no native-instruction implementation on this
// architecture. CPUSupportsAES already reports false for every
// architecture except amd64 and arm64 (cpu_generic.go), and arm64's
// ARMv8 Cryptography Extensions are detected (cpu_arm64.go) but have no
// asm backend wired up in this core yet — see DESIGN.md. Either way
// Engine.SetKey falls back to the software T-table backend whenever
// this returns an error, so returning one here is always safe.
func newHardwareBackend(forward, inverse []word, nr int) (backend, error) {
	return nil, errors.New("aes: no hardware backend on this architecture")
}
