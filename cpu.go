package aes

// CPUSupportsAES reports whether the host CPU exposes the AES-NI
// instruction set extensions (or an architecture-equivalent native AES
// round instruction set: the ARMv8 Cryptography Extensions' AES
// instructions on arm64). The query is pure, cheap, and its result is
// stable for the lifetime of the process; Engine.SetKey consults it
// once per call and callers may also call it directly.
//
// On architectures Go does not support AES acceleration for, this
// always returns false and Engine falls back to the software T-table
// backend.
func CPUSupportsAES() bool {
	return cpuSupportsAES()
}
