//go:build !amd64 && !arm64

package aes

// cpuSupportsAES always reports false on architectures this package
// has no native AES round instruction backend for; Engine uses the
// software T-table backend unconditionally there.
func cpuSupportsAES() bool {
	return false
}
