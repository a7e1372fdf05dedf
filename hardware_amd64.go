//go:build amd64

package aes

import "errors"

// hardwareBackend is the AES-NI-accelerated backend. It deliberately
// reuses the same forward/inverse round-key schedule the software
// engine computes (see key.go) rather than re-deriving it with
// AESKEYGENASSIST: spec.md Section 4.6 only requires the hardware
// engine produce "identical round-key material derived from the same
// key", and reusing the Go-computed schedule makes that identity true
// by construction instead of by a second, asm-only implementation that
// this repo has no way to exercise against hardware in CI. Only the
// per-block round function — AESENC/AESENCLAST for encryption,
// AESDEC/AESDECLAST for decryption — runs as native instructions.
//
// The decryption path is FIPS-197 Section 5.3.5's "equivalent inverse
// cipher": AESDEC expects round keys already InvMixColumns-transformed
// in the middle rounds, which is exactly what expandInverseSchedule
// already produces for the T-table Dec path.
type hardwareBackend struct {
	encKeys []byte // (nr+1) 16-byte round keys, forward order
	decKeys []byte // (nr+1) 16-byte round keys, equivalent-inverse-cipher order
	nr      int
}

//go:noescape
func encryptBlockAsm(nr int, xk *byte, dst, src *byte)

//go:noescape
func decryptBlockAsm(nr int, xk *byte, dst, src *byte)

func newHardwareBackend(forward, inverse []word, nr int) (backend, error) {
	if len(forward) != nb*(nr+1) || len(inverse) != nb*(nr+1) {
		return nil, errors.New("aes: malformed key schedule")
	}

	return &hardwareBackend{
		encKeys: packSchedule(forward, nr),
		decKeys: packSchedule(inverse, nr),
		nr:      nr,
	}, nil
}

// packSchedule flattens a (Nr+1)*4-word schedule into (Nr+1) 16-byte
// round keys in the natural, state-compatible byte order (the same
// layout Block uses), so the asm round function can MOVOU them
// directly into XMM registers alongside the plaintext/ciphertext.
func packSchedule(w []word, nr int) []byte {
	out := make([]byte, 16*(nr+1))
	for round := 0; round <= nr; round++ {
		for c := 0; c < nb; c++ {
			storeWord(w[nb*round+c], c, out[16*round:])
		}
	}
	return out
}

func (b *hardwareBackend) encrypt(dst, src []byte) {
	encryptBlockAsm(b.nr, &b.encKeys[0], &dst[0], &src[0])
}

func (b *hardwareBackend) decrypt(dst, src []byte) {
	decryptBlockAsm(b.nr, &b.decKeys[0], &dst[0], &src[0])
}
