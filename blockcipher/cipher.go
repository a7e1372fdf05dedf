package blockcipher

// Cipher is satisfied by *aes.Engine: a keyed block cipher that
// processes exactly one BlockSize-length block per call. Modes in this
// package depend only on this interface so they can be exercised
// against a fake cipher in tests without pulling in a real key
// schedule.
type Cipher interface {
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
	BlockLength() int
}

// Mode is a cipher mode of operation over arbitrary-length byte
// slices, built on top of a Cipher.
type Mode interface {
	Encrypt(plaintext []byte) []byte
	Decrypt(ciphertext []byte) []byte
}
