package blockcipher

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
)

// ErrInvalidPadding is returned when PKCS#7 padding fails to validate
// during Unpad.
var ErrInvalidPadding = errors.New("blockcipher: invalid padding")

// Pad applies PKCS#7 padding so that len(data) becomes a multiple of
// blockSize. A full block of padding is appended when data is already
// block-aligned, so Unpad can always find and strip it unambiguously.
func Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - (len(data) % blockSize)
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

// Unpad strips and validates PKCS#7 padding.
func Unpad(data []byte) ([]byte, error) {
	n := len(data)
	if n == 0 {
		return nil, ErrInvalidPadding
	}

	padLen := int(data[n-1])
	if padLen == 0 || padLen > n {
		return nil, ErrInvalidPadding
	}

	for i := n - padLen; i < n; i++ {
		if data[i] != byte(padLen) {
			return nil, ErrInvalidPadding
		}
	}

	return data[:n-padLen], nil
}

// NewECBMode returns a Mode that encrypts/decrypts each block
// independently. ECB leaks block-level equality and should not be used
// for anything beyond demonstration.
func NewECBMode(cipher Cipher) Mode {
	return &ecbMode{cipher: cipher}
}

type ecbMode struct {
	cipher Cipher
}

func (m *ecbMode) Encrypt(plaintext []byte) []byte {
	bs := m.cipher.BlockLength()
	padded := Pad(plaintext, bs)
	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += bs {
		m.cipher.Encrypt(out[i:i+bs], padded[i:i+bs])
	}
	return out
}

func (m *ecbMode) Decrypt(ciphertext []byte) []byte {
	bs := m.cipher.BlockLength()
	out := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += bs {
		m.cipher.Decrypt(out[i:i+bs], ciphertext[i:i+bs])
	}
	unpadded, err := Unpad(out)
	if err != nil {
		return out
	}
	return unpadded
}

// NewCBCMode returns a Mode chaining blocks via XOR with the previous
// ciphertext block, starting from iv.
func NewCBCMode(cipher Cipher, iv []byte) Mode {
	return &cbcMode{cipher: cipher, iv: append([]byte(nil), iv...)}
}

type cbcMode struct {
	cipher Cipher
	iv     []byte
}

func (m *cbcMode) Encrypt(plaintext []byte) []byte {
	bs := m.cipher.BlockLength()
	padded := Pad(plaintext, bs)
	out := make([]byte, len(padded))
	prev := m.iv

	for i := 0; i < len(padded); i += bs {
		block := xorBytes(padded[i:i+bs], prev)
		m.cipher.Encrypt(out[i:i+bs], block)
		prev = out[i : i+bs]
	}
	return out
}

func (m *cbcMode) Decrypt(ciphertext []byte) []byte {
	bs := m.cipher.BlockLength()
	out := make([]byte, len(ciphertext))
	prev := m.iv

	for i := 0; i < len(ciphertext); i += bs {
		decrypted := make([]byte, bs)
		m.cipher.Decrypt(decrypted, ciphertext[i:i+bs])
		copy(out[i:i+bs], xorBytes(decrypted, prev))
		prev = ciphertext[i : i+bs]
	}

	unpadded, err := Unpad(out)
	if err != nil {
		return out
	}
	return unpadded
}

// NewCTRMode returns a Mode that turns the cipher into a keystream
// generator over a big-endian counter seeded from nonce, so encryption
// and decryption are the same XOR operation.
func NewCTRMode(cipher Cipher, nonce uint64) Mode {
	return &ctrMode{cipher: cipher, counter: nonce}
}

type ctrMode struct {
	cipher  Cipher
	counter uint64
}

func (m *ctrMode) crypt(data []byte) []byte {
	bs := m.cipher.BlockLength()
	out := make([]byte, len(data))
	counter := m.counter

	for i := 0; i < len(data); i += bs {
		counterBlock := make([]byte, bs)
		binary.BigEndian.PutUint64(counterBlock[bs-8:], counter)

		keystream := make([]byte, bs)
		m.cipher.Encrypt(keystream, counterBlock)

		end := i + bs
		if end > len(data) {
			end = len(data)
		}
		for j := i; j < end; j++ {
			out[j] = data[j] ^ keystream[j-i]
		}
		counter++
	}
	return out
}

func (m *ctrMode) Encrypt(plaintext []byte) []byte  { return m.crypt(plaintext) }
func (m *ctrMode) Decrypt(ciphertext []byte) []byte { return m.crypt(ciphertext) }

// xorBytes XORs two equal-length byte slices into a freshly allocated
// result.
func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// RandomIV returns blockSize random bytes suitable for use as a CBC IV.
func RandomIV(blockSize int) ([]byte, error) {
	iv := make([]byte, blockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, err
	}
	return iv, nil
}
