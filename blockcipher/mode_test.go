package blockcipher_test

import (
	"bytes"
	"testing"

	aes "github.com/ny0m/aesengine"
	"github.com/ny0m/aesengine/blockcipher"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T) *aes.Engine {
	t.Helper()
	engine, err := aes.Construct([]byte("ABCDEFGHIJKLMNOP"))
	require.NoError(t, err)
	return engine
}

func TestPadUnpadRoundTrip(t *testing.T) {
	for n := 0; n < 64; n++ {
		data := bytes.Repeat([]byte{0x42}, n)
		padded := blockcipher.Pad(data, 16)
		if len(padded)%16 != 0 {
			t.Fatalf("Pad(%d bytes) length %d is not block-aligned", n, len(padded))
		}
		unpadded, err := blockcipher.Unpad(padded)
		require.NoError(t, err)
		if !bytes.Equal(unpadded, data) {
			t.Fatalf("Unpad(Pad(data)) = %x, want %x", unpadded, data)
		}
	}
}

func TestUnpadRejectsGarbage(t *testing.T) {
	_, err := blockcipher.Unpad(nil)
	require.Error(t, err)

	_, err = blockcipher.Unpad([]byte{0, 0, 0, 0})
	require.Error(t, err)
}

func TestECBRoundTrip(t *testing.T) {
	mode := blockcipher.NewECBMode(testEngine(t))
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	ct := mode.Encrypt(plaintext)
	pt := mode.Decrypt(ct)

	require.Equal(t, plaintext, pt)
}

func TestCBCRoundTrip(t *testing.T) {
	iv, err := blockcipher.RandomIV(aes.BlockSize)
	require.NoError(t, err)

	mode := blockcipher.NewCBCMode(testEngine(t), iv)
	plaintext := []byte("the quick brown fox jumps over the lazy dog, twice over")

	ct := mode.Encrypt(plaintext)
	pt := mode.Decrypt(ct)

	require.Equal(t, plaintext, pt)
}

func TestCTRRoundTrip(t *testing.T) {
	mode := blockcipher.NewCTRMode(testEngine(t), 0)
	plaintext := []byte("not a multiple of the block size!")

	ct := mode.Encrypt(plaintext)
	require.NotEqual(t, plaintext, ct)

	pt := mode.Decrypt(ct)
	require.Equal(t, plaintext, pt)
}

func TestECBIsDeterministicPerBlock(t *testing.T) {
	mode := blockcipher.NewECBMode(testEngine(t))
	block := bytes.Repeat([]byte{0xAA}, 16)
	plaintext := append(append([]byte{}, block...), block...)

	ct := mode.Encrypt(plaintext)
	require.Equal(t, ct[:16], ct[16:32])
}
