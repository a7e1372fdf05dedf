package aes

import (
	"errors"
	"fmt"
)

// ErrInvalidKeyLength is returned by Construct and SetKey when the
// supplied key is not 16, 24, or 32 bytes long. It is the only error
// this core raises; callers can test for it with errors.Is.
var ErrInvalidKeyLength = errors.New("aes: invalid key length")

// keyLengthError wraps ErrInvalidKeyLength with the offending length so
// callers get a useful message while errors.Is(err, ErrInvalidKeyLength)
// still works.
func keyLengthError(n int) error {
	return fmt.Errorf("%w: got %d bytes, want 16, 24, or 32", ErrInvalidKeyLength, n)
}
