package aes

// backend is the per-instance implementation an Engine dispatches to.
// softwareBackend (software.go) and the AES-NI backend
// (hardware_amd64.go / hardware_other.go) both satisfy it and must
// agree bit for bit on every input.
type backend interface {
	encrypt(dst, src []byte)
	decrypt(dst, src []byte)
}

// Engine is a keyed AES instance: the tuple of (variant, forward
// schedule, inverse schedule, backend) described in spec.md Section 3.
// An Engine is immutable after construction except via SetKey, and its
// Encrypt/Decrypt methods may be called concurrently from multiple
// goroutines without external synchronization — SetKey itself is not
// safe to call concurrently with any other method.
type Engine struct {
	variant  Variant
	nk, nr   int
	forward  []word
	inverse  []word
	backend  backend
	hardware bool
}

// Construct returns a new Engine keyed with key, which must be 16, 24,
// or 32 bytes. It selects the AES-NI backend when CPUSupportsAES
// reports hardware support, falling back to the software T-table
// engine otherwise.
func Construct(key []byte) (*Engine, error) {
	e := &Engine{}
	if err := e.SetKey(key); err != nil {
		return nil, err
	}
	return e, nil
}

// SetKey re-keys an existing Engine, replacing its schedules and
// backend selection. It is not safe to call concurrently with Encrypt,
// Decrypt, or another SetKey on the same Engine.
func (e *Engine) SetKey(key []byte) error {
	variant, nk, nr, err := variantParams(len(key))
	if err != nil {
		return err
	}

	forward := expandForwardSchedule(key, nk, nr)
	inverse := expandInverseSchedule(forward, nr)

	e.variant = variant
	e.nk = nk
	e.nr = nr
	e.forward = forward
	e.inverse = inverse

	if CPUSupportsAES() {
		hw, err := newHardwareBackend(forward, inverse, nr)
		if err == nil {
			e.backend = hw
			e.hardware = true
			return nil
		}
	}

	e.backend = &softwareBackend{forward: forward, inverse: inverse, nr: nr}
	e.hardware = false
	return nil
}

// Encrypt processes exactly one 16-byte block from src into dst. src
// and dst may alias the same underlying array.
func (e *Engine) Encrypt(dst, src []byte) {
	requireBlock(src)
	requireBlock(dst)
	e.backend.encrypt(dst, src)
}

// Decrypt processes exactly one 16-byte block from src into dst. src
// and dst may alias the same underlying array.
func (e *Engine) Decrypt(dst, src []byte) {
	requireBlock(src)
	requireBlock(dst)
	e.backend.decrypt(dst, src)
}

// KeyLength returns the byte length of the key this Engine was
// constructed with (16, 24, or 32).
func (e *Engine) KeyLength() int {
	return e.nk * 4
}

// BlockLength returns the AES block length in bytes: always 16.
func (e *Engine) BlockLength() int {
	return BlockSize
}

// Variant reports which AES key size this Engine was constructed with.
func (e *Engine) Variant() Variant {
	return e.variant
}

// Hardware reports whether this Engine dispatched to the AES-NI
// backend rather than the software T-table engine.
func (e *Engine) Hardware() bool {
	return e.hardware
}

// requireBlock panics if buf is not exactly one AES block. Violating
// the fixed-length block contract is a programming error and, per
// spec.md Section 7, is outside the core's specified recoverable
// behavior.
func requireBlock(buf []byte) {
	if len(buf) != BlockSize {
		panic("aes: buffer must be exactly 16 bytes")
	}
}
