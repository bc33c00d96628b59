package aes

import (
	"strconv"

	"github.com/pkg/errors"
)

// BlockSize is the AES block size in bytes: 16, regardless of key size.
const BlockSize = 16

// KeySizeError reports an invalid AES key length. Valid lengths are 16, 24,
// and 32 bytes, selecting AES-128, AES-192, and AES-256 respectively
// (spec.md §3).
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

// blockFunc processes exactly one BlockSize-byte block from src into dst.
type blockFunc func(dst, src []byte)

// Context is the stateful cipher object of spec.md §3: it holds both round
// key schedules, the live IV/counter state, and the dispatch tag selecting
// the portable or hardware round engine. It is single-threaded and not
// internally synchronized (spec.md §5); independent contexts are fully
// independent.
type Context struct {
	enc, dec []uint32 // forward/inverse round-key schedules
	nr       int      // round count: 10, 12, or 14
	iv       [BlockSize]byte
	hardware bool

	encryptBlock blockFunc
	decryptBlock blockFunc
}

// NewContext allocates an uninitialized cipher context. SetKey must be
// called before any block operation (spec.md §3, "Lifecycle").
func NewContext() *Context {
	return &Context{}
}

// SetKey derives both round-key schedules from key and selects an
// implementation. It must precede any block operation; SetIV may be called
// before or after it, and SetKey leaves the installed IV unchanged. Key
// lengths other than 16, 24, or 32 are a caller contract violation and are
// reported as a KeySizeError rather than silently accepted.
func (c *Context) SetKey(key []byte) error {
	switch len(key) {
	case 16, 24, 32:
	default:
		return errors.Wrap(KeySizeError(len(key)), "aes: set key")
	}

	enc, dec, encFn, decFn, hw := newImplementation(key)
	c.enc, c.dec = enc, dec
	c.encryptBlock, c.decryptBlock = encFn, decFn
	c.hardware = hw
	c.nr = len(enc)/nb - 1
	return nil
}

// SetIV installs a 16-byte IV or initial counter value. It is the only way
// to install IV state (spec.md §9, "Open question"): both the portable and
// hardware paths read and advance the same raw byte representation, so
// there is no risk of the two paths disagreeing about IV state if a
// context were ever asked to switch path mid-lifetime (which §4.6 forbids
// anyway).
func (c *Context) SetIV(iv []byte) {
	if len(iv) != BlockSize {
		panic("aes: iv must be exactly 16 bytes")
	}
	copy(c.iv[:], iv)
}

// HardwareAccelerated reports whether this context dispatched to the
// AES-NI / ARMv8 Crypto Extensions round engine instead of the portable
// T-table engine (spec.md §4.5).
func (c *Context) HardwareAccelerated() bool { return c.hardware }

// RoundCount returns Nr: 10, 12, or 14.
func (c *Context) RoundCount() int { return c.nr }

// Destroy wipes all secret material held by the context (both schedules,
// the IV/counter, the user key is never retained past SetKey) so that it
// cannot be recovered from a reused allocation (spec.md §3, §5).
func (c *Context) Destroy() {
	wipeWords(c.enc)
	wipeWords(c.dec)
	wipeBytes(c.iv[:])
	c.encryptBlock = nil
	c.decryptBlock = nil
	c.hardware = false
	c.nr = 0
}

func requireBlockMultiple(span []byte) {
	if len(span) == 0 || len(span)%BlockSize != 0 {
		panic("aes: span length must be a positive multiple of the block size")
	}
}
