// Package sshcipher binds the AES core in package aes to the SSH transport
// algorithm names of spec.md §6. It is an external collaborator: algorithm
// naming lives here, the cipher engine stays name-agnostic.
package sshcipher

import (
	"github.com/pkg/errors"

	"github.com/themiron/sshaes/aes"
)

// Mode selects which bulk mode an Algorithm drives.
type Mode int

const (
	ModeCBC Mode = iota
	ModeCTR
)

// Algorithm is one entry of the registry table mirroring the ssh2_cipheralg
// vtable: a name, its key/block sizes, and the mode it binds to. All entries
// in this package share one block size and IV size (spec.md §6: "All seven
// advertise block size 16 bytes and IV size 16 bytes").
type Algorithm struct {
	Name       string
	KeyBytes   int
	BlockBytes int
	Mode       Mode
}

// Registry lists the seven externally visible SSH cipher names, in the same
// relative grouping the original keeps (CTR variants before CBC, the legacy
// rijndael alias alongside aes256-cbc).
var Registry = []Algorithm{
	{Name: "aes128-ctr", KeyBytes: 16, BlockBytes: aes.BlockSize, Mode: ModeCTR},
	{Name: "aes192-ctr", KeyBytes: 24, BlockBytes: aes.BlockSize, Mode: ModeCTR},
	{Name: "aes256-ctr", KeyBytes: 32, BlockBytes: aes.BlockSize, Mode: ModeCTR},
	{Name: "aes128-cbc", KeyBytes: 16, BlockBytes: aes.BlockSize, Mode: ModeCBC},
	{Name: "aes192-cbc", KeyBytes: 24, BlockBytes: aes.BlockSize, Mode: ModeCBC},
	{Name: "aes256-cbc", KeyBytes: 32, BlockBytes: aes.BlockSize, Mode: ModeCBC},
	{Name: "rijndael-cbc@lysator.liu.se", KeyBytes: 32, BlockBytes: aes.BlockSize, Mode: ModeCBC},
}

var byName = func() map[string]Algorithm {
	m := make(map[string]Algorithm, len(Registry))
	for _, a := range Registry {
		m[a.Name] = a
	}
	return m
}()

// ErrUnknownAlgorithm is returned by Lookup/New for a name absent from Registry.
var ErrUnknownAlgorithm = errors.New("sshcipher: unknown algorithm name")

// Lookup returns the registry entry for name.
func Lookup(name string) (Algorithm, error) {
	a, ok := byName[name]
	if !ok {
		return Algorithm{}, errors.Wrap(ErrUnknownAlgorithm, name)
	}
	return a, nil
}

// Cipher is a named algorithm bound to a live aes.Context. It is the
// ssh2_cipher equivalent: new/free/setiv/setkey/encrypt/decrypt collapsed
// onto aes.Context, with Mode dispatch resolved once at construction instead
// of through a vtable (spec.md §4.6, §6 "Operations exposed").
type Cipher struct {
	alg Algorithm
	ctx *aes.Context
}

// New allocates a Cipher for the named algorithm. SetKey must follow before
// any block operation, matching aes.Context's own lifecycle.
func New(name string) (*Cipher, error) {
	alg, err := Lookup(name)
	if err != nil {
		return nil, errors.Wrap(err, "sshcipher: new")
	}
	return &Cipher{alg: alg, ctx: aes.NewContext()}, nil
}

// Name reports the externally visible algorithm identifier.
func (c *Cipher) Name() string { return c.alg.Name }

// KeySize reports the expected key length in bytes for this algorithm.
func (c *Cipher) KeySize() int { return c.alg.KeyBytes }

// BlockSize reports the block size in bytes (always 16, spec.md §6).
func (c *Cipher) BlockSize() int { return c.alg.BlockBytes }

// SetKey installs the session key. Its length must equal KeySize().
func (c *Cipher) SetKey(key []byte) error {
	if len(key) != c.alg.KeyBytes {
		return errors.Wrapf(aes.KeySizeError(len(key)), "sshcipher: %s expects a %d-byte key", c.alg.Name, c.alg.KeyBytes)
	}
	return c.ctx.SetKey(key)
}

// SetIV installs the session IV or initial counter value.
func (c *Cipher) SetIV(iv []byte) { c.ctx.SetIV(iv) }

// Encrypt transforms span in place in the sending direction: CBC encrypt for
// the *-cbc algorithms, the symmetric CTR operator for the *-ctr algorithms.
func (c *Cipher) Encrypt(span []byte) {
	switch c.alg.Mode {
	case ModeCBC:
		c.ctx.EncryptCBC(span)
	case ModeCTR:
		c.ctx.XORCTR(span)
	}
}

// Decrypt transforms span in place in the receiving direction.
func (c *Cipher) Decrypt(span []byte) {
	switch c.alg.Mode {
	case ModeCBC:
		c.ctx.DecryptCBC(span)
	case ModeCTR:
		c.ctx.XORCTR(span)
	}
}

// HardwareAccelerated reports whether the underlying context dispatched to
// the AES-NI / ARMv8 Crypto Extensions round engine.
func (c *Cipher) HardwareAccelerated() bool { return c.ctx.HardwareAccelerated() }

// Free wipes and releases the underlying context.
func (c *Cipher) Free() { c.ctx.Destroy() }
