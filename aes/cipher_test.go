package aes

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

func randomSpan(r *rand.Rand, blocks int) []byte {
	span := make([]byte, blocks*BlockSize)
	r.Read(span)
	return span
}

func TestSetKeyRejectsInvalidLengths(t *testing.T) {
	ctx := NewContext()
	for _, n := range []int{0, 1, 15, 17, 23, 31, 33, 64} {
		err := ctx.SetKey(make([]byte, n))
		require.Error(t, err)
		var sizeErr KeySizeError
		require.ErrorAs(t, err, &sizeErr)
	}
}

func TestSetIVRejectsWrongLength(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.SetKey(make([]byte, 16)))
	require.Panics(t, func() { ctx.SetIV(make([]byte, 15)) })
	require.Panics(t, func() { ctx.SetIV(make([]byte, 17)) })
}

func TestBlockOperationsRejectNonMultipleSpans(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.SetKey(make([]byte, 16)))
	ctx.SetIV(make([]byte, BlockSize))

	require.Panics(t, func() { ctx.EncryptCBC(make([]byte, 0)) })
	require.Panics(t, func() { ctx.EncryptCBC(make([]byte, 15)) })
	require.Panics(t, func() { ctx.EncryptCBC(make([]byte, 17)) })
	require.Panics(t, func() { ctx.DecryptCBC(make([]byte, 15)) })
	require.Panics(t, func() { ctx.XORCTR(make([]byte, 15)) })
}

func TestCBCRoundTrip(t *testing.T) {
	r := fixedRand(1)
	for _, size := range []int{16, 24, 32} {
		key := make([]byte, size)
		r.Read(key)
		iv := make([]byte, BlockSize)
		r.Read(iv)
		plaintext := randomSpan(r, 9)

		enc := NewContext()
		require.NoError(t, enc.SetKey(key))
		enc.SetIV(iv)
		ciphertext := append([]byte{}, plaintext...)
		enc.EncryptCBC(ciphertext)

		dec := NewContext()
		require.NoError(t, dec.SetKey(key))
		dec.SetIV(iv)
		dec.DecryptCBC(ciphertext)

		require.True(t, bytes.Equal(ciphertext, plaintext))
	}
}

func TestCTRSelfInverse(t *testing.T) {
	r := fixedRand(2)
	key := make([]byte, 16)
	r.Read(key)
	iv := make([]byte, BlockSize)
	r.Read(iv)
	plaintext := randomSpan(r, 11)

	enc := NewContext()
	require.NoError(t, enc.SetKey(key))
	enc.SetIV(iv)
	ciphertext := append([]byte{}, plaintext...)
	enc.XORCTR(ciphertext)

	dec := NewContext()
	require.NoError(t, dec.SetKey(key))
	dec.SetIV(iv)
	dec.XORCTR(ciphertext)

	require.True(t, bytes.Equal(ciphertext, plaintext))
}

// Splitting invariance: processing a span in two pieces with state carried
// between calls must match processing it as one span (spec.md §8).
func TestCBCSplittingInvariance(t *testing.T) {
	r := fixedRand(3)
	key := make([]byte, 16)
	r.Read(key)
	iv := make([]byte, BlockSize)
	r.Read(iv)
	plaintext := randomSpan(r, 6)

	whole := NewContext()
	require.NoError(t, whole.SetKey(key))
	whole.SetIV(iv)
	wholeOut := append([]byte{}, plaintext...)
	whole.EncryptCBC(wholeOut)

	split := NewContext()
	require.NoError(t, split.SetKey(key))
	split.SetIV(iv)
	splitOut := append([]byte{}, plaintext...)
	split.EncryptCBC(splitOut[:2*BlockSize])
	split.EncryptCBC(splitOut[2*BlockSize:])

	require.True(t, bytes.Equal(wholeOut, splitOut))
}

func TestCTRSplittingInvariance(t *testing.T) {
	r := fixedRand(4)
	key := make([]byte, 16)
	r.Read(key)
	iv := make([]byte, BlockSize)
	r.Read(iv)
	plaintext := randomSpan(r, 6)

	whole := NewContext()
	require.NoError(t, whole.SetKey(key))
	whole.SetIV(iv)
	wholeOut := append([]byte{}, plaintext...)
	whole.XORCTR(wholeOut)

	split := NewContext()
	require.NoError(t, split.SetKey(key))
	split.SetIV(iv)
	splitOut := append([]byte{}, plaintext...)
	split.XORCTR(splitOut[:3*BlockSize])
	split.XORCTR(splitOut[3*BlockSize:])

	require.True(t, bytes.Equal(wholeOut, splitOut))
}

// Implementation equivalence: the portable engine must match whatever
// engine this process actually dispatched to, since newImplementation
// always derives both from one expandKey call (spec.md §8, §4.5).
func TestPortableMatchesDispatchedImplementation(t *testing.T) {
	r := fixedRand(5)
	for _, size := range []int{16, 24, 32} {
		key := make([]byte, size)
		r.Read(key)
		iv := make([]byte, BlockSize)
		r.Read(iv)
		plaintext := randomSpan(r, 4)

		dispatched := NewContext()
		require.NoError(t, dispatched.SetKey(key))
		dispatched.SetIV(iv)
		dispatchedOut := append([]byte{}, plaintext...)
		dispatched.EncryptCBC(dispatchedOut)

		enc, _ := expandKey(key)
		portableOut := append([]byte{}, plaintext...)
		ivCopy := append([]byte{}, iv...)
		remaining := portableOut
		for len(remaining) > 0 {
			block := remaining[:BlockSize]
			xorBytes(block, block, ivCopy)
			encryptBlockGo(enc, block, block)
			copy(ivCopy, block)
			remaining = remaining[BlockSize:]
		}

		require.True(t, bytes.Equal(dispatchedOut, portableOut),
			"size %d: dispatched (hardware=%v) output diverges from portable output", size, dispatched.HardwareAccelerated())
	}
}

func TestDestroyWipesSecretMaterial(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.SetKey(make([]byte, 32)))
	ctx.SetIV(bytes.Repeat([]byte{0xaa}, BlockSize))

	ctx.Destroy()

	for _, w := range ctx.enc {
		require.Zero(t, w)
	}
	for _, w := range ctx.dec {
		require.Zero(t, w)
	}
	for _, b := range ctx.iv {
		require.Zero(t, b)
	}
	require.Nil(t, ctx.encryptBlock)
	require.Nil(t, ctx.decryptBlock)
}

func TestRoundCountMatchesKeySize(t *testing.T) {
	cases := map[int]int{16: 10, 24: 12, 32: 14}
	for size, want := range cases {
		ctx := NewContext()
		require.NoError(t, ctx.SetKey(make([]byte, size)))
		require.Equal(t, want, ctx.RoundCount())
	}
}
