package sshcipher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryCoversAllSevenNames(t *testing.T) {
	want := []string{
		"aes128-ctr", "aes192-ctr", "aes256-ctr",
		"aes128-cbc", "aes192-cbc", "aes256-cbc",
		"rijndael-cbc@lysator.liu.se",
	}
	for _, name := range want {
		alg, err := Lookup(name)
		require.NoError(t, err)
		require.Equal(t, 16, alg.BlockBytes)
	}
	require.Len(t, Registry, len(want))
}

func TestLookupUnknownName(t *testing.T) {
	_, err := Lookup("twofish256-cbc")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestRijndaelLysatorIsAES256CBC(t *testing.T) {
	alg, err := Lookup("rijndael-cbc@lysator.liu.se")
	require.NoError(t, err)
	require.Equal(t, 32, alg.KeyBytes)
	require.Equal(t, ModeCBC, alg.Mode)
}

func TestCipherRoundTripCTR(t *testing.T) {
	enc, err := New("aes128-ctr")
	require.NoError(t, err)
	dec, err := New("aes128-ctr")
	require.NoError(t, err)

	key := bytes.Repeat([]byte{0x42}, 16)
	iv := bytes.Repeat([]byte{0x01}, 16)
	require.NoError(t, enc.SetKey(key))
	require.NoError(t, dec.SetKey(key))
	enc.SetIV(iv)
	dec.SetIV(iv)

	plaintext := []byte("sixteen byte msgsixteen byte two")[:32]
	span := append([]byte{}, plaintext...)
	enc.Encrypt(span)
	dec.Decrypt(span)

	require.True(t, bytes.Equal(span, plaintext))
	enc.Free()
	dec.Free()
}

func TestCipherRoundTripCBC(t *testing.T) {
	enc, err := New("aes256-cbc")
	require.NoError(t, err)
	dec, err := New("aes256-cbc")
	require.NoError(t, err)

	key := bytes.Repeat([]byte{0x24}, 32)
	iv := bytes.Repeat([]byte{0x07}, 16)
	require.NoError(t, enc.SetKey(key))
	require.NoError(t, dec.SetKey(key))
	enc.SetIV(iv)
	dec.SetIV(iv)

	plaintext := bytes.Repeat([]byte{0x99}, 32)
	span := append([]byte{}, plaintext...)
	enc.Encrypt(span)
	dec.Decrypt(span)

	require.True(t, bytes.Equal(span, plaintext))
}

func TestSetKeyWrongLengthForAlgorithm(t *testing.T) {
	c, err := New("aes128-cbc")
	require.NoError(t, err)
	err = c.SetKey(make([]byte, 24))
	require.Error(t, err)
}
