package aes

import "golang.org/x/sys/cpu"

// hasHardware mirrors spec.md §4.5's detection rule: the AES-NI round path
// is only enabled when both AES and SSE4.1 are present. Detection runs
// once per process, which spec.md §5 allows ("either is acceptable; the
// result must be stable across a process lifetime").
var hasHardware = cpu.X86.HasAES && cpu.X86.HasSSE41

// Defined in asm_amd64.s. encryptBlockAsm/decryptBlockAsm perform Nr-1 AES
// rounds plus a final round with AESENC/AESENCLAST (or the AESDEC family
// for decryption), operating on a round-key buffer in raw AES byte order
// (see swapWordBytes).
//
//go:noescape
func encryptBlockAsm(nr int, xk *uint32, dst, src *byte)

//go:noescape
func decryptBlockAsm(nr int, xk *uint32, dst, src *byte)

// newImplementation builds both round-key schedules in the portable,
// logically big-endian representation that encryptBlockGo/decryptBlockGo
// use, then — only if hardware rounds are available — derives a
// byte-order-swapped copy the asm routines can load directly as 128-bit
// vectors. Sharing one schedule computation for both paths is what makes
// the "bit-exact for every legal (key, IV, input) triple" requirement of
// spec.md §4.5 hold by construction rather than by a second, independently
// fallible key-expansion routine.
func newImplementation(key []byte) (enc, dec []uint32, encryptBlock, decryptBlock blockFunc, hardware bool) {
	enc, dec = expandKey(key)
	if !hasHardware {
		return enc, dec,
			func(dst, src []byte) { encryptBlockGo(enc, dst, src) },
			func(dst, src []byte) { decryptBlockGo(dec, dst, src) },
			false
	}

	encHW := swapWordBytes(enc)
	decHW := swapWordBytes(dec)
	nr := len(enc)/nb - 1
	return enc, dec,
		func(dst, src []byte) { encryptBlockAsm(nr, &encHW[0], &dst[0], &src[0]) },
		func(dst, src []byte) { decryptBlockAsm(nr, &decHW[0], &dst[0], &src[0]) },
		true
}

// swapWordBytes returns a copy of words with each element's bytes
// reversed, so that its little-endian in-memory layout matches the
// big-endian logical byte order expandKey produced. Loading that memory
// as a 128-bit vector then reproduces exactly the AES round-key bytes,
// the same trick the teacher's ARM64 path (armExpandKey) uses.
func swapWordBytes(words []uint32) []uint32 {
	out := make([]uint32, len(words))
	for i, w := range words {
		out[i] = uint32(byte(w>>24)) | uint32(byte(w>>16))<<8 | uint32(byte(w>>8))<<16 | uint32(byte(w))<<24
	}
	return out
}
