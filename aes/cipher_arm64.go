package aes

import "golang.org/x/sys/cpu"

// hasHardware enables the ARMv8 Crypto Extensions round path when the
// core advertises AES support (spec.md §4.5).
var hasHardware = cpu.ARM64.HasAES

// Defined in asm_arm64.s.
//
//go:noescape
func encryptBlockAsm(nr int, xk *uint32, dst, src *byte)

//go:noescape
func decryptBlockAsm(nr int, xk *uint32, dst, src *byte)

// newImplementation mirrors cipher_amd64.go: one schedule computation
// (expandKey) feeds both the portable engine and, when available, a
// byte-swapped copy for the AES instruction round engine, so the two
// paths can never disagree about round-key values.
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

func swapWordBytes(words []uint32) []uint32 {
	out := make([]uint32, len(words))
	for i, w := range words {
		out[i] = uint32(byte(w>>24)) | uint32(byte(w>>16))<<8 | uint32(byte(w>>8))<<16 | uint32(byte(w))<<24
	}
	return out
}
