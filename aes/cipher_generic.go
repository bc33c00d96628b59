//go:build !amd64 && !arm64

package aes

// newImplementation on architectures without a hand-rolled AES
// instruction path always runs the portable T-table engine (spec.md
// §4.5: "If unavailable or compile-time disabled, behave exactly as the
// portable path").
func newImplementation(key []byte) (enc, dec []uint32, encryptBlock, decryptBlock blockFunc, hardware bool) {
	enc, dec = expandKey(key)
	return enc, dec,
		func(dst, src []byte) { encryptBlockGo(enc, dst, src) },
		func(dst, src []byte) { decryptBlockGo(dec, dst, src) },
		false
}
