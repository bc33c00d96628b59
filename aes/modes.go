package aes

// Mode wrappers: CBC encrypt, CBC decrypt, and SDCTR (spec.md §4.4). All
// three operate in place over a caller-provided span whose length must be
// a positive multiple of BlockSize, and all three advance c.iv to the
// state needed for the next call over the same stream.

// xorBytes XORs the first min(len(a), len(b)) bytes of a and b into dst.
func xorBytes(dst, a, b []byte) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// EncryptCBC encrypts span in place under CBC chaining, continuing from
// c.iv. After the call c.iv holds the last ciphertext block produced, so a
// second call over the next span of the same stream continues the chain
// (spec.md §4.4, §8 "Splitting invariance").
func (c *Context) EncryptCBC(span []byte) {
	requireBlockMultiple(span)
	chain := c.iv[:]
	for len(span) > 0 {
		block := span[:BlockSize]
		xorBytes(block, block, chain)
		c.encryptBlock(block, block)
		chain = block
		span = span[BlockSize:]
	}
	copy(c.iv[:], chain)
}

// DecryptCBC decrypts span in place under CBC chaining, continuing from
// c.iv. Because decryption is in place, each ciphertext block is captured
// before it is overwritten so it can become the next block's chaining
// value (spec.md §4.4).
func (c *Context) DecryptCBC(span []byte) {
	requireBlockMultiple(span)
	chain := c.iv[:]
	var prevCiphertext [BlockSize]byte
	for len(span) > 0 {
		block := span[:BlockSize]
		copy(prevCiphertext[:], block)
		c.decryptBlock(block, block)
		xorBytes(block, block, chain)
		copy(c.iv[:], prevCiphertext[:])
		chain = c.iv[:]
		span = span[BlockSize:]
	}
}

// XORCTR encrypts or decrypts span in place under SDCTR (segmented integer
// counter) mode: each block is XORed with the block encryption of the
// current 128-bit big-endian counter, and the counter is advanced modulo
// 2^128 (spec.md §4.4). The operation is its own inverse, so the same
// method serves both directions.
func (c *Context) XORCTR(span []byte) {
	requireBlockMultiple(span)
	var keystream [BlockSize]byte
	for len(span) > 0 {
		block := span[:BlockSize]
		c.encryptBlock(keystream[:], c.iv[:])
		xorBytes(block, block, keystream[:])
		incrementCounter(&c.iv)
		span = span[BlockSize:]
	}
}

// incrementCounter adds 1 to the 128-bit big-endian counter held in iv,
// wrapping modulo 2^128 with no error (spec.md §4.4, "Counter wrap
// policy").
func incrementCounter(iv *[BlockSize]byte) {
	for i := BlockSize - 1; i >= 0; i-- {
		iv[i]++
		if iv[i] != 0 {
			return
		}
	}
}
