package aes

// expandKey derives the forward and inverse round-key schedules from a
// 16/24/32-byte key, per spec.md §4.2. Nk = len(key)/4, Nr = Nk+6, and both
// schedules hold (Nr+1)*4 32-bit words.
func expandKey(key []byte) (enc, dec []uint32) {
	nk := len(key) / 4
	nr := nk + 6
	n := nb * (nr + 1)
	enc = make([]uint32, n)
	dec = make([]uint32, n)

	var i int
	for i = 0; i < nk; i++ {
		enc[i] = beUint32(key[4*i : 4*i+4])
	}
	rc := byte(1)
	for ; i < n; i++ {
		t := enc[i-1]
		switch {
		case i%nk == 0:
			t = subw(rotw(t)) ^ uint32(rc)<<24
			rc = xtime(rc)
		case nk > 6 && i%nk == 4:
			t = subw(t)
		}
		enc[i] = enc[i-nk] ^ t
	}

	// Inverse schedule: reverse the round-key groups and apply
	// InvMixColumns to every round but the first and last (spec.md §4.2).
	for i := 0; i < n; i += nb {
		ei := n - i - nb
		for j := 0; j < nb; j++ {
			x := enc[ei+j]
			if i > 0 && i+nb < n {
				x = d0[sbox[byte(x>>24)]] ^ d1[sbox[byte(x>>16)]] ^ d2[sbox[byte(x>>8)]] ^ d3[sbox[byte(x)]]
			}
			dec[i+j] = x
		}
	}
	return enc, dec
}

// subw applies the S-box to each byte of w.
func subw(w uint32) uint32 {
	return uint32(sbox[byte(w>>24)])<<24 |
		uint32(sbox[byte(w>>16)])<<16 |
		uint32(sbox[byte(w>>8)])<<8 |
		uint32(sbox[byte(w)])
}

// rotw performs FIPS-197's RotWord: [a0,a1,a2,a3] -> [a1,a2,a3,a0].
func rotw(w uint32) uint32 { return w<<8 | w>>24 }

func beUint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func putBeUint32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// encryptBlockGo encrypts one 16-byte block from src into dst using the
// portable T-table round engine (spec.md §4.3). xk is the forward
// schedule; its length fixes the round count (10/12/14 for Nr=10/12/14).
func encryptBlockGo(xk []uint32, dst, src []byte) {
	s0 := beUint32(src[0:4]) ^ xk[0]
	s1 := beUint32(src[4:8]) ^ xk[1]
	s2 := beUint32(src[8:12]) ^ xk[2]
	s3 := beUint32(src[12:16]) ^ xk[3]

	nr := len(xk)/nb - 2
	k := nb
	var t0, t1, t2, t3 uint32
	for r := 0; r < nr; r++ {
		t0 = xk[k+0] ^ e0[byte(s0>>24)] ^ e1[byte(s1>>16)] ^ e2[byte(s2>>8)] ^ e3[byte(s3)]
		t1 = xk[k+1] ^ e0[byte(s1>>24)] ^ e1[byte(s2>>16)] ^ e2[byte(s3>>8)] ^ e3[byte(s0)]
		t2 = xk[k+2] ^ e0[byte(s2>>24)] ^ e1[byte(s3>>16)] ^ e2[byte(s0>>8)] ^ e3[byte(s1)]
		t3 = xk[k+3] ^ e0[byte(s3>>24)] ^ e1[byte(s0>>16)] ^ e2[byte(s1>>8)] ^ e3[byte(s2)]
		k += nb
		s0, s1, s2, s3 = t0, t1, t2, t3
	}

	// Final round: SubBytes+ShiftRows without MixColumns (spec.md §4.3 step 4).
	s0 = uint32(sbox[byte(t0>>24)])<<24 | uint32(sbox[byte(t1>>16)])<<16 | uint32(sbox[byte(t2>>8)])<<8 | uint32(sbox[byte(t3)])
	s1 = uint32(sbox[byte(t1>>24)])<<24 | uint32(sbox[byte(t2>>16)])<<16 | uint32(sbox[byte(t3>>8)])<<8 | uint32(sbox[byte(t0)])
	s2 = uint32(sbox[byte(t2>>24)])<<24 | uint32(sbox[byte(t3>>16)])<<16 | uint32(sbox[byte(t0>>8)])<<8 | uint32(sbox[byte(t1)])
	s3 = uint32(sbox[byte(t3>>24)])<<24 | uint32(sbox[byte(t0>>16)])<<16 | uint32(sbox[byte(t1>>8)])<<8 | uint32(sbox[byte(t2)])

	s0 ^= xk[k+0]
	s1 ^= xk[k+1]
	s2 ^= xk[k+2]
	s3 ^= xk[k+3]

	putBeUint32(dst[0:4], s0)
	putBeUint32(dst[4:8], s1)
	putBeUint32(dst[8:12], s2)
	putBeUint32(dst[12:16], s3)
}

// decryptBlockGo decrypts one 16-byte block from src into dst using xk, the
// inverse schedule. The inverse ShiftRows pattern walks bytes in the
// opposite rotation from encryptBlockGo (spec.md §4.3).
func decryptBlockGo(xk []uint32, dst, src []byte) {
	s0 := beUint32(src[0:4]) ^ xk[0]
	s1 := beUint32(src[4:8]) ^ xk[1]
	s2 := beUint32(src[8:12]) ^ xk[2]
	s3 := beUint32(src[12:16]) ^ xk[3]

	nr := len(xk)/nb - 2
	k := nb
	var t0, t1, t2, t3 uint32
	for r := 0; r < nr; r++ {
		t0 = xk[k+0] ^ d0[byte(s0>>24)] ^ d1[byte(s3>>16)] ^ d2[byte(s2>>8)] ^ d3[byte(s1)]
		t1 = xk[k+1] ^ d0[byte(s1>>24)] ^ d1[byte(s0>>16)] ^ d2[byte(s3>>8)] ^ d3[byte(s2)]
		t2 = xk[k+2] ^ d0[byte(s2>>24)] ^ d1[byte(s1>>16)] ^ d2[byte(s0>>8)] ^ d3[byte(s3)]
		t3 = xk[k+3] ^ d0[byte(s3>>24)] ^ d1[byte(s2>>16)] ^ d2[byte(s1>>8)] ^ d3[byte(s0)]
		k += nb
		s0, s1, s2, s3 = t0, t1, t2, t3
	}

	s0 = uint32(sboxInv[byte(t0>>24)])<<24 | uint32(sboxInv[byte(t3>>16)])<<16 | uint32(sboxInv[byte(t2>>8)])<<8 | uint32(sboxInv[byte(t1)])
	s1 = uint32(sboxInv[byte(t1>>24)])<<24 | uint32(sboxInv[byte(t0>>16)])<<16 | uint32(sboxInv[byte(t3>>8)])<<8 | uint32(sboxInv[byte(t2)])
	s2 = uint32(sboxInv[byte(t2>>24)])<<24 | uint32(sboxInv[byte(t1>>16)])<<16 | uint32(sboxInv[byte(t0>>8)])<<8 | uint32(sboxInv[byte(t3)])
	s3 = uint32(sboxInv[byte(t3>>24)])<<24 | uint32(sboxInv[byte(t2>>16)])<<16 | uint32(sboxInv[byte(t1>>8)])<<8 | uint32(sboxInv[byte(t0)])

	s0 ^= xk[k+0]
	s1 ^= xk[k+1]
	s2 ^= xk[k+2]
	s3 ^= xk[k+3]

	putBeUint32(dst[0:4], s0)
	putBeUint32(dst[4:8], s1)
	putBeUint32(dst[8:12], s2)
	putBeUint32(dst[12:16], s3)
}
