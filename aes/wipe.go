package aes

import "runtime"

// wipeBytes overwrites b with zeros. The runtime.KeepAlive call after the
// loop is a compiler barrier: it forces the preceding stores to be treated
// as observable, defeating dead-store elimination that would otherwise
// drop a zero-fill immediately followed by a free (spec.md §5, §9).
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// wipeWords overwrites a key-schedule buffer with zeros, same rationale as
// wipeBytes.
func wipeWords(w []uint32) {
	for i := range w {
		w[i] = 0
	}
	runtime.KeepAlive(w)
}
