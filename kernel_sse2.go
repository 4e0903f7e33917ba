//go:build amd64 && !noasm

package nucbit

// sse2GroupWidth is the 8-base lane-group width a 128-bit vector register
// holds (SSE2, or half-wide NEON use).
const sse2GroupWidth = 8

// sse2Kernel returns the SSE2-shaped pack/unpack kernel when the running
// CPU has SSE2 (true for essentially all amd64 hardware in practice, but
// checked explicitly so the dispatch table in dispatch.go stays uniform
// with the AVX2/NEON probes).
func sse2Kernel() (codecKernel, bool) {
	if !hasSSE2() {
		return codecKernel{}, false
	}
	return codecKernel{
		name:   "sse2",
		pack:   packWordSSE2,
		unpack: unpackWordSSE2Into,
	}, true
}

// packWordSSE2 packs in 8-base groups: a lane-wise validity fold (OR
// 0x20), lane-wise 2-bit extraction via the ((b>>1)^(b>>2))&3 trick, and
// an OR-accumulate in place of the hardware's pairwise unzip+shift+or
// reduction.
func packWordSSE2(seq []byte) (uint64, error) {
	if len(seq) > MaxWordBases {
		return 0, sequenceTooLongErr(len(seq))
	}
	if len(seq) < sse2GroupWidth {
		return packWordScalar(seq)
	}
	return packGrouped(seq, sse2GroupWidth)
}

func unpackWordSSE2Into(word uint64, n int, out []byte) ([]byte, error) {
	if n > MaxWordBases || n < 0 {
		return out, invalidLengthErr(n)
	}
	if n < sse2GroupWidth {
		return unpackWordScalarInto(word, n, out)
	}
	return unpackGrouped(word, n, sse2GroupWidth, out), nil
}
