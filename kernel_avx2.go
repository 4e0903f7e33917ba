//go:build amd64 && !noasm

package nucbit

// avx2GroupWidth is the 16-base lane-group width a 256-bit vector register
// holds (AVX2).
const avx2GroupWidth = 16

func avx2Kernel() (codecKernel, bool) {
	if !hasAVX2() {
		return codecKernel{}, false
	}
	return codecKernel{
		name:   "avx2",
		pack:   packWordAVX2,
		unpack: unpackWordAVX2Into,
	}, true
}

// packWordAVX2 packs 16-base groups at a time, the widest lane grouping
// this package uses. Inputs narrower than the lane width fall back to the
// scalar codec rather than running any lane logic on a partial group.
func packWordAVX2(seq []byte) (uint64, error) {
	if len(seq) > MaxWordBases {
		return 0, sequenceTooLongErr(len(seq))
	}
	if len(seq) < avx2GroupWidth {
		return packWordScalar(seq)
	}
	return packGrouped(seq, avx2GroupWidth)
}

func unpackWordAVX2Into(word uint64, n int, out []byte) ([]byte, error) {
	if n > MaxWordBases || n < 0 {
		return out, invalidLengthErr(n)
	}
	if n < avx2GroupWidth {
		return unpackWordScalarInto(word, n, out)
	}
	return unpackGrouped(word, n, avx2GroupWidth, out), nil
}
