package nucbit

// complementCode flips A<->T and C<->G. Since A=0b00/T=0b11 and
// C=0b01/G=0b10, complementing a base is a plain XOR against 0b11 for
// every valid code.
func complementCode(code uint64) uint64 {
	return code ^ 0b11
}

// reverseComplementWord returns the reverse complement of the n bases
// packed in word (n <= MaxWordBases), reading and writing bit positions
// directly rather than round-tripping through ASCII.
func reverseComplementWord(word uint64, n int) (uint64, error) {
	if n > MaxWordBases || n < 0 {
		return 0, invalidLengthErr(n)
	}
	var out uint64
	for i := 0; i < n; i++ {
		code := (word >> uint(i*2)) & 0b11
		comp := complementCode(code)
		dst := n - 1 - i
		out |= comp << uint(dst*2)
	}
	return out, nil
}

// Canonical returns whichever of word and its reverse complement is the
// smaller packed uint64 value (a numeric comparison, which with base 0 in
// the low bits is not the lexical order of the bases), the standard k-mer
// canonicalization used so that a k-mer and
// its reverse complement hash to the same bucket in downstream k-mer
// pipelines. n is the k-mer length in bases and must be <= MaxWordBases.
func Canonical(word uint64, n int) (uint64, error) {
	rc, err := reverseComplementWord(word, n)
	if err != nil {
		return 0, err
	}
	if rc < word {
		return rc, nil
	}
	return word, nil
}

// ReverseComplement writes the reverse complement of the nTotal-base
// packed stream words into out, which is cleared first. Unlike the
// single-word Canonical helper, a multi-word reverse has to reorder bases
// across word boundaries, so this is built on top of the existing stream
// codec (decode, complement and reverse the bytes, re-encode) rather than
// a bespoke cross-word bit-shuffle kernel.
func ReverseComplement(words []uint64, nTotal int, out []uint64) ([]uint64, error) {
	out = out[:0]
	if nTotal == 0 {
		return out, nil
	}

	decoded, err := DecodeStreamInto(words, nTotal, make([]byte, 0, nTotal))
	if err != nil {
		return out, err
	}

	rc := make([]byte, nTotal)
	for i, b := range decoded {
		rc[nTotal-1-i] = complementBase(b)
	}

	return EncodeStreamInto(rc, out)
}

// complementBase complements a single uppercase ASCII base. decoded is
// always uppercase (DecodeStreamInto's output contract), so no case
// folding is needed here.
func complementBase(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	default:
		return b
	}
}
