package nucbit

// decodeLUT translates a 2-bit code directly to its ASCII base, used by
// FastDecodeWord.
var decodeLUT = [4]byte{'A', 'C', 'G', 'T'}

// FastDecodeWord is an alternate single-word decoder: a per-base shift
// loop with a flat 4-entry table lookup, the same method the scalar
// decoder uses, kept as a separate entry point. It
// has the exact output contract of UnpackWordInto (same errors, same
// append semantics) but is not part of the default PackWord/UnpackWordInto
// dispatch in dispatch.go: it exists as an optional, separately-invoked
// accelerator rather than a silent substitute for DecodeStreamInto. Callers
// who want it must invoke it explicitly.
func FastDecodeWord(word uint64, n int, out []byte) ([]byte, error) {
	if n > MaxWordBases || n < 0 {
		return out, invalidLengthErr(n)
	}
	for i := 0; i < n; i++ {
		code := (word >> uint(i*2)) & 0b11
		out = append(out, decodeLUT[code])
	}
	return out, nil
}
