package nucbit

// lane2bit computes ((b>>1)^(b>>2))&3, which equals the fixed 2-bit code
// for each of the eight valid ASCII bytes (A,a,C,c,G,g,T,t). ok is false
// for any other byte.
func lane2bit(b byte) (code uint64, ok bool) {
	folded := b | 0x20 // fold to lowercase before validating
	switch folded {
	case 'a', 'c', 'g', 't':
		return uint64((b>>1)^(b>>2)) & 3, true
	default:
		return 0, false
	}
}

// packGrouped packs seq (len <= MaxWordBases, len >= groupWidth) width
// groups at a time. Each group is validated and extracted lane-wise before
// being OR-accumulated into the result word, mirroring the hardware
// kernels' lane-validate-extract-reduce pipeline at the width named by
// groupWidth (8 for SSE2/half-NEON, 16 for AVX2).
func packGrouped(seq []byte, groupWidth int) (uint64, error) {
	var word uint64
	full := len(seq) - len(seq)%groupWidth
	for base := 0; base < full; base += groupWidth {
		for lane := 0; lane < groupWidth; lane++ {
			code, ok := lane2bit(seq[base+lane])
			if !ok {
				return 0, invalidBaseErr(seq[base+lane])
			}
			word |= code << uint((base+lane)*2)
		}
	}
	for i := full; i < len(seq); i++ {
		code, ok := lane2bit(seq[i])
		if !ok {
			return 0, invalidBaseErr(seq[i])
		}
		word |= code << uint(i*2)
	}
	return word, nil
}

// unpackGrouped mirrors packGrouped for decode: groupWidth lanes are
// extracted and table-translated per iteration in place of the hardware's
// broadcast+shuffle step.
func unpackGrouped(word uint64, n, groupWidth int, out []byte) []byte {
	full := n - n%groupWidth
	for base := 0; base < full; base += groupWidth {
		for lane := 0; lane < groupWidth; lane++ {
			i := base + lane
			code := (word >> uint(i*2)) & 0b11
			out = append(out, bit2base[code])
		}
	}
	for i := full; i < n; i++ {
		code := (word >> uint(i*2)) & 0b11
		out = append(out, bit2base[code])
	}
	return out
}
