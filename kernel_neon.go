//go:build arm64 && !noasm

package nucbit

func neonKernel() (codecKernel, bool) {
	if !hasNEON() {
		return codecKernel{}, false
	}
	return codecKernel{
		name:   "neon",
		pack:   packWordNEON,
		unpack: unpackWordNEONInto,
	}, true
}

// neonWideGroup is the width of the NEON "wide pack" reduction: 16 ASCII
// bytes reduced to one 32-bit half-word, two of which compose a full
// 64-bit packed word (32 bases).
const neonWideGroup = 16

// packWordNEON packs seq using the wide-pack bit trick: each byte becomes
// a 2-bit lane via ((b>>1)^(b>>2))&3, then pairs of lanes are merged by a
// shift-and-or "unzip" reduction (log2(16) levels) into one 32-bit
// half-word per 16 bases, instead of accumulating one lane at a time.
func packWordNEON(seq []byte) (uint64, error) {
	if len(seq) > MaxWordBases {
		return 0, sequenceTooLongErr(len(seq))
	}
	if len(seq) < neonWideGroup {
		return packWordScalar(seq)
	}

	var word uint64
	full := len(seq) - len(seq)%neonWideGroup
	for base := 0; base < full; base += neonWideGroup {
		half, err := encode16Nucleotides(seq[base : base+neonWideGroup])
		if err != nil {
			return 0, err
		}
		word |= uint64(half) << uint(base*2)
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

// encode16Nucleotides reduces exactly 16 ASCII bases into one 32-bit
// half-word via the bit trick followed by two rounds of unzip+shift+or:
// round one merges adjacent 2-bit lanes into 4-bit nibbles, round two
// merges adjacent nibbles into bytes; the final fold from 4 bytes to one
// 32-bit value is a plain positional OR, equivalent to (and bit-exact
// with) further unzip+shift+or rounds since no lane's bits overlap.
func encode16Nucleotides(group []byte) (uint32, error) {
	var lanes [16]uint32
	for i, b := range group {
		code, ok := lane2bit(b)
		if !ok {
			return 0, invalidBaseErr(b)
		}
		lanes[i] = uint32(code)
	}

	// Round 1: unzip+shift+or, 2-bit lanes -> 4-bit nibbles.
	var nibbles [8]uint32
	for i := 0; i < 8; i++ {
		nibbles[i] = lanes[2*i] | (lanes[2*i+1] << 2)
	}
	// Round 2: unzip+shift+or, 4-bit nibbles -> 8-bit bytes.
	var bytes [4]uint32
	for i := 0; i < 4; i++ {
		bytes[i] = nibbles[2*i] | (nibbles[2*i+1] << 4)
	}
	// Final positional fold into the 32-bit half-word; each byte's lanes
	// never overlap another byte's bit range, so this is exact.
	var half uint32
	for i, b := range bytes {
		half |= b << uint(i*8)
	}
	return half, nil
}

func unpackWordNEONInto(word uint64, n int, out []byte) ([]byte, error) {
	if n > MaxWordBases || n < 0 {
		return out, invalidLengthErr(n)
	}
	if n < neonWideGroup {
		return unpackWordScalarInto(word, n, out)
	}
	return unpackGrouped(word, n, neonWideGroup, out), nil
}
