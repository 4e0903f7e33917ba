package nucbit

// SplitPacked splits a packed stream of nTotal bases into two packed
// streams without decoding: left holds bases [0, idx), right holds bases
// [idx, nTotal). Both left and right are cleared on entry. words must hold
// at least WordsForBases(nTotal) words.
//
// At a word-aligned split point, left always receives cw+1 words, the last
// of which is a zero tail mask, rather than trimming that trailing zero
// word — callers can rely on left always ending on the same word boundary
// as the split index.
func SplitPacked(words []uint64, nTotal, idx int, left, right []uint64) ([]uint64, []uint64, error) {
	if idx < 0 || idx > nTotal {
		return left, right, indexOutOfBoundsErr(idx, nTotal)
	}

	left = left[:0]
	right = right[:0]

	if idx == 0 {
		right = append(right, words...)
		return left, right, nil
	}
	if idx == nTotal {
		left = append(left, words...)
		return left, right, nil
	}
	if len(words) == 0 {
		return left, right, nil
	}

	cw := idx / MaxWordBases
	bi := uint((idx % MaxWordBases) * 2)
	rightWords := WordsForBases(nTotal - idx)

	left = append(left, words[:cw]...)
	splitMask := uint64(0)
	if bi != 0 {
		splitMask = (uint64(1) << bi) - 1
	}
	left = append(left, words[cw]&splitMask)

	for i := cw; i < cw+rightWords; i++ {
		w := words[i] >> bi
		if bi != 0 && i+1 < len(words) {
			w |= words[i+1] << (64 - bi)
		}
		right = append(right, w)
	}

	return left, right, nil
}
