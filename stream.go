package nucbit

// EncodeStreamInto packs seq (any length, including 0) into words, which is
// cleared first. Each 32-byte chunk becomes one packed word, in source
// order; the final, possibly-short chunk becomes a partial word with all
// bits above the valid range left zero. On error, words may hold a prefix
// of the chunks packed so far; callers should clear and retry rather than
// trust a partial result.
func EncodeStreamInto(seq []byte, words []uint64) ([]uint64, error) {
	words = words[:0]
	for start := 0; start < len(seq); start += MaxWordBases {
		end := start + MaxWordBases
		if end > len(seq) {
			end = len(seq)
		}
		word, err := PackWord(seq[start:end])
		if err != nil {
			return words, err
		}
		words = append(words, word)
	}
	return words, nil
}

// DecodeStreamInto appends n uppercase ASCII bases decoded from words to
// out and returns the grown slice. Full words decode to MaxWordBases bases
// each; the final word decodes to exactly n mod MaxWordBases bases (or a
// full MaxWordBases if n is an exact multiple). No padding bytes beyond
// index n are ever emitted.
func DecodeStreamInto(words []uint64, n int, out []byte) ([]byte, error) {
	if n < 0 {
		return out, invalidLengthErr(n)
	}
	if n == 0 {
		return out, nil
	}

	needed := WordsForBases(n)
	if len(words) < needed {
		return out, invalidLengthErr(n)
	}

	full := n / MaxWordBases
	for i := 0; i < full; i++ {
		var err error
		out, err = UnpackWordInto(words[i], MaxWordBases, out)
		if err != nil {
			return out, err
		}
	}
	if rem := n % MaxWordBases; rem != 0 {
		var err error
		out, err = UnpackWordInto(words[full], rem, out)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// WordsForBases returns ceil(n/MaxWordBases), the number of packed words
// needed to hold n bases.
func WordsForBases(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + MaxWordBases - 1) / MaxWordBases
}

// BasesForWords returns the maximum number of bases words full packed
// words can hold (words * MaxWordBases). Callers with a partial final word
// must track the true base count separately: the word count alone never
// reveals how many of the last word's bases are real versus padding.
func BasesForWords(words int) int {
	if words <= 0 {
		return 0
	}
	return words * MaxWordBases
}
