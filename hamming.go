package nucbit

import "math/bits"

const (
	lowerBits = 0x5555555555555555
	upperBits = 0xAAAAAAAAAAAAAAAA
)

// HammingWord counts the positions i<n where the bases packed in u and v
// differ. n must be <= MaxWordBases. The algorithm is bit-parallel and
// constant-time in n: mask to the valid region, XOR, then fuse each base's
// two bits with an OR before popcount so a base contributes at most one to
// the count regardless of whether one or both of its bits differ.
func HammingWord(u, v uint64, n int) (int, error) {
	if n > MaxWordBases || n < 0 {
		return 0, invalidLengthErr(n)
	}
	if n == 0 || u == v {
		return 0, nil
	}

	validBits := uint(n * 2)
	mask := uint64(^uint64(0))
	if validBits < 64 {
		mask = (uint64(1) << validBits) - 1
	}

	diff := (u ^ v) & mask
	if diff == 0 {
		return 0, nil
	}

	low := diff & lowerBits
	high := (diff & upperBits) >> 1
	return bits.OnesCount64(low | high), nil
}

// HammingStream counts differing base positions across two packed streams
// of n total bases. Both a and b must hold at least WordsForBases(n)
// words. Full 32-base words are summed via hammingWordGroup's early-out
// for identical chunks; the final partial word, if any, is handled by
// HammingWord with the residual base count.
func HammingStream(a, b []uint64, n int) (int, error) {
	if n < 0 {
		return 0, invalidLengthErr(n)
	}
	needed := WordsForBases(n)
	if len(a) < needed || len(b) < needed {
		return 0, invalidLengthErr(n)
	}

	full := n / MaxWordBases
	total, err := hammingWordGroup(a[:full], b[:full])
	if err != nil {
		return 0, err
	}

	if rem := n % MaxWordBases; rem != 0 {
		d, err := HammingWord(a[full], b[full], rem)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// hammingWordGroup sums per-word Hamming distances over full 32-base
// words, skipping the popcount work entirely for any word pair that is
// bit-identical — a cheap XOR-and-test that pays for itself regardless of
// lane width.
func hammingWordGroup(a, b []uint64) (int, error) {
	total := 0
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		d, err := HammingWord(a[i], b[i], MaxWordBases)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}
