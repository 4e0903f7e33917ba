package nucbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPicksSmaller(t *testing.T) {
	assert := assert.New(t)

	word, err := PackWord([]byte("AAAA"))
	assert.NoError(err)

	canon, err := Canonical(word, 4)
	assert.NoError(err)

	rc, err := reverseComplementWord(word, 4)
	assert.NoError(err)
	assert.Equal("TTTT", decodeAssert(t, rc, 4))

	if rc < word {
		assert.Equal(rc, canon)
	} else {
		assert.Equal(word, canon)
	}
}

func TestCanonicalIsStableUnderReverseComplement(t *testing.T) {
	assert := assert.New(t)

	word, err := PackWord([]byte("ACGTACGT"))
	assert.NoError(err)
	rc, err := reverseComplementWord(word, 8)
	assert.NoError(err)

	c1, err := Canonical(word, 8)
	assert.NoError(err)
	c2, err := Canonical(rc, 8)
	assert.NoError(err)
	assert.Equal(c1, c2)
}

func TestReverseComplementWordKnownValue(t *testing.T) {
	assert := assert.New(t)

	// Reverse complement of ACGT is ACGT (palindrome under rev-comp).
	word, err := PackWord([]byte("ACGT"))
	assert.NoError(err)
	rc, err := reverseComplementWord(word, 4)
	assert.NoError(err)
	assert.Equal("ACGT", decodeAssert(t, rc, 4))

	word, err = PackWord([]byte("AATC"))
	assert.NoError(err)
	rc, err = reverseComplementWord(word, 4)
	assert.NoError(err)
	assert.Equal("GATT", decodeAssert(t, rc, 4))
}

func TestReverseComplementStream(t *testing.T) {
	assert := assert.New(t)

	seq := []byte("ACTGACTGACTGACTGACTGACTGACTGACTGACTGACTG") // 40 bases
	words, err := EncodeStreamInto(seq, nil)
	assert.NoError(err)

	rcWords, err := ReverseComplement(words, len(seq), nil)
	assert.NoError(err)

	rc, err := DecodeStreamInto(rcWords, len(seq), nil)
	assert.NoError(err)

	roundTrip, err := ReverseComplement(rcWords, len(seq), nil)
	assert.NoError(err)
	back, err := DecodeStreamInto(roundTrip, len(seq), nil)
	assert.NoError(err)
	assert.Equal(string(seq), string(back))
	assert.NotEqual(string(seq), string(rc))
}

func TestReverseComplementEmpty(t *testing.T) {
	assert := assert.New(t)

	out, err := ReverseComplement(nil, 0, nil)
	assert.NoError(err)
	assert.Empty(out)
}

func decodeAssert(t *testing.T, word uint64, n int) string {
	t.Helper()
	out, err := UnpackWordInto(word, n, nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return string(out)
}
