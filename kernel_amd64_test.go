//go:build amd64 && !noasm

package nucbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAVX2KernelSelectedWhenAvailable(t *testing.T) {
	if !hasAVX2() {
		t.Skip("AVX2 not available on this CPU")
	}
	k, ok := avx2Kernel()
	assert.True(t, ok)
	assert.Equal(t, "avx2", k.name)
}

func TestSSE2KernelSelectedWhenAvailable(t *testing.T) {
	if !hasSSE2() {
		t.Skip("SSE2 not available on this CPU")
	}
	k, ok := sse2Kernel()
	assert.True(t, ok)
	assert.Equal(t, "sse2", k.name)
}

func TestDispatchPrefersAVX2OverSSE2(t *testing.T) {
	if !hasAVX2() {
		t.Skip("AVX2 not available on this CPU")
	}
	assert.Equal(t, "avx2", selectKernel().name)
}
