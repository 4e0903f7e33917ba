package nucbit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectKernelFallsBackToScalar(t *testing.T) {
	assert := assert.New(t)

	// On every platform this package builds for, selectKernel must return
	// a usable kernel: at minimum the scalar fallback.
	k := selectKernel()
	assert.NotNil(k.pack)
	assert.NotNil(k.unpack)
}

func TestActiveKernelIsMonotonic(t *testing.T) {
	assert := assert.New(t)

	name := activeKernelName()
	assert.Equal(name, activeKernelName())
}

func TestScalarKernelAlwaysAvailable(t *testing.T) {
	assert := assert.New(t)

	packed, err := packWordScalar([]byte("ACGT"))
	assert.NoError(err)
	assert.Equal(uint64(0b11100100), packed)
}
