//go:build !arm64 || noasm

package nucbit

func neonKernel() (codecKernel, bool) { return codecKernel{}, false }
