//go:build !amd64 || noasm

package nucbit

func avx2Kernel() (codecKernel, bool) { return codecKernel{}, false }
