//go:build !amd64 || noasm

package nucbit

func sse2Kernel() (codecKernel, bool) { return codecKernel{}, false }
