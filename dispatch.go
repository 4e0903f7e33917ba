package nucbit

import "golang.org/x/sys/cpu"

// codecKernel bundles the pack/unpack pair a dispatch target provides. All
// kernels implement the identical contract of scalar.go; they differ only
// in lane width and therefore performance.
type codecKernel struct {
	name   string
	pack   func(seq []byte) (uint64, error)
	unpack func(word uint64, n int, out []byte) ([]byte, error)
}

var scalarKernelImpl = codecKernel{
	name:   "scalar",
	pack:   packWordScalar,
	unpack: unpackWordScalarInto,
}

// activeKernel is selected once, at package init, and never changes
// thereafter: monotonic, single-writer selection. There is no per-call
// probe.
var activeKernel = selectKernel()

// activeKernelName reports which kernel was selected, for diagnostics and
// tests; callers cannot otherwise observe which kernel ran except via
// performance.
func activeKernelName() string {
	return activeKernel.name
}

// selectKernel interrogates CPU capabilities exactly once and returns the
// best available kernel, falling back to the scalar kernel. The build-time
// "no SIMD" toggle is the noasm tag (see the kernel_*_stub.go files), which
// replaces the SIMD kernel constructors with stubs that always decline so this function only ever sees
// the scalar kernel on a noasm build.
func selectKernel() codecKernel {
	if k, ok := neonKernel(); ok {
		return k
	}
	if k, ok := avx2Kernel(); ok {
		return k
	}
	if k, ok := sse2Kernel(); ok {
		return k
	}
	return scalarKernelImpl
}

// hasNEON reports whether the running CPU is aarch64 with NEON (ASIMD).
// Defined here so kernel_neon.go's build-tag-gated constructor has a single
// call site to stub out on non-arm64 builds.
func hasNEON() bool {
	return cpu.ARM64.HasASIMD
}

func hasAVX2() bool {
	return cpu.X86.HasAVX2
}

func hasSSE2() bool {
	return cpu.X86.HasSSE2
}
