// Package nucbit implements a compact, high-throughput 2-bit-per-base
// codec and bit-level kernel set for DNA nucleotide strings drawn from the
// four-letter alphabet {A, C, G, T}.
//
// A packed word is a uint64 holding up to MaxWordBases bases, base 0 in
// the low two bits; a packed stream is a []uint64 plus an explicit base
// count (word count alone never recovers the count of a stream whose
// final word is partial). PackWord/UnpackWordInto operate on a single
// word; EncodeStreamInto/DecodeStreamInto chunk arbitrary-length
// sequences into and out of packed streams; SplitPacked splits a packed
// stream at an arbitrary base index without decoding; HammingWord/
// HammingStream compute bit-parallel Hamming distance over packed data.
//
// PackWord and UnpackWordInto dispatch to the fastest kernel the running
// CPU supports (NEON on aarch64, AVX2 or SSE2 on amd64, otherwise a scalar
// fallback), selected once at package initialization time via
// golang.org/x/sys/cpu. All kernels are bit-exact with one another; the
// noasm build tag forces the scalar kernel regardless of CPU, with no
// semantic effect beyond performance.
//
// The package is stateless with respect to shared mutation: every
// operation is a pure function of its inputs plus the caller-provided
// output buffer(s) it either clears-and-appends to or appends to (see
// each function's doc comment for which). There are no internal threads,
// no I/O, and nothing to cancel; callers wanting concurrency simply call
// these functions from multiple goroutines over disjoint buffers.
//
// Invalid input (a byte outside the alphabet, a length or index out of
// range) is always reported as an error value of the closed Kind/Error
// taxonomy, never a panic: malformed bases are routine in real
// sequencing data (low-quality-read placeholders, RNA's U, format bugs),
// and a library ingesting that data needs to filter or reclassify it
// rather than crash.
package nucbit
