// Package kernel computes the dot product of two float32 vectors at three
// performance tiers: a plain sequential reduction (Scalar), a 4x unrolled
// reduction with independent accumulators (Unrolled), and a 4-lane
// data-parallel reduction with a scalar tail (Vector).
//
// All three kernels share the same signature and are drop-in substitutes
// for each other.  None of them allocates, keeps state across calls, or
// touches anything but its arguments, so concurrent invocations are safe.
// Because float32 addition is not associative the tiers agree only
// approximately for the same input; Scalar is the reference the others are
// verified against.
//
// The package performs no CPU capability detection.  Pick a tier once at
// startup (see internal/cpufeat) and hold onto the choice.
package kernel

// Verify bounds check elimination with
//
//   go build -gcflags="-d=ssa/check_bce" ./kernel/

// A Kernel computes sum(a[i]*b[i]) over two equal-length vectors.  Kernels
// panic if the lengths differ and return 0 for empty inputs.
type Kernel func(a, b []float32) float32

// Variant pairs a Kernel with the names used by verification and the
// benchmark runner.
type Variant struct {
	Name        string
	Description string
	Func        Kernel
}

// Variants lists every kernel tier.  Scalar comes first; it is the
// reference the other tiers are checked against.
func Variants() []Variant {
	return []Variant{
		{"scalar", "single-accumulator sequential reduction", Scalar},
		{"unrolled", "four independent accumulators over strided subsequences", Unrolled},
		{"vector", "4-lane data-parallel reduction with scalar tail", Vector},
	}
}

// Scalar computes the dot product with one running accumulator, left to
// right.
func Scalar(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("mismatched length")
	}
	var sum float32
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Unrolled computes the dot product with four independent accumulators over
// strided subsequences.  Breaking Scalar's single dependency chain lets the
// FPU overlap the multiply-adds; it does not improve accuracy.  Remainder
// elements past the last full group of four fold into s0, and the partial
// sums combine pairwise at the end.
func Unrolled(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("mismatched length")
	}
	chunks := len(a) / 4

	var s0, s1, s2, s3 float32
	for i := 0; i < chunks; i++ {
		idx := i * 4
		s0 += a[idx] * b[idx]
		s1 += a[idx+1] * b[idx+1]
		s2 += a[idx+2] * b[idx+2]
		s3 += a[idx+3] * b[idx+3]
	}

	for i := chunks * 4; i < len(a); i++ {
		s0 += a[i] * b[i]
	}

	return (s0 + s1) + (s2 + s3)
}

// Vector computes the dot product four lanes at a time, reduces the lane
// accumulator pairwise to a scalar, then folds the remainder elements in
// sequentially.  Inputs shorter than one vector width take the Scalar
// algorithm, so for len < 4 the result matches Scalar exactly.
func Vector(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("mismatched length")
	}
	if len(a) < 4 {
		return dotShort(a, b)
	}
	return dotVector(a, b)
}

// dotShort is Scalar's loop without the length re-check.
func dotShort(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
