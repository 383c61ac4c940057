package kernel

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/viterin/vek/vek32"
)

const tolerance = 1e-4

func randVec(r *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = r.Float32()*2 - 1
	}
	return v
}

func TestDotBasic(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}

	// 1*5 + 2*6 + 3*7 + 4*8 = 5 + 12 + 21 + 32 = 70.  Every term is exactly
	// representable and addition order can't change the result, so all
	// tiers must agree exactly.
	for _, v := range Variants() {
		if got := v.Func(a, b); got != 70.0 {
			t.Errorf("%s: got %v, want 70", v.Name, got)
		}
	}
}

func TestDotOnes(t *testing.T) {
	a := []float32{1, 1, 1, 1, 1}
	b := []float32{1, 1, 1, 1, 1}

	for _, v := range Variants() {
		if got := v.Func(a, b); got != 5.0 {
			t.Errorf("%s: got %v, want 5", v.Name, got)
		}
	}
}

func TestDotSingle(t *testing.T) {
	for _, v := range Variants() {
		if got := v.Func([]float32{3}, []float32{4}); got != 12.0 {
			t.Errorf("%s: got %v, want 12", v.Name, got)
		}
	}
}

func TestDotEmpty(t *testing.T) {
	for _, v := range Variants() {
		if got := v.Func([]float32{}, []float32{}); got != 0.0 {
			t.Errorf("%s: got %v, want 0", v.Name, got)
		}
		if got := v.Func(nil, nil); got != 0.0 {
			t.Errorf("%s on nil: got %v, want 0", v.Name, got)
		}
	}
}

// Vector falls back to the scalar algorithm for inputs shorter than one
// vector width, so for n in 0..3 it must match Scalar bit for bit.
func TestVectorShortFallbackMatchesScalarExactly(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	for n := 0; n < 4; n++ {
		a := randVec(r, n)
		b := randVec(r, n)
		want := Scalar(a, b)
		if got := Vector(a, b); got != want {
			t.Errorf("n=%d: Vector got %v, Scalar got %v", n, got, want)
		}
	}
}

func TestDotRemainderLengths(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	approx := cmpopts.EquateApprox(tolerance, 1e-6)

	for _, n := range []int{4, 5, 6, 7, 9, 15, 100, 1023} {
		a := randVec(r, n)
		b := randVec(r, n)
		want := Scalar(a, b)

		for _, v := range Variants()[1:] {
			got := v.Func(a, b)
			if diff := cmp.Diff(want, got, approx); diff != "" {
				t.Errorf("n=%d %s vs scalar (-want +got):\n%s", n, v.Name, diff)
			}
		}
	}
}

func TestDotAgreesWithVek(t *testing.T) {
	r := rand.New(rand.NewSource(54321))
	approx := cmpopts.EquateApprox(tolerance, 1e-6)

	a := randVec(r, 1023)
	b := randVec(r, 1023)
	want := vek32.Dot(a, b)

	for _, v := range Variants() {
		got := v.Func(a, b)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("%s vs vek (-want +got):\n%s", v.Name, diff)
		}
	}
}

// The elementwise products commute and the accumulation order only depends
// on the indices, so swapping the argument order must not change a single
// bit for any tier.
func TestDotCommutative(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	for _, n := range []int{0, 1, 3, 4, 7, 256, 1023} {
		a := randVec(r, n)
		b := randVec(r, n)
		for _, v := range Variants() {
			if v.Func(a, b) != v.Func(b, a) {
				t.Errorf("n=%d %s: dot(a,b) != dot(b,a)", n, v.Name)
			}
		}
	}
}

// Permuting both inputs identically reorders the additions but keeps the
// same set of products, so Scalar must agree within tolerance.
func TestDotPermutationInvariance(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	n := 1023
	a := randVec(r, n)
	b := randVec(r, n)
	want := Scalar(a, b)

	perm := r.Perm(n)
	pa := make([]float32, n)
	pb := make([]float32, n)
	for i, p := range perm {
		pa[i] = a[p]
		pb[i] = b[p]
	}

	got := Scalar(pa, pb)
	if math32.Abs(got-want) > tolerance*math32.Max(1, math32.Abs(want)) {
		t.Errorf("permuted input: got %v, want %v", got, want)
	}
}

func TestDotNaNPropagates(t *testing.T) {
	// Index 5 lands in the tail when n=6 is split as one block of four plus
	// two leftovers, so both the block loop and the tail see special values
	// across the tiers.
	for _, idx := range []int{0, 5} {
		a := []float32{1, 2, 3, 4, 5, 6}
		b := []float32{6, 5, 4, 3, 2, 1}
		a[idx] = math32.NaN()

		for _, v := range Variants() {
			if got := v.Func(a, b); !math32.IsNaN(got) {
				t.Errorf("%s with NaN at %d: got %v, want NaN", v.Name, idx, got)
			}
		}
	}
}

func TestDotInfPropagates(t *testing.T) {
	for _, idx := range []int{0, 5} {
		a := []float32{1, 2, 3, 4, 5, 6}
		b := []float32{6, 5, 4, 3, 2, 1}
		a[idx] = math32.Inf(1)

		for _, v := range Variants() {
			if got := v.Func(a, b); !math32.IsInf(got, 1) {
				t.Errorf("%s with +Inf at %d: got %v, want +Inf", v.Name, idx, got)
			}
		}
	}
}

func TestDotMismatchedLengthPanics(t *testing.T) {
	for _, v := range Variants() {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic for mismatched lengths", v.Name)
				}
			}()
			v.Func(make([]float32, 8), make([]float32, 7))
		}()
	}
}
