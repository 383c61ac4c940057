//go:build goexperiment.simd && amd64

package kernel

import "simd"

// dotVector processes four float32 lanes per iteration with unaligned
// loads.  The caller (Vector) has already checked the lengths and routed
// inputs shorter than one vector width to the scalar path.
func dotVector(a, b []float32) float32 {
	var acc simd.Float32x4
	i := 0
	for ; i+4 <= len(a); i += 4 { // this idiom is friendly to bounds check elimination
		av := simd.LoadFloat32x4Slice(a[i : i+4])
		bv := simd.LoadFloat32x4Slice(b[i : i+4])
		acc = acc.Add(av.Mul(bv))
	}

	// Reduce the lanes to one.
	acc = acc.AddPairs(acc) // l0 l1 l2 l3 AP l0 l1 l2 l3 -> l0+l1 l2+l3 l0+l1 l2+l3
	acc = acc.AddPairs(acc) // -> (l0+l1)+(l2+l3) _ _ _
	sum := acc.GetElem(0)

	// Handle the tail.
	for ; i < len(a); i++ {
		sum += a[i] * b[i]
	}

	return sum
}
