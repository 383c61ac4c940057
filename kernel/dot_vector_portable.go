//go:build !amd64 || !goexperiment.simd

package kernel

// dotVector runs the 4-lane reduction on the portable vec4 lane type.  Same
// shape as the intrinsic path: accumulate full blocks, reduce the lanes
// pairwise, fold the tail in sequentially.
func dotVector(a, b []float32) float32 {
	var acc vec4
	i := 0
	for ; i+4 <= len(a); i += 4 {
		acc = acc.add(loadVec4(a[i : i+4]).mul(loadVec4(b[i : i+4])))
	}

	sum := acc.horizontalSum()

	for ; i < len(a); i++ {
		sum += a[i] * b[i]
	}

	return sum
}
