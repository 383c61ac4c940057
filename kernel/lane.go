package kernel

// vec4 is a fixed-width four-lane vector: just wide enough to express the
// load / multiply / add / horizontal-reduce steps of the vector tier
// without hardware intrinsics.  The lane operations are written element by
// element so the compiler can auto-vectorize them on targets where the
// intrinsic path (dot_vector_simd.go) is unavailable.
type vec4 [4]float32

// loadVec4 reads four consecutive elements.  The caller guarantees
// len(s) >= 4; no alignment is assumed.
func loadVec4(s []float32) vec4 {
	return vec4{s[0], s[1], s[2], s[3]}
}

func (v vec4) mul(w vec4) vec4 {
	return vec4{v[0] * w[0], v[1] * w[1], v[2] * w[2], v[3] * w[3]}
}

func (v vec4) add(w vec4) vec4 {
	return vec4{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// horizontalSum reduces the lanes pairwise, the same (s0+s1)+(s2+s3)
// combination Unrolled uses.
func (v vec4) horizontalSum() float32 {
	return (v[0] + v[1]) + (v[2] + v[3])
}
