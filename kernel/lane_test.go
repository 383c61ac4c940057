package kernel

import "testing"

func TestVec4Ops(t *testing.T) {
	v := loadVec4([]float32{1, 2, 3, 4})
	w := loadVec4([]float32{5, 6, 7, 8})

	if got := v.mul(w); got != (vec4{5, 12, 21, 32}) {
		t.Errorf("mul: got %v", got)
	}
	if got := v.add(w); got != (vec4{6, 8, 10, 12}) {
		t.Errorf("add: got %v", got)
	}
	if got := v.mul(w).horizontalSum(); got != 70.0 {
		t.Errorf("horizontalSum: got %v, want 70", got)
	}
}

// horizontalSum must combine (l0+l1)+(l2+l3), not fold left to right.  With
// these values the pairwise order cancels the large terms pair by pair and
// yields 0, while a flat fold would absorb the 1 at lane 1 and yield 1.
func TestVec4HorizontalSumIsPairwise(t *testing.T) {
	v := vec4{1e8, 1, -1e8, 1}
	if got := v.horizontalSum(); got != 0.0 {
		t.Errorf("got %v, want 0", got)
	}
}
