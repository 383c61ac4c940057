package genlib

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	. "github.com/mmcloughlin/avo/reg"
)

// GenDot4Lane emits a 4-lane SSE2 dot-product reduction: one XMM
// accumulator over unaligned 4-element blocks, a scalar tail, and a
// pairwise horizontal reduce.  n, aPtr and bPtr are clobbered.
func GenDot4Lane(n Register, aPtr, bPtr Register) Register {
	acc := XMM()
	XORPS(acc, acc)

	// Loop over blocks of four and process them with vector instructions.
	Label("dotblockloop")
	CMPQ(n, U32(4))
	JL(LabelRef("dottail"))

	x := XMM()
	y := XMM()
	MOVUPS(Mem{Base: aPtr}, x)
	MOVUPS(Mem{Base: bPtr}, y)
	MULPS(y, x)
	ADDPS(x, acc)

	ADDQ(U32(16), aPtr)
	ADDQ(U32(16), bPtr)
	SUBQ(U32(4), n)

	JMP(LabelRef("dotblockloop"))

	// Process any trailing entries.
	Label("dottail")
	tailAccumulator := XMM()
	XORPS(tailAccumulator, tailAccumulator)

	Label("dottailloop")
	CMPQ(n, U32(0))
	JE(LabelRef("dotreduce"))

	tailElement := XMM()
	MOVSS(Mem{Base: aPtr}, tailElement)
	MULSS(Mem{Base: bPtr}, tailElement)
	ADDSS(tailElement, tailAccumulator)

	ADDQ(U32(4), aPtr)
	ADDQ(U32(4), bPtr)
	DECQ(n)
	JMP(LabelRef("dottailloop"))

	// Reduce the lanes to one.  Two horizontal adds leave
	// (l0+l1)+(l2+l3) in lane 0.
	Label("dotreduce")
	HADDPS(acc, acc)
	HADDPS(acc, acc)
	ADDSS(tailAccumulator, acc)

	return acc
}
