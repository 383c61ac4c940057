package main

import (
	"github.com/ahmedtd/dotprod/kernel/asm-generators/genlib"
	. "github.com/mmcloughlin/avo/build"
)

func main() {
	TEXT("dotKernel4Lane", NOSPLIT,
		"func(n int, a []float32, b []float32) float32")

	n := Load(Param("n"), GP64())
	aPtr := Load(Param("a").Base(), GP64())
	bPtr := Load(Param("b").Base(), GP64())

	result := genlib.GenDot4Lane(n, aPtr, bPtr)
	Store(result, ReturnIndex(0))

	RET()

	Generate()
}
