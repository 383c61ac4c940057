// Command dotbench verifies, benchmarks, and runs the dotprod kernel tiers.
//
// To verify: `go run ./cmd/dotbench verify --size=1023`
//
// To benchmark: `go run ./cmd/dotbench bench --sizes=512,8192 --iterations=100000`
//
// To compute: `go run ./cmd/dotbench dot --a=a.npy --b=b.npy`
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"

	"github.com/ahmedtd/dotprod/internal/cpufeat"
	"github.com/ahmedtd/dotprod/kernel"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&VerifyCommand{}, "")
	subcommands.Register(&BenchCommand{}, "")
	subcommands.Register(&DotCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// pickKernel resolves the preferred tier once at startup.  The vector tier
// is chosen only when the host executes 4-wide float32 arithmetic natively;
// otherwise the unrolled tier is the best scalar strategy.
func pickKernel() (kernel.Kernel, string) {
	if cpufeat.HasVector4() {
		return kernel.Vector, "vector"
	}
	return kernel.Unrolled, "unrolled"
}

func randVec(r *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = r.Float32()*2 - 1
	}
	return v
}
