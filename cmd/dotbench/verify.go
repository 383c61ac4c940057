package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/ahmedtd/dotprod/internal/cpufeat"
	"github.com/ahmedtd/dotprod/kernel"

	"github.com/chewxy/math32"
	"github.com/google/subcommands"
)

// tolerance is the relative disagreement allowed between a kernel tier and
// the scalar reference.  The tiers accumulate in different orders, so exact
// equality is not expected.
const tolerance = 1e-4

type VerifyCommand struct {
	size int
	seed int64
}

var _ subcommands.Command = (*VerifyCommand)(nil)

func (*VerifyCommand) Name() string {
	return "verify"
}

func (*VerifyCommand) Synopsis() string {
	return "Cross-check every kernel tier against the scalar reference"
}

func (*VerifyCommand) Usage() string {
	return ``
}

func (c *VerifyCommand) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.size, "size", 1023, "Vector length to verify with")
	f.Int64Var(&c.seed, "seed", 12345, "Seed for the random test vectors")
}

func (c *VerifyCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *VerifyCommand) executeErr(ctx context.Context) error {
	log.Printf("cpu: %s", cpufeat.Describe())

	r := rand.New(rand.NewSource(c.seed))
	a := randVec(r, c.size)
	b := randVec(r, c.size)

	want := kernel.Scalar(a, b)

	for _, v := range kernel.Variants() {
		if v.Name == "scalar" {
			continue
		}

		got := v.Func(a, b)
		diff := math32.Abs(got - want)
		if diff > tolerance*math32.Max(1, math32.Abs(want)) {
			return fmt.Errorf("variant %s failed verification: got %v, want %v, diff %v", v.Name, got, want, diff)
		}

		log.Printf("variant %s ok: got %v, want %v, diff %v", v.Name, got, want, diff)
	}

	return nil
}
