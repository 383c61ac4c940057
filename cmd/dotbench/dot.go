package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ahmedtd/dotprod/kernel"

	"github.com/chewxy/math32"
	"github.com/google/subcommands"
	"github.com/sbinet/npyio"
)

type DotCommand struct {
	aFile string
	bFile string
	impl  string
}

var _ subcommands.Command = (*DotCommand)(nil)

func (*DotCommand) Name() string {
	return "dot"
}

func (*DotCommand) Synopsis() string {
	return "Compute the dot product of two float32 vectors stored as .npy files"
}

func (*DotCommand) Usage() string {
	return ``
}

func (c *DotCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.aFile, "a", "", "Path to the first vector (.npy, float32)")
	f.StringVar(&c.bFile, "b", "", "Path to the second vector (.npy, float32)")
	f.StringVar(&c.impl, "impl", "auto", "Kernel tier to use: auto, scalar, unrolled, or vector")
}

func (c *DotCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *DotCommand) executeErr(ctx context.Context) error {
	a, err := loadVector(c.aFile)
	if err != nil {
		return fmt.Errorf("while loading first vector: %w", err)
	}
	b, err := loadVector(c.bFile)
	if err != nil {
		return fmt.Errorf("while loading second vector: %w", err)
	}

	if len(a) != len(b) {
		return fmt.Errorf("vector lengths differ: %d vs %d", len(a), len(b))
	}

	k, name, err := c.resolveKernel()
	if err != nil {
		return err
	}

	result := k(a, b)
	log.Printf("dot = %g (impl=%s, n=%d)", result, name, len(a))

	// Report the spread across tiers; the accumulation orders differ, so
	// small disagreements are expected.
	want := kernel.Scalar(a, b)
	for _, v := range kernel.Variants() {
		got := v.Func(a, b)
		log.Printf("variant %s: %g (diff from scalar %g)", v.Name, got, math32.Abs(got-want))
	}

	return nil
}

func (c *DotCommand) resolveKernel() (kernel.Kernel, string, error) {
	if c.impl == "auto" {
		k, name := pickKernel()
		return k, name, nil
	}

	for _, v := range kernel.Variants() {
		if v.Name == c.impl {
			return v.Func, v.Name, nil
		}
	}

	return nil, "", fmt.Errorf("unknown kernel tier %q", c.impl)
}

func loadVector(path string) ([]float32, error) {
	if path == "" {
		return nil, fmt.Errorf("no path given")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("while opening %s: %w", path, err)
	}
	defer f.Close()

	var data []float32
	if err := npyio.Read(f, &data); err != nil {
		return nil, fmt.Errorf("while reading %s: %w", path, err)
	}

	return data, nil
}
