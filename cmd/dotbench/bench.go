package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/ahmedtd/dotprod/internal/cpufeat"
	"github.com/ahmedtd/dotprod/kernel"

	"github.com/google/subcommands"
	"github.com/viterin/vek/vek32"
)

type BenchCommand struct {
	sizes      string
	iterations int

	cpuProfileFile string
}

var _ subcommands.Command = (*BenchCommand)(nil)

func (*BenchCommand) Name() string {
	return "bench"
}

func (*BenchCommand) Synopsis() string {
	return "Time every kernel tier over a grid of vector sizes"
}

func (*BenchCommand) Usage() string {
	return ``
}

func (c *BenchCommand) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sizes, "sizes", "512,2048,8192,32768,131072", "Comma-separated vector sizes to benchmark")
	f.IntVar(&c.iterations, "iterations", 100000, "Timed iterations per variant and size")

	f.StringVar(&c.cpuProfileFile, "cpu-profile", "", "Write a CPU profile")
}

func (c *BenchCommand) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.executeErr(ctx); err != nil {
		log.Printf("Error: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *BenchCommand) executeErr(ctx context.Context) error {
	if c.cpuProfileFile != "" {
		f, err := os.Create(c.cpuProfileFile)
		if err != nil {
			return fmt.Errorf("while creating CPU profile file: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("while starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	sizes, err := c.parseSizes()
	if err != nil {
		return fmt.Errorf("while parsing --sizes: %w", err)
	}

	impls := append(kernel.Variants(), kernel.Variant{Name: "vek", Description: "viterin/vek comparison baseline", Func: vek32.Dot})

	log.Printf("cpu: %s", cpufeat.Describe())

	r := rand.New(rand.NewSource(1))
	for _, size := range sizes {
		a := randVec(r, size)
		b := randVec(r, size)

		for _, impl := range impls {
			// The checksum keeps the compiler from discarding the calls and
			// doubles as a sanity value in the report.
			var sink float32

			warmup := c.iterations / 10
			if warmup < 10 {
				warmup = 10
			}
			for i := 0; i < warmup; i++ {
				sink += impl.Func(a, b)
			}

			start := time.Now()
			for i := 0; i < c.iterations; i++ {
				sink += impl.Func(a, b)
			}
			elapsed := time.Since(start)

			nsPerOp := float64(elapsed.Nanoseconds()) / float64(c.iterations)
			gflops := 2 * float64(size) / nsPerOp

			log.Printf("size=%d impl=%s ns/op=%.1f gflops=%.2f checksum=%g",
				size, impl.Name, nsPerOp, gflops, sink)
		}
	}

	return nil
}

func (c *BenchCommand) parseSizes() ([]int, error) {
	var sizes []int
	for _, s := range strings.Split(c.sizes, ",") {
		size, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		if size < 1 {
			return nil, fmt.Errorf("size %d is not positive", size)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}
