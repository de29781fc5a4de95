package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

type sweepResult struct {
	workers    int
	mean       time.Duration
	fastest    time.Duration
	population int
}

func (r sweepResult) String() string {
	return fmt.Sprintf("workers=%-3d mean=%-12s fastest=%-12s population=%d",
		r.workers, r.mean.Round(time.Microsecond), r.fastest.Round(time.Microsecond), r.population)
}

func main() {
	width := flag.Int("w", 512, "grid width")
	height := flag.Int("h", 512, "grid height")
	steps := flag.Int("steps", 200, "generations to advance per worker count")
	maxWorkers := flag.Int("workers", runtime.NumCPU(), "largest worker count to try")
	seed := flag.Int64("seed", 42, "seed for the starting world")
	flag.Parse()

	if *steps <= 0 || *maxWorkers <= 0 {
		fmt.Fprintln(os.Stderr, "steps and workers must be positive")
		os.Exit(2)
	}

	fmt.Printf("Sweeping %dx%d for %d generations (1..%d workers)\n", *width, *height, *steps, *maxWorkers)
	results := make([]sweepResult, 0, *maxWorkers)
	for workers := 1; workers <= *maxWorkers; workers++ {
		res, err := sweep(*width, *height, *steps, workers, *seed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sweep: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(res)
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].mean < results[j].mean })
	fmt.Printf("\nBest overall: %s\n", results[0])
}

// sweep advances the same seeded world steps times with the given worker
// count and reports the advance timings.
func sweep(w, h, steps, workers int, seed int64) (sweepResult, error) {
	world, err := life.NewRandom(w, h, core.NewRNG(seed), life.WithWorkers(workers))
	if err != nil {
		return sweepResult{}, err
	}
	res := sweepResult{workers: workers, fastest: time.Duration(1<<63 - 1)}
	var total time.Duration
	for i := 0; i < steps; i++ {
		world = world.Advance()
		took := world.LastAdvance()
		total += took
		res.fastest = min(res.fastest, took)
	}
	res.mean = total / time.Duration(steps)
	res.population = world.Population()
	return res, nil
}
