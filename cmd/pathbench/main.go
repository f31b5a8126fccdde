package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"pathviz/internal/bench"
	"pathviz/internal/monitoring"

	"github.com/google/uuid"
)

func main() {
	def := bench.DefaultConfig()
	maps := flag.Int("maps", def.Maps, "number of random maps to evaluate")
	rows := flag.Int("rows", def.Rows, "grid rows")
	cols := flag.Int("cols", def.Cols, "grid columns")
	seed := flag.Int64("seed", def.Seed, "seed of the first map; map i uses seed+i")
	wallProb := flag.Float64("wall-prob", def.WallProb, "wall probability for generated maps")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	algos := flag.String("algos", "", "comma separated algorithms to run (default: all)")
	out := flag.String("out", "", "directory for the bar chart; a run ID subdirectory is created")
	verbose := flag.Bool("v", false, "log per-engine diagnostics")
	flag.Parse()

	if !*verbose {
		monitoring.SetLogger(nil)
	}

	cfg := def
	cfg.Maps = *maps
	cfg.Rows, cfg.Cols = *rows, *cols
	cfg.Seed = *seed
	cfg.WallProb = *wallProb
	cfg.Workers = *workers
	if *algos != "" {
		cfg.Algorithms = strings.Split(*algos, ",")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runID := uuid.New().String()
	fmt.Printf("Run %s: %d maps of %dx%d, seed %d, wall prob %.2f\n", runID, cfg.Maps, cfg.Rows, cfg.Cols, cfg.Seed, cfg.WallProb)

	began := time.Now()
	results, err := bench.Run(ctx, cfg)
	if err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
	summaries := bench.Summarize(results)

	fmt.Printf("\n%-10s %6s %8s %12s %10s %10s %10s %12s\n", "algorithm", "runs", "solved", "advances", "std", "closed", "length", "elapsed")
	for _, s := range summaries {
		fmt.Printf("%-10s %6d %7.0f%% %12.1f %10.1f %10.1f %10.2f %12s\n",
			s.Algorithm, s.Runs, 100*s.SuccessRate(), s.MeanAdvances, s.StdAdvances, s.MeanClosed, s.MeanLength, s.MeanElapsed.Round(time.Microsecond))
	}
	fmt.Printf("\nCompleted %d runs in %s\n", len(results), time.Since(began).Round(time.Millisecond))

	if *out == "" {
		return
	}
	dir := filepath.Join(*out, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("create output directory: %v", err)
	}
	file := filepath.Join(dir, "advances.png")
	if err := bench.WriteChart(summaries, fmt.Sprintf("Mean advances over %d maps", cfg.Maps), file); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Chart written to %s\n", file)
}
