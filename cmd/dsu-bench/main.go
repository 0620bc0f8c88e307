// dsu-bench is a benchmark and stress test for the dsu package.
// Every workload verifies the forest's invariants when it finishes.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phroun/dsu/internal/config"
	"github.com/phroun/dsu/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "dsu-bench",
		Short: "Benchmark the disjoint-set forest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			_, logCloser, err := logger.Init(cfg.Log, nil)
			if err != nil {
				return err
			}
			defer logCloser.Close()
			return run(cmd.OutOrStdout(), cfg.Bench)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().IntSlice("sizes", nil, "Forest sizes to benchmark")
	cmd.Flags().Int("ops", 0, "Operations per workload")
	cmd.Flags().Uint64("seed", 0, "Random seed")
	cmd.Flags().String("log-level", "", "Log level (debug, info, warn, error)")
	_ = v.BindPFlag("bench.sizes", cmd.Flags().Lookup("sizes"))
	_ = v.BindPFlag("bench.ops", cmd.Flags().Lookup("ops"))
	_ = v.BindPFlag("bench.seed", cmd.Flags().Lookup("seed"))
	_ = v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))

	return cmd
}

func run(out io.Writer, cfg config.BenchConfig) error {
	fmt.Fprintln(out, "DSU Benchmark and Stress Test")
	fmt.Fprintln(out, "=============================")
	fmt.Fprintf(out, "Sizes: %v, ops per workload: %d, seed: %d\n", cfg.Sizes, cfg.Ops, cfg.Seed)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintln(out)

	var results []BenchResult
	runBench := func(fn func() BenchResult) {
		result := fn()
		fmt.Fprintf(out, "  %-48s %v\n", result.Name, result.Duration.Round(time.Microsecond))
		if result.Err != nil {
			slog.Error("invariant check failed", "workload", result.Name, "error", result.Err)
		}
		results = append(results, result)
	}

	for _, n := range cfg.Sizes {
		slog.Info("running workloads", "size", n, "ops", cfg.Ops)
		fmt.Fprintf(out, "n = %d:\n", n)
		runBench(func() BenchResult { return benchRandomMerges(n, cfg.Ops, cfg.Seed) })
		runBench(func() BenchResult { return benchMixed(n, cfg.Ops, cfg.Seed) })
		runBench(func() BenchResult { return benchChain(n) })
		runBench(func() BenchResult { return benchGroups(n, cfg.Seed) })
		runBench(func() BenchResult { return benchSynced(n, cfg.Ops, cfg.Seed) })
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "SUMMARY")
	fmt.Fprintln(out, "=======")
	var errs []error
	for _, r := range results {
		fmt.Fprintln(out, r)
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, r.Err))
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Peak heap allocation: %d MB\n", m.HeapSys/(1024*1024))
	fmt.Fprintf(out, "Total allocations: %d MB\n", m.TotalAlloc/(1024*1024))

	return errors.Join(errs...)
}
