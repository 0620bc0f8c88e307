package main

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/phroun/dsu"
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
	Err      error
}

func (r BenchResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%-40s %12v  ERROR: %v", r.Name, r.Duration.Round(time.Microsecond), r.Err)
	}
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Microsecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Microsecond))
}

// benchRandomMerges merges ops random pairs into a fresh forest of n elements.
func benchRandomMerges(n, ops int, seed uint64) BenchResult {
	name := fmt.Sprintf("Random merges (n=%d)", n)
	rng := rand.New(rand.NewPCG(seed, uint64(n)))
	f := dsu.New(n)

	start := time.Now()
	merged := 0
	for i := 0; i < ops; i++ {
		if f.Merge(rng.IntN(n), rng.IntN(n)) {
			merged++
		}
	}
	d := time.Since(start)

	return BenchResult{
		Name:     name,
		Duration: d,
		Ops:      ops,
		Extra:    fmt.Sprintf("%d merged, %d groups", merged, f.Count()),
		Err:      f.Check(),
	}
}

// benchMixed runs a merge/same/size mix with merges a quarter of the time.
func benchMixed(n, ops int, seed uint64) BenchResult {
	name := fmt.Sprintf("Mixed merge/same/size (n=%d)", n)
	rng := rand.New(rand.NewPCG(seed, uint64(n)+1))
	f := dsu.New(n)

	start := time.Now()
	hits := 0
	for i := 0; i < ops; i++ {
		u, v := rng.IntN(n), rng.IntN(n)
		switch rng.IntN(4) {
		case 0:
			f.Merge(u, v)
		case 1, 2:
			if f.Same(u, v) {
				hits++
			}
		case 3:
			f.Size(u)
		}
	}
	d := time.Since(start)

	return BenchResult{
		Name:     name,
		Duration: d,
		Ops:      ops,
		Extra:    fmt.Sprintf("%d same hits", hits),
		Err:      f.Check(),
	}
}

// benchChain builds one long path by always merging a singleton into the
// running group, then measures leader lookups from every element.
func benchChain(n int) BenchResult {
	name := fmt.Sprintf("Chain merge + leader sweep (n=%d)", n)
	f := dsu.New(n)

	start := time.Now()
	for v := 1; v < n; v++ {
		f.Merge(v, v-1)
	}
	for v := 0; v < n; v++ {
		f.Leader(v)
	}
	d := time.Since(start)

	return BenchResult{
		Name:     name,
		Duration: d,
		Ops:      2*n - 1,
		Err:      f.Check(),
	}
}

// benchGroups enumerates the groups of a randomly merged forest.
func benchGroups(n int, seed uint64) BenchResult {
	name := fmt.Sprintf("Groups enumeration (n=%d)", n)
	rng := rand.New(rand.NewPCG(seed, uint64(n)+2))
	f := dsu.New(n)
	for i := 0; i < n/2; i++ {
		f.Merge(rng.IntN(n), rng.IntN(n))
	}

	start := time.Now()
	groups := f.Groups()
	d := time.Since(start)

	var err error
	if len(groups) != f.Count() {
		err = fmt.Errorf("%d groups enumerated, Count() = %d", len(groups), f.Count())
	}
	return BenchResult{
		Name:     name,
		Duration: d,
		Ops:      n,
		Extra:    fmt.Sprintf("%d groups", len(groups)),
		Err:      err,
	}
}

// benchSynced spreads ops random merges over GOMAXPROCS goroutines sharing
// one Synced forest.
func benchSynced(n, ops int, seed uint64) BenchResult {
	workers := runtime.GOMAXPROCS(0)
	name := fmt.Sprintf("Synced merges, %d workers (n=%d)", workers, n)
	s := dsu.NewSynced(n)

	var wg sync.WaitGroup
	start := time.Now()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(seed, uint64(w)))
			for i := w; i < ops; i += workers {
				s.Merge(rng.IntN(n), rng.IntN(n))
			}
		}(w)
	}
	wg.Wait()
	d := time.Since(start)

	return BenchResult{
		Name:     name,
		Duration: d,
		Ops:      ops,
		Extra:    fmt.Sprintf("%d groups", s.Count()),
		Err:      s.Check(),
	}
}
