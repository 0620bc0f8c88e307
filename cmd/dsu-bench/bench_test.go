package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phroun/dsu/internal/config"
)

func TestWorkloads(t *testing.T) {
	tests := []struct {
		name string
		fn   func() BenchResult
		ops  int
	}{
		{"random merges", func() BenchResult { return benchRandomMerges(100, 500, 1) }, 500},
		{"mixed", func() BenchResult { return benchMixed(100, 500, 1) }, 500},
		{"chain", func() BenchResult { return benchChain(100) }, 199},
		{"groups", func() BenchResult { return benchGroups(100, 1) }, 100},
		{"synced", func() BenchResult { return benchSynced(100, 500, 1) }, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.fn()
			assert.NoError(t, r.Err)
			assert.Equal(t, tt.ops, r.Ops)
			assert.NotEmpty(t, r.Name)
		})
	}
}

func TestRandomMergesDeterministic(t *testing.T) {
	a := benchRandomMerges(64, 200, 9)
	b := benchRandomMerges(64, 200, 9)
	assert.Equal(t, a.Extra, b.Extra)
}

func TestBenchResultString(t *testing.T) {
	tests := []struct {
		name string
		r    BenchResult
		want string
	}{
		{"ops", BenchResult{Name: "x", Duration: time.Second, Ops: 10}, "(10 ops, 10.00 ops/sec)"},
		{"extra", BenchResult{Name: "x", Duration: time.Second, Extra: "3 groups"}, "3 groups"},
		{"error", BenchResult{Name: "x", Err: errors.New("broken")}, "ERROR: broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.r.String(), tt.want)
		})
	}
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, config.BenchConfig{Sizes: []int{16, 32}, Ops: 100, Seed: 3})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "n = 16:")
	assert.Contains(t, out.String(), "n = 32:")
	assert.Contains(t, out.String(), "SUMMARY")
	assert.NotContains(t, out.String(), "ERROR")
}
