package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, []int{1 << 10, 1 << 16, 1 << 20}, cfg.Bench.Sizes)
	assert.Equal(t, 1_000_000, cfg.Bench.Ops)
	assert.Equal(t, uint64(1), cfg.Bench.Seed)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dsu.yaml")
	data := []byte(`
log:
  level: debug
  format: json
bench:
  sizes: [10, 20]
  ops: 500
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, []int{10, 20}, cfg.Bench.Sizes)
	assert.Equal(t, 500, cfg.Bench.Ops)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DSU_LOG_LEVEL", "warn")
	t.Setenv("DSU_BENCH_OPS", "42")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 42, cfg.Bench.Ops)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"json", Config{Log: LogConfig{Format: "JSON"}}, false},
		{"bad format", Config{Log: LogConfig{Format: "xml"}}, true},
		{"negative ops", Config{Bench: BenchConfig{Ops: -1}}, true},
		{"zero size", Config{Bench: BenchConfig{Sizes: []int{4, 0}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
