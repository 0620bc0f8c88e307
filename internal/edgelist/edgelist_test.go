package edgelist

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phroun/dsu"
)

func TestDecode(t *testing.T) {
	d, err := Decode(strings.NewReader("size: 5\nedges:\n  - [0, 1]\n  - [1, 2]\n  - [3, 4]\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, d.Size)
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {3, 4}}, d.Edges)

	f, err := d.Build()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}}, f.Groups())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
	}{
		{"empty", "", nil},
		{"not yaml", "size: [", nil},
		{"edge too long", "size: 2\nedges:\n  - [0, 1, 1]\n", nil},
		{"edge too short", "size: 2\nedges:\n  - [0]\n", nil},
		{"size too large", "size: 4611686018427387904\n", ErrSizeLimit},
		{"negative size", "size: -1\n", dsu.ErrNegativeSize},
		{"endpoint too large", "size: 3\nedges:\n  - [0, 3]\n", dsu.ErrOutOfRange},
		{"negative endpoint", "size: 3\nedges:\n  - [-1, 0]\n", dsu.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestValidateSizeLimit(t *testing.T) {
	assert.NoError(t, (&Document{Size: MaxSize}).Validate())

	d := &Document{Size: MaxSize + 1}
	assert.ErrorIs(t, d.Validate(), ErrSizeLimit)
	_, err := d.Build()
	assert.ErrorIs(t, err, ErrSizeLimit)
}

func TestFromForest(t *testing.T) {
	f := dsu.New(6)
	f.Merge(5, 1)
	f.Merge(5, 3)
	f.Merge(4, 0)

	d := FromForest(f)
	assert.Equal(t, 6, d.Size)
	assert.Equal(t, []Edge{{0, 4}, {1, 3}, {1, 5}}, d.Edges)
}

func TestRoundTrip(t *testing.T) {
	f := dsu.New(8)
	f.Merge(0, 7)
	f.Merge(2, 3)
	f.Merge(3, 6)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FromForest(f)))

	d, err := Decode(&buf)
	require.NoError(t, err)
	g, err := d.Build()
	require.NoError(t, err)

	for u := 0; u < 8; u++ {
		for v := 0; v < 8; v++ {
			assert.Equal(t, f.Same(u, v), g.Same(u, v), "Same(%d, %d)", u, v)
		}
	}
	assert.Equal(t, f.Count(), g.Count())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.yaml")

	f := dsu.New(4)
	f.Merge(1, 2)
	require.NoError(t, Save(path, f))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1, 2}, {3}}, g.Groups())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
