// Package edgelist reads and writes forests as YAML edge lists:
//
//	size: 5
//	edges:
//	  - [0, 1]
//	  - [3, 4]
//
// Edge lists are external input, so ids are validated and reported as errors
// rather than reaching the forest's panicking bounds checks.
package edgelist

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phroun/dsu"
)

// MaxSize is the largest forest size an edge list may declare.
const MaxSize = 1 << 26

// ErrSizeLimit indicates that an edge list declares more than MaxSize elements.
var ErrSizeLimit = errors.New("forest size exceeds limit")

// Edge is a pair of element ids to merge.
type Edge [2]int

// Document is the YAML form of an edge list.
type Document struct {
	Size  int    `yaml:"size"`
	Edges []Edge `yaml:"edges"`
}

// Validate checks the size and that every edge endpoint lies in [0, Size).
func (d *Document) Validate() error {
	if d.Size < 0 {
		return fmt.Errorf("size %d: %w", d.Size, dsu.ErrNegativeSize)
	}
	if d.Size > MaxSize {
		return fmt.Errorf("size %d: %w (%d)", d.Size, ErrSizeLimit, MaxSize)
	}
	for i, e := range d.Edges {
		for _, v := range e {
			if v < 0 || v >= d.Size {
				return fmt.Errorf("edge %d %v: %w", i, e, &dsu.RangeError{Op: "edge", Index: v, Len: d.Size})
			}
		}
	}
	return nil
}

// Build validates d and returns a forest with all of its edges merged.
func (d *Document) Build() (*dsu.Forest, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	f := dsu.New(d.Size)
	for _, e := range d.Edges {
		f.Merge(e[0], e[1])
	}
	return f, nil
}

// FromForest returns the smallest edge list that rebuilds f's partition: each
// group contributes one edge from its first element to every other member.
func FromForest(f *dsu.Forest) *Document {
	d := &Document{Size: f.Len(), Edges: []Edge{}}
	for _, g := range f.Groups() {
		for _, v := range g[1:] {
			d.Edges = append(d.Edges, Edge{g[0], v})
		}
	}
	return d
}

// Decode reads one document from r.
func Decode(r io.Reader) (*Document, error) {
	var d Document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty edge list")
		}
		return nil, fmt.Errorf("decode edge list: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Encode writes d to w.
func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode edge list: %w", err)
	}
	return enc.Close()
}

// Load reads and builds the edge list stored at path.
func Load(path string) (*dsu.Forest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	d, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d.Build()
}

// Save writes f to path as an edge list.
func Save(path string, f *dsu.Forest) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(file, FromForest(f)); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
