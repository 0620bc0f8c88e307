package dsu

import "sync"

// Synced is a Forest guarded by a mutex, for sharing between goroutines.
//
// Queries compress paths, so every method takes the exclusive lock.
type Synced struct {
	mu sync.Mutex
	f  *Forest
}

// NewSynced returns a Synced forest of n singleton groups.
func NewSynced(n int) *Synced {
	return &Synced{f: New(n)}
}

// Len returns the number of elements.
func (s *Synced) Len() int {
	return s.f.Len()
}

// Count returns the number of groups.
func (s *Synced) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Count()
}

// Leader returns the representative of the group containing v.
func (s *Synced) Leader(v int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Leader(v)
}

// Merge joins the groups containing u and v and reports whether they were distinct.
func (s *Synced) Merge(u, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Merge(u, v)
}

// Same reports whether u and v are in the same group.
func (s *Synced) Same(u, v int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Same(u, v)
}

// Size returns the number of elements in the group containing v.
func (s *Synced) Size(v int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Size(v)
}

// Groups returns every group, ordered by leader id.
func (s *Synced) Groups() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Groups()
}

// Check verifies the forest's invariants.
func (s *Synced) Check() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Check()
}

// Do runs fn with exclusive access to the underlying forest, for sequences of
// operations that must not interleave with other goroutines.
func (s *Synced) Do(fn func(f *Forest)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.f)
}
