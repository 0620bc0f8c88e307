package dsu

import (
	"fmt"
	"strings"
)

// Forest is a disjoint-set forest over the elements 0..Len()-1.
//
// A Forest is not safe for concurrent use: every query compresses paths and
// therefore writes. Use Synced, or guard the whole value with a mutex, when it
// is shared between goroutines.
type Forest struct {
	// p[i] < 0: i is a root and -p[i] is the size of its group.
	// p[i] >= 0: p[i] is the parent of i.
	p     []int
	n     int
	count int // groups remaining
}

// New returns a forest of n singleton groups.
// It panics if n is negative.
func New(n int) *Forest {
	if n < 0 {
		panic(fmt.Errorf("dsu: New(%d): %w", n, ErrNegativeSize))
	}
	p := make([]int, n)
	for i := range p {
		p[i] = -1
	}
	return &Forest{p: p, n: n, count: n}
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int {
	return f.n
}

// Count returns the number of groups in the current partition.
func (f *Forest) Count() int {
	return f.count
}

// Leader returns the representative of the group containing v.
//
// Every element visited on the way to the root is re-pointed directly at the
// root.
func (f *Forest) Leader(v int) int {
	f.check("Leader", v)
	return f.leader(v)
}

func (f *Forest) leader(v int) int {
	root := v
	for f.p[root] >= 0 {
		root = f.p[root]
	}
	// Path compression.
	for v != root {
		next := f.p[v]
		f.p[v] = root
		v = next
	}
	return root
}

// Merge joins the groups containing u and v. The smaller group is attached
// under the larger one; on a tie the leader of u stays the leader.
//
// Merge reports whether the partition changed, i.e. false if u and v were
// already in the same group.
func (f *Forest) Merge(u, v int) bool {
	f.check("Merge", u)
	f.check("Merge", v)

	u, v = f.leader(u), f.leader(v)
	if u == v {
		return false
	}
	// Sizes are stored negated, so the larger group has the smaller value.
	if f.p[u] > f.p[v] {
		u, v = v, u
	}
	f.p[u] += f.p[v]
	f.p[v] = u
	f.count--
	return true
}

// Same reports whether u and v are in the same group.
func (f *Forest) Same(u, v int) bool {
	f.check("Same", u)
	f.check("Same", v)
	return f.leader(u) == f.leader(v)
}

// Size returns the number of elements in the group containing v.
func (f *Forest) Size(v int) int {
	f.check("Size", v)
	return -f.p[f.leader(v)]
}

// Groups returns every group of the partition.
//
// Groups are ordered by the id of their leader at the time of the call, and
// the elements of each group are in ascending order.
func (f *Forest) Groups() [][]int {
	buckets := make([][]int, f.n)
	for v := 0; v < f.n; v++ {
		r := f.leader(v)
		if buckets[r] == nil {
			buckets[r] = make([]int, 0, -f.p[r])
		}
		buckets[r] = append(buckets[r], v)
	}

	groups := make([][]int, 0, f.count)
	for _, b := range buckets {
		if len(b) > 0 {
			groups = append(groups, b)
		}
	}
	return groups
}

// Check verifies the forest's invariants: every slot holds a valid parent or
// a root size, parent chains are acyclic, root sizes match the number of
// elements reaching them and sum to Len, and Count matches the root count.
// It does not compress paths.
func (f *Forest) Check() error {
	if len(f.p) != f.n {
		return fmt.Errorf("%w: %d slots for %d elements", ErrCorrupt, len(f.p), f.n)
	}

	roots := 0
	total := 0
	for i, x := range f.p {
		switch {
		case x < 0:
			if x < -f.n {
				return fmt.Errorf("%w: root %d has size %d > %d", ErrCorrupt, i, -x, f.n)
			}
			roots++
			total += -x
		case x >= f.n:
			return fmt.Errorf("%w: element %d has parent %d out of range", ErrCorrupt, i, x)
		}
	}
	if total != f.n {
		return fmt.Errorf("%w: group sizes sum to %d, want %d", ErrCorrupt, total, f.n)
	}
	if roots != f.count {
		return fmt.Errorf("%w: %d roots but count is %d", ErrCorrupt, roots, f.count)
	}

	members := make(map[int]int, roots)
	for i := range f.p {
		r := i
		// Any chain longer than n revisits a slot.
		for steps := 0; f.p[r] >= 0; steps++ {
			if steps >= f.n {
				return fmt.Errorf("%w: cycle reachable from element %d", ErrCorrupt, i)
			}
			r = f.p[r]
		}
		members[r]++
	}
	for r, c := range members {
		if c != -f.p[r] {
			return fmt.Errorf("%w: root %d records size %d but has %d members", ErrCorrupt, r, -f.p[r], c)
		}
	}
	return nil
}

// String renders the partition, e.g. "dsu.Forest{[0 1 2] [3 4]}".
func (f *Forest) String() string {
	var sb strings.Builder
	sb.WriteString("dsu.Forest{")
	for i, g := range f.Groups() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, g)
	}
	sb.WriteByte('}')
	return sb.String()
}

func (f *Forest) check(op string, v int) {
	if v < 0 || v >= f.n {
		panic(&RangeError{Op: op, Index: v, Len: f.n})
	}
}
