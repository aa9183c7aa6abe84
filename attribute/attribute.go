// Package attribute provides a sparse, generic ID→value mapping used to
// hang analysis results (dominators, ranks, orders, coordinates, ...) off
// a core.Graph without the graph itself knowing anything about them.
//
// An attribute.Store is a value-like object: cheap to construct, cheap
// to discard, and entirely independent of the graph's own storage. A
// single graph typically carries many attributes alive at once — a
// dominator tree, a rank assignment, an ordering, x/y coordinates — each
// its own Store.
package attribute

// Store is a sparse mapping from a small non-negative integer id to a
// value of type T. Both reading and writing an id past the current
// backing size grow the backing with the default value first, so Len
// grows from either; Ids still only reports ids an explicit Set has
// touched. Both Get and Set are O(1) amortized.
type Store[T any] struct {
	values  []T
	present []bool
	def     T
}

// NewStore returns a Store whose unset entries read as def.
func NewStore[T any](def T) *Store[T] {
	return &Store[T]{def: def}
}

// Get returns the value at id, or the store's default if id was never
// set. An id past the current backing size grows the backing first, so
// a Len call right after a Get observes it.
func (s *Store[T]) Get(id int) T {
	if id < 0 {
		return s.def
	}
	s.grow(id)
	if !s.present[id] {
		return s.def
	}
	return s.values[id]
}

// Has reports whether id has an explicitly set value.
func (s *Store[T]) Has(id int) bool {
	return id >= 0 && id < len(s.present) && s.present[id]
}

// Set stores v at id, growing the backing with the default value as
// needed.
func (s *Store[T]) Set(id int, v T) {
	s.grow(id)
	s.values[id] = v
	s.present[id] = true
}

// Unset clears any explicit value at id, so a subsequent Get returns the
// default again.
func (s *Store[T]) Unset(id int) {
	if id >= 0 && id < len(s.present) {
		s.present[id] = false
		var zero T
		s.values[id] = zero
	}
}

func (s *Store[T]) grow(id int) {
	if id < len(s.values) {
		return
	}
	n := id + 1
	values := make([]T, n)
	present := make([]bool, n)
	copy(values, s.values)
	copy(present, s.present)
	for i := len(s.values); i < n; i++ {
		values[i] = s.def
	}
	s.values, s.present = values, present
}

// Len returns the current backing size (not the count of set entries).
func (s *Store[T]) Len() int { return len(s.values) }

// Ids returns every id with an explicitly set value, ascending.
func (s *Store[T]) Ids() []int {
	out := make([]int, 0, len(s.present))
	for i, ok := range s.present {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
