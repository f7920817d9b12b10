package constraint

import (
	"iter"
	"slices"
)

// Sequence is the ordered list of rules owned by a constraint. Rules can
// only be appended to or removed from the tail, so an override always
// targets the rule declared last.
type Sequence[V any] struct {
	items []Predicate[V]
}

func (s *Sequence[V]) Push(p Predicate[V]) {
	s.items = append(s.items, p)
}

// Pop removes and returns the last rule.
func (s *Sequence[V]) Pop() (Predicate[V], bool) {
	n := len(s.items)
	if n == 0 {
		return Predicate[V]{}, false
	}
	p := s.items[n-1]
	s.items[n-1] = Predicate[V]{}
	s.items = s.items[:n-1]
	return p, true
}

// Last returns the last rule without removing it.
func (s *Sequence[V]) Last() (Predicate[V], bool) {
	if len(s.items) == 0 {
		return Predicate[V]{}, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Sequence[V]) Len() int { return len(s.items) }

// All iterates the rules in declaration order.
func (s *Sequence[V]) All() iter.Seq[Predicate[V]] {
	return slices.Values(s.items)
}

// Predicates returns a copy of the rules in declaration order.
func (s *Sequence[V]) Predicates() []Predicate[V] {
	return slices.Clone(s.items)
}
