package spatial

type pairKey[B any] struct {
	a *B
	b *B
}

// PairSet is a set of unordered body pairs: (a, b) and (b, a) are the same
// element and are stored at most once. Go pointers compare for equality but
// not order, so instead of canonicalizing the key the set probes both
// orientations on insert and lookup.
type PairSet[B any] struct {
	pairs map[pairKey[B]]struct{}
}

// NewPairSet returns an empty pair set.
func NewPairSet[B any]() *PairSet[B] {
	return &PairSet[B]{pairs: make(map[pairKey[B]]struct{})}
}

// Add inserts the unordered pair (a, b). Re-adding the pair in either
// orientation is a no-op.
func (s *PairSet[B]) Add(a, b *B) {
	if _, ok := s.pairs[pairKey[B]{a: b, b: a}]; ok {
		return
	}
	s.pairs[pairKey[B]{a: a, b: b}] = struct{}{}
}

// Contains reports whether the unordered pair (a, b) is present.
func (s *PairSet[B]) Contains(a, b *B) bool {
	if _, ok := s.pairs[pairKey[B]{a: a, b: b}]; ok {
		return true
	}
	_, ok := s.pairs[pairKey[B]{a: b, b: a}]
	return ok
}

// Len returns the number of unique pairs.
func (s *PairSet[B]) Len() int { return len(s.pairs) }

// Pairs returns the contents as a slice of [2]*B, in unspecified order.
func (s *PairSet[B]) Pairs() [][2]*B {
	out := make([][2]*B, 0, len(s.pairs))
	for k := range s.pairs {
		out = append(out, [2]*B{k.a, k.b})
	}
	return out
}
