// Package dedupe provides first-occurrence deduplication for extracted records.
package dedupe

// Set records keys already seen. It is not safe for concurrent use; each
// extraction pass owns its own Set.
type Set struct {
	seen     map[string]struct{}
	capacity int
}

// NewSet creates an empty Set.
func NewSet(opts ...Option) *Set {
	s := &Set{}
	for _, opt := range opts {
		opt(s)
	}
	s.seen = make(map[string]struct{}, s.capacity)
	return s
}

// SeenAndRecord reports whether key was seen before and records it if not.
func (s *Set) SeenAndRecord(key string) bool {
	if _, ok := s.seen[key]; ok {
		return true
	}
	s.seen[key] = struct{}{}
	return false
}

// Size returns the number of distinct keys recorded.
func (s *Set) Size() int {
	return len(s.seen)
}

// FirstByKey keeps the first item for each key, preserving input order.
// Applying it to its own output returns an equal slice.
func FirstByKey[T any](items []T, key func(T) string) []T {
	set := NewSet(WithCapacity(len(items)))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if set.SeenAndRecord(key(it)) {
			continue
		}
		out = append(out, it)
	}
	return out
}
