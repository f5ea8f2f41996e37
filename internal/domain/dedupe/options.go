// Package dedupe provides first-occurrence deduplication for extracted records.
package dedupe

// Option applies a configuration option to a Set.
type Option func(*Set)

// WithCapacity pre-sizes the set for about n keys.
func WithCapacity(n int) Option {
	return func(s *Set) {
		if n > 0 {
			s.capacity = n
		}
	}
}
