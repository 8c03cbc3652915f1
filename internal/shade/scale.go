package shade

import "fmt"

// Scale maps every shade key to an optional value. It always carries
// exactly the 15 ladder keys; a key is "absent" until Set.
type Scale[T any] struct {
	values [15]T
	set    [15]bool
}

// NewScale returns a scale with every shade absent.
func NewScale[T any]() Scale[T] {
	return Scale[T]{}
}

// Set stores v for k. Unknown keys are rejected.
func (s *Scale[T]) Set(k Key, v T) error {
	i := k.Index()
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownShade, string(k))
	}
	s.values[i] = v
	s.set[i] = true
	return nil
}

// Get returns the value for k and whether it is present.
func (s Scale[T]) Get(k Key) (T, bool) {
	var zero T
	i := k.Index()
	if i < 0 || !s.set[i] {
		return zero, false
	}
	return s.values[i], true
}

// Has reports whether k has a value.
func (s Scale[T]) Has(k Key) bool {
	_, ok := s.Get(k)
	return ok
}

// Complete reports whether every shade has a value.
func (s Scale[T]) Complete() bool {
	for _, ok := range s.set {
		if !ok {
			return false
		}
	}
	return true
}

// Each calls fn for every present shade in ladder order.
func (s Scale[T]) Each(fn func(k Key, v T)) {
	for i, k := range Keys {
		if s.set[i] {
			fn(k, s.values[i])
		}
	}
}

// Map converts every present value of s with fn.
func Map[T, U any](s Scale[T], fn func(T) U) Scale[U] {
	var out Scale[U]
	for i := range s.set {
		if s.set[i] {
			out.values[i] = fn(s.values[i])
			out.set[i] = true
		}
	}
	return out
}

// Prefixed flattens s into "<prefix><key>" entries, skipping absent shades.
func Prefixed(prefix string, s Scale[string]) map[string]string {
	out := make(map[string]string, Count)
	s.Each(func(k Key, v string) {
		out[prefix+string(k)] = v
	})
	return out
}
