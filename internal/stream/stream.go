package stream

// Signal is a push-based event stream with multiple observers. Values are
// delivered synchronously, in subscription order, on the goroutine that calls
// Emit. Signals are meant to be composed and observed from a single logical
// context (the UI event loop); they carry no locks.
type Signal[T any] struct {
	observers []func(T)
}

// New creates an empty signal
func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Observe registers fn to be called for every subsequent emission. Past
// values are not replayed.
func (s *Signal[T]) Observe(fn func(T)) {
	s.observers = append(s.observers, fn)
}

// Emit delivers v to all current observers
func (s *Signal[T]) Emit(v T) {
	for _, fn := range s.observers {
		fn(v)
	}
}

// Map derives a signal whose values are fn applied to each source value
func Map[T, U any](src *Signal[T], fn func(T) U) *Signal[U] {
	out := New[U]()
	src.Observe(func(v T) {
		out.Emit(fn(v))
	})
	return out
}

// Filter derives a signal forwarding only values for which keep returns true
func Filter[T any](src *Signal[T], keep func(T) bool) *Signal[T] {
	out := New[T]()
	src.Observe(func(v T) {
		if keep(v) {
			out.Emit(v)
		}
	})
	return out
}

// Merge derives a signal interleaving the emissions of all sources in
// arrival order
func Merge[T any](srcs ...*Signal[T]) *Signal[T] {
	out := New[T]()
	for _, src := range srcs {
		src.Observe(func(v T) {
			out.Emit(v)
		})
	}
	return out
}

// Zip pairs the nth value of a with the nth value of b, emitting
// combine(an, bn) once both have arrived. Unpaired values are buffered.
func Zip[T, U, V any](a *Signal[T], b *Signal[U], combine func(T, U) V) *Signal[V] {
	out := New[V]()
	var pendingA []T
	var pendingB []U
	flush := func() {
		for len(pendingA) > 0 && len(pendingB) > 0 {
			va, vb := pendingA[0], pendingB[0]
			pendingA = pendingA[1:]
			pendingB = pendingB[1:]
			out.Emit(combine(va, vb))
		}
	}
	a.Observe(func(v T) {
		pendingA = append(pendingA, v)
		flush()
	})
	b.Observe(func(v U) {
		pendingB = append(pendingB, v)
		flush()
	})
	return out
}

// Take derives a signal forwarding only the first n source values
func Take[T any](src *Signal[T], n int) *Signal[T] {
	out := New[T]()
	seen := 0
	src.Observe(func(v T) {
		if seen < n {
			seen++
			out.Emit(v)
		}
	})
	return out
}

// SkipRepeats derives a signal suppressing consecutive equal values
func SkipRepeats[T comparable](src *Signal[T]) *Signal[T] {
	return SkipRepeatsFunc(src, func(a, b T) bool { return a == b })
}

// SkipRepeatsFunc derives a signal suppressing consecutive values that eq
// reports equal. The first value always passes.
func SkipRepeatsFunc[T any](src *Signal[T], eq func(T, T) bool) *Signal[T] {
	out := New[T]()
	var last T
	have := false
	src.Observe(func(v T) {
		if have && eq(last, v) {
			return
		}
		last = v
		have = true
		out.Emit(v)
	})
	return out
}
