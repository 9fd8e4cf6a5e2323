package stream

import (
	"reflect"
	"testing"
)

func collect[T any](s *Signal[T]) *[]T {
	var got []T
	s.Observe(func(v T) {
		got = append(got, v)
	})
	return &got
}

func TestSignal_EmitObserve(t *testing.T) {
	s := New[int]()
	got := collect(s)

	s.Emit(1)
	s.Emit(2)

	if !reflect.DeepEqual(*got, []int{1, 2}) {
		t.Errorf("Expected [1 2], got %v", *got)
	}
}

func TestSignal_NoReplay(t *testing.T) {
	s := New[int]()
	s.Emit(1)

	got := collect(s)
	s.Emit(2)

	if !reflect.DeepEqual(*got, []int{2}) {
		t.Errorf("Late observer should only see new values, got %v", *got)
	}
}

func TestMap(t *testing.T) {
	s := New[int]()
	doubled := Map(s, func(v int) int { return v * 2 })
	got := collect(doubled)

	s.Emit(1)
	s.Emit(3)

	if !reflect.DeepEqual(*got, []int{2, 6}) {
		t.Errorf("Expected [2 6], got %v", *got)
	}
}

func TestFilter(t *testing.T) {
	s := New[int]()
	evens := Filter(s, func(v int) bool { return v%2 == 0 })
	got := collect(evens)

	for i := 1; i <= 5; i++ {
		s.Emit(i)
	}

	if !reflect.DeepEqual(*got, []int{2, 4}) {
		t.Errorf("Expected [2 4], got %v", *got)
	}
}

func TestMerge(t *testing.T) {
	a := New[string]()
	b := New[string]()
	merged := Merge(a, b)
	got := collect(merged)

	a.Emit("a1")
	b.Emit("b1")
	a.Emit("a2")

	if !reflect.DeepEqual(*got, []string{"a1", "b1", "a2"}) {
		t.Errorf("Expected arrival order, got %v", *got)
	}
}

func TestZip_PairsByIndex(t *testing.T) {
	a := New[string]()
	b := New[int]()
	zipped := Zip(a, b, func(s string, n int) string {
		return s + "-" + string(rune('0'+n))
	})
	got := collect(zipped)

	a.Emit("x")
	a.Emit("y")
	b.Emit(1)

	if !reflect.DeepEqual(*got, []string{"x-1"}) {
		t.Errorf("Expected only the first pair, got %v", *got)
	}

	b.Emit(2)
	b.Emit(3)

	// The third b value stays buffered until a third a value arrives
	if !reflect.DeepEqual(*got, []string{"x-1", "y-2"}) {
		t.Errorf("Expected two pairs, got %v", *got)
	}

	a.Emit("z")
	if !reflect.DeepEqual(*got, []string{"x-1", "y-2", "z-3"}) {
		t.Errorf("Expected three pairs, got %v", *got)
	}
}

func TestTake(t *testing.T) {
	s := New[int]()
	first2 := Take(s, 2)
	got := collect(first2)

	s.Emit(1)
	s.Emit(2)
	s.Emit(3)

	if !reflect.DeepEqual(*got, []int{1, 2}) {
		t.Errorf("Expected [1 2], got %v", *got)
	}
}

func TestSkipRepeats(t *testing.T) {
	s := New[bool]()
	deduped := SkipRepeats(s)
	got := collect(deduped)

	s.Emit(true)
	s.Emit(true)
	s.Emit(false)
	s.Emit(false)
	s.Emit(true)

	if !reflect.DeepEqual(*got, []bool{true, false, true}) {
		t.Errorf("Expected [true false true], got %v", *got)
	}
}

func TestSkipRepeatsFunc(t *testing.T) {
	type pair struct{ a, b int }

	s := New[pair]()
	deduped := SkipRepeatsFunc(s, func(x, y pair) bool { return x.a == y.a })
	got := collect(deduped)

	s.Emit(pair{1, 1})
	s.Emit(pair{1, 2}) // same a, suppressed
	s.Emit(pair{2, 2})

	if len(*got) != 2 || (*got)[0].a != 1 || (*got)[1].a != 2 {
		t.Errorf("Expected values with a=1,2, got %v", *got)
	}
}
