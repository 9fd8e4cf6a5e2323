package cache

import "testing"

func TestStarCache_GetMissing(t *testing.T) {
	c := NewStarCache()

	_, ok := c.Get("p1")
	if ok {
		t.Error("Expected no cached value for unknown project")
	}
}

func TestStarCache_SetGet(t *testing.T) {
	c := NewStarCache()

	c.Set("p1", true)
	v, ok := c.Get("p1")
	if !ok || !v {
		t.Errorf("Expected (true, true), got (%v, %v)", v, ok)
	}

	c.Set("p1", false)
	v, ok = c.Get("p1")
	if !ok || v {
		t.Errorf("Expected (false, true), got (%v, %v)", v, ok)
	}
}

func TestStarCache_KeyedByProject(t *testing.T) {
	c := NewStarCache()

	c.Set("p1", true)
	if _, ok := c.Get("p2"); ok {
		t.Error("Cache entries should be keyed by project id")
	}
}
