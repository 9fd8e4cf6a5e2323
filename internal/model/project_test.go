package model

import (
	"testing"
	"time"
)

func boolPtr(v bool) *bool { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func TestProject_Starred(t *testing.T) {
	tests := []struct {
		starred  *bool
		expected bool
	}{
		{nil, false},
		{boolPtr(false), false},
		{boolPtr(true), true},
	}

	for _, test := range tests {
		p := Project{IsStarred: test.starred}
		if p.Starred() != test.expected {
			t.Errorf("Starred() with %v = %v, expected %v", test.starred, p.Starred(), test.expected)
		}
	}
}

func TestProject_WithStarred(t *testing.T) {
	p := Project{ID: "p1"}

	starred := p.WithStarred(true)
	if !starred.Starred() {
		t.Error("WithStarred(true) should produce a starred project")
	}

	// Original must be untouched
	if p.IsStarred != nil {
		t.Error("WithStarred should not mutate the receiver")
	}

	unstarred := starred.WithStarred(false)
	if unstarred.Starred() {
		t.Error("WithStarred(false) should produce an unstarred project")
	}
}

func TestProject_ClampedFundingProgress(t *testing.T) {
	tests := []struct {
		progress float64
		expected float64
	}{
		{-0.5, 0.0},
		{0.0, 0.0},
		{0.37, 0.37},
		{1.0, 1.0},
		{2.4, 1.0},
	}

	for _, test := range tests {
		p := Project{FundingProgress: test.progress}
		if p.ClampedFundingProgress() != test.expected {
			t.Errorf("ClampedFundingProgress() with %f = %f, expected %f",
				test.progress, p.ClampedFundingProgress(), test.expected)
		}
	}
}

func TestProject_IsPotdToday(t *testing.T) {
	today := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	p := Project{}
	if p.IsPotdToday(today) {
		t.Error("Project without PotdAt should not be POTD")
	}

	p.PotdAt = timePtr(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	if !p.IsPotdToday(today) {
		t.Error("Project with PotdAt on the same day should be POTD")
	}

	p.PotdAt = timePtr(time.Date(2026, 3, 13, 23, 59, 0, 0, time.UTC))
	if p.IsPotdToday(today) {
		t.Error("Project with PotdAt on another day should not be POTD")
	}
}

func TestProject_IsFeaturedToday(t *testing.T) {
	today := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	p := Project{}
	if p.IsFeaturedToday(today) {
		t.Error("Project without FeaturedAt should not be featured")
	}

	p.FeaturedAt = timePtr(time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC))
	if !p.IsFeaturedToday(today) {
		t.Error("Project with FeaturedAt on the same day should be featured")
	}
}

func TestProject_EndsIn48Hours(t *testing.T) {
	today := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		deadline time.Time
		expected bool
	}{
		{today.Add(time.Hour), true},
		{today.Add(47 * time.Hour), true},
		{today.Add(48 * time.Hour), true},
		{today.Add(49 * time.Hour), false},
		{today.Add(-time.Hour), false}, // already over
	}

	for _, test := range tests {
		p := Project{Deadline: test.deadline}
		if p.EndsIn48Hours(today) != test.expected {
			t.Errorf("EndsIn48Hours() with deadline %v = %v, expected %v",
				test.deadline, p.EndsIn48Hours(today), test.expected)
		}
	}
}

func TestCategory_ParentName(t *testing.T) {
	root := Category{ID: "c1", Name: "Games"}
	if root.ParentName() != "" {
		t.Errorf("Root category parent name should be empty, got '%s'", root.ParentName())
	}

	child := Category{ID: "c2", Name: "Tabletop Games", Parent: &root}
	if child.ParentName() != "Games" {
		t.Errorf("Expected parent name 'Games', got '%s'", child.ParentName())
	}
}
