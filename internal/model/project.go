package model

import (
	"time"
)

// SaveAlertWindow is the window before a deadline inside which the
// save-reminder is suppressed.
const SaveAlertWindow = 48 * time.Hour

// User represents an account known to the app
type User struct {
	ID        string
	Name      string
	AvatarURL string
}

// Category classifies a project; a non-nil Parent marks a subcategory
type Category struct {
	ID     string
	Name   string
	Parent *Category
}

// ParentName returns the parent category name, or "" for root categories
func (c Category) ParentName() string {
	if c.Parent == nil {
		return ""
	}
	return c.Parent.Name
}

// Project represents a single discovery project as served by the backend.
// Personalization fields (IsBacking, IsStarred, Friends) are nil when the
// request was not personalized.
type Project struct {
	ID    string
	Name  string
	Blurb string
	State ProjectState

	PhotoURL string
	Category Category

	BackersCount    int
	PercentFunded   int
	FundingProgress float64

	Deadline       time.Time
	StateChangedAt time.Time
	PotdAt         *time.Time
	FeaturedAt     *time.Time

	IsBacking *bool
	IsStarred *bool
	Friends   []User
}

// Starred returns the starred flag, treating absent as false
func (p Project) Starred() bool {
	return p.IsStarred != nil && *p.IsStarred
}

// Backing returns the backing flag, treating absent as false
func (p Project) Backing() bool {
	return p.IsBacking != nil && *p.IsBacking
}

// WithStarred returns a copy of the project with the starred flag set
func (p Project) WithStarred(starred bool) Project {
	p.IsStarred = &starred
	return p
}

// ClampedFundingProgress returns the funding progress clamped to [0.0, 1.0]
func (p Project) ClampedFundingProgress() float64 {
	if p.FundingProgress < 0 {
		return 0
	}
	if p.FundingProgress > 1 {
		return 1
	}
	return p.FundingProgress
}

// IsPotdToday returns true if the project is the project of the day for the
// given date
func (p Project) IsPotdToday(today time.Time) bool {
	return p.PotdAt != nil && sameDay(*p.PotdAt, today)
}

// IsFeaturedToday returns true if the project is featured for the given date
func (p Project) IsFeaturedToday(today time.Time) bool {
	return p.FeaturedAt != nil && sameDay(*p.FeaturedAt, today)
}

// EndsIn48Hours returns true if the deadline falls within the save-alert
// window after today
func (p Project) EndsIn48Hours(today time.Time) bool {
	remaining := p.Deadline.Sub(today)
	return remaining > 0 && remaining <= SaveAlertWindow
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
