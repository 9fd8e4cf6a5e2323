package feed

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fundfeed/discovery-card/internal/model"
)

// Feed is one page of discovery projects
type Feed struct {
	Title    string
	Projects []model.Project
}

// Wire representation. Dates travel as epoch seconds UTC.
type feedJSON struct {
	Title    string        `json:"title"`
	Projects []projectJSON `json:"projects"`
}

type projectJSON struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Blurb           string       `json:"blurb"`
	State           string       `json:"state"`
	PhotoURL        string       `json:"photo_url"`
	Category        categoryJSON `json:"category"`
	BackersCount    int          `json:"backers_count"`
	PercentFunded   int          `json:"percent_funded"`
	FundingProgress float64      `json:"funding_progress"`
	Deadline        int64        `json:"deadline"`
	StateChangedAt  int64        `json:"state_changed_at"`
	PotdAt          *int64       `json:"potd_at,omitempty"`
	FeaturedAt      *int64       `json:"featured_at,omitempty"`
	IsBacking       *bool        `json:"is_backing,omitempty"`
	IsStarred       *bool        `json:"is_starred,omitempty"`
	Friends         []friendJSON `json:"friends,omitempty"`
}

type categoryJSON struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Parent *categoryJSON `json:"parent,omitempty"`
}

type friendJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// Parse decodes a feed payload
func Parse(data []byte) (*Feed, error) {
	var decoded feedJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	feed := &Feed{Title: decoded.Title}
	for _, pj := range decoded.Projects {
		feed.Projects = append(feed.Projects, pj.toModel())
	}
	return feed, nil
}

func (pj projectJSON) toModel() model.Project {
	p := model.Project{
		ID:              pj.ID,
		Name:            pj.Name,
		Blurb:           pj.Blurb,
		State:           model.ProjectState(pj.State),
		PhotoURL:        pj.PhotoURL,
		Category:        pj.Category.toModel(),
		BackersCount:    pj.BackersCount,
		PercentFunded:   pj.PercentFunded,
		FundingProgress: pj.FundingProgress,
		Deadline:        epochTime(pj.Deadline),
		StateChangedAt:  epochTime(pj.StateChangedAt),
		IsBacking:       pj.IsBacking,
		IsStarred:       pj.IsStarred,
	}
	if pj.PotdAt != nil {
		t := epochTime(*pj.PotdAt)
		p.PotdAt = &t
	}
	if pj.FeaturedAt != nil {
		t := epochTime(*pj.FeaturedAt)
		p.FeaturedAt = &t
	}
	for _, fj := range pj.Friends {
		p.Friends = append(p.Friends, model.User{ID: fj.ID, Name: fj.Name, AvatarURL: fj.AvatarURL})
	}
	return p
}

func (cj categoryJSON) toModel() model.Category {
	c := model.Category{ID: cj.ID, Name: cj.Name}
	if cj.Parent != nil {
		parent := cj.Parent.toModel()
		c.Parent = &parent
	}
	return c
}

func epochTime(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}
