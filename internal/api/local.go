package api

import (
	"context"
	"sync"

	"github.com/fundfeed/discovery-card/internal/model"
)

// LocalToggler resolves star toggles in process. Used by the demo host when
// no backend URL is configured.
type LocalToggler struct {
	mu      sync.Mutex
	starred map[string]bool
}

// NewLocalToggler creates an empty in-process toggler
func NewLocalToggler() *LocalToggler {
	return &LocalToggler{starred: make(map[string]bool)}
}

// ToggleStar implements StarToggler by accepting the requested state
func (t *LocalToggler) ToggleStar(ctx context.Context, project model.Project) (model.Project, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.starred[project.ID] = project.Starred()
	return project.WithStarred(project.Starred()), nil
}
