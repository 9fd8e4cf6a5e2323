package api

import (
	"context"
	"time"

	"github.com/fundfeed/discovery-card/internal/model"
)

// StarToggler performs the remote star toggle call. The returned project
// carries the server-confirmed starred flag.
type StarToggler interface {
	ToggleStar(ctx context.Context, project model.Project) (model.Project, error)
}

// Scheduler defers work, optionally after a delay. The delay is a pacing
// hook for animations and tests, not a correctness mechanism.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// GoScheduler runs fn on its own goroutine, after the delay if one is set
type GoScheduler struct{}

// Schedule implements Scheduler
func (GoScheduler) Schedule(delay time.Duration, fn func()) {
	if delay <= 0 {
		go fn()
		return
	}
	time.AfterFunc(delay, fn)
}

// ImmediateScheduler runs fn synchronously on the calling goroutine
type ImmediateScheduler struct{}

// Schedule implements Scheduler
func (ImmediateScheduler) Schedule(_ time.Duration, fn func()) {
	fn()
}
