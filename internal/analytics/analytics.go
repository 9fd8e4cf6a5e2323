package analytics

import (
	"log"

	"github.com/google/uuid"

	"github.com/fundfeed/discovery-card/internal/model"
)

// Sink receives product analytics events, fire-and-forget
type Sink interface {
	TrackProjectStar(project model.Project, context string)
}

// LogSink writes events to the application log, stamping each with an
// event id. Stands in for the real tracking backend in the demo host.
type LogSink struct{}

// TrackProjectStar implements Sink
func (LogSink) TrackProjectStar(project model.Project, context string) {
	log.Printf("analytics: event=%s name=project_star project=%s context=%s",
		uuid.NewString(), project.ID, context)
}

// NopSink discards all events
type NopSink struct{}

// TrackProjectStar implements Sink
func (NopSink) TrackProjectStar(model.Project, string) {}
