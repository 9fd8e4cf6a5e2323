package model

// ProjectState represents the funding state of a project
type ProjectState string

const (
	// StateLive means the project is currently accepting pledges
	StateLive ProjectState = "live"

	// StateSuccessful means the project reached its goal before the deadline
	StateSuccessful ProjectState = "successful"

	// StateFailed means the project did not reach its goal
	StateFailed ProjectState = "failed"

	// StateCanceled means the creator canceled the project
	StateCanceled ProjectState = "canceled"

	// StateSuspended means the project was suspended
	StateSuspended ProjectState = "suspended"

	// StateSubmitted means the project was submitted but is not yet live
	StateSubmitted ProjectState = "submitted"

	// StateStarted means the project draft was started
	StateStarted ProjectState = "started"

	// StatePurged means the project was removed
	StatePurged ProjectState = "purged"
)

// String returns the string representation of ProjectState
func (ps ProjectState) String() string {
	return string(ps)
}

// IsLive returns true if the project is accepting pledges
func (ps ProjectState) IsLive() bool {
	return ps == StateLive
}

// IsFinished returns true if the project reached a terminal funding outcome
func (ps ProjectState) IsFinished() bool {
	return ps == StateSuccessful || ps == StateFailed || ps == StateCanceled || ps == StateSuspended
}
