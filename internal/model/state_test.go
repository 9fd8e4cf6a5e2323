package model

import "testing"

func TestProjectState_IsLive(t *testing.T) {
	if !StateLive.IsLive() {
		t.Error("StateLive should be live")
	}

	for _, state := range []ProjectState{StateSuccessful, StateFailed, StateCanceled, StateSuspended, StateSubmitted, StateStarted, StatePurged} {
		if state.IsLive() {
			t.Errorf("State %s should not be live", state)
		}
	}
}

func TestProjectState_IsFinished(t *testing.T) {
	finished := []ProjectState{StateSuccessful, StateFailed, StateCanceled, StateSuspended}
	for _, state := range finished {
		if !state.IsFinished() {
			t.Errorf("State %s should be finished", state)
		}
	}

	notFinished := []ProjectState{StateLive, StateSubmitted, StateStarted, StatePurged}
	for _, state := range notFinished {
		if state.IsFinished() {
			t.Errorf("State %s should not be finished", state)
		}
	}
}

func TestProjectState_String(t *testing.T) {
	if StateCanceled.String() != "canceled" {
		t.Errorf("Expected 'canceled', got '%s'", StateCanceled.String())
	}
}
