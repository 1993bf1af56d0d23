package state

import (
	"time"
)

// State is the persisted record of the last notified rain condition.
// RainExpected is nil until the first completed run.
type State struct {
	RainExpected *bool  `json:"rain_expected"`
	LastStatus   string `json:"last_status,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"` // RFC3339 timestamp
}

// Kind classifies a transition between the persisted and current condition.
type Kind string

const (
	// KindInitial marks the first run, before any state was persisted.
	KindInitial Kind = "initial"
	// KindRainStarted marks a flip from dry to rain expected within 24h.
	KindRainStarted Kind = "rain-started"
	// KindRainStopped marks a flip from rain expected to dry.
	KindRainStopped Kind = "rain-stopped"
	// KindUnchanged means the condition matches the persisted one.
	KindUnchanged Kind = "unchanged"
)

// Transition is the outcome of comparing the persisted state against the
// freshly evaluated rain condition.
type Transition struct {
	Kind         Kind  `json:"kind"`
	RainExpected bool  `json:"rain_expected"`
	Previous     *bool `json:"previous,omitempty"`
}

// Evaluate compares the previous persisted state with the current rain
// condition. A nil previous state, or one that never recorded a condition,
// yields an initial transition.
func Evaluate(previous *State, rainExpected bool) *Transition {
	t := &Transition{RainExpected: rainExpected}

	if previous == nil || previous.RainExpected == nil {
		t.Kind = KindInitial
		return t
	}

	t.Previous = previous.RainExpected

	switch {
	case *previous.RainExpected == rainExpected:
		t.Kind = KindUnchanged
	case rainExpected:
		t.Kind = KindRainStarted
	default:
		t.Kind = KindRainStopped
	}

	return t
}

// ShouldNotify reports whether this transition warrants a notification.
// Only an unchanged condition is silent.
func (t *Transition) ShouldNotify() bool {
	return t.Kind != KindUnchanged
}

// Next builds the state to persist after this transition was notified.
func (t *Transition) Next(status string) *State {
	rain := t.RainExpected
	return &State{
		RainExpected: &rain,
		LastStatus:   status,
		UpdatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
