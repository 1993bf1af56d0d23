package state

import (
	"testing"
)

func boolPtr(v bool) *bool { return &v }

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		previous     *State
		rainExpected bool
		wantKind     Kind
		wantNotify   bool
	}{
		{
			name:         "no previous state, rain",
			previous:     nil,
			rainExpected: true,
			wantKind:     KindInitial,
			wantNotify:   true,
		},
		{
			name:         "no previous state, dry",
			previous:     nil,
			rainExpected: false,
			wantKind:     KindInitial,
			wantNotify:   true,
		},
		{
			name:         "state file without recorded condition",
			previous:     &State{},
			rainExpected: true,
			wantKind:     KindInitial,
			wantNotify:   true,
		},
		{
			name:         "dry to rain",
			previous:     &State{RainExpected: boolPtr(false)},
			rainExpected: true,
			wantKind:     KindRainStarted,
			wantNotify:   true,
		},
		{
			name:         "rain to dry",
			previous:     &State{RainExpected: boolPtr(true)},
			rainExpected: false,
			wantKind:     KindRainStopped,
			wantNotify:   true,
		},
		{
			name:         "rain stays rain",
			previous:     &State{RainExpected: boolPtr(true)},
			rainExpected: true,
			wantKind:     KindUnchanged,
			wantNotify:   false,
		},
		{
			name:         "dry stays dry",
			previous:     &State{RainExpected: boolPtr(false)},
			rainExpected: false,
			wantKind:     KindUnchanged,
			wantNotify:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trans := Evaluate(tt.previous, tt.rainExpected)
			if trans.Kind != tt.wantKind {
				t.Errorf("Evaluate() kind = %s, want %s", trans.Kind, tt.wantKind)
			}
			if trans.RainExpected != tt.rainExpected {
				t.Errorf("Evaluate() rainExpected = %v, want %v", trans.RainExpected, tt.rainExpected)
			}
			if trans.ShouldNotify() != tt.wantNotify {
				t.Errorf("ShouldNotify() = %v, want %v", trans.ShouldNotify(), tt.wantNotify)
			}
		})
	}
}

func TestEvaluate_Idempotence(t *testing.T) {
	// First run notifies and persists; a second run against the persisted
	// state with the same forecast must be silent.
	first := Evaluate(nil, true)
	if !first.ShouldNotify() {
		t.Fatal("first run should notify")
	}

	persisted := first.Next("rain expected")
	second := Evaluate(persisted, true)
	if second.Kind != KindUnchanged {
		t.Errorf("second run kind = %s, want %s", second.Kind, KindUnchanged)
	}
	if second.ShouldNotify() {
		t.Error("second run with identical forecast should not notify")
	}
}

func TestTransition_Next(t *testing.T) {
	trans := Evaluate(&State{RainExpected: boolPtr(false)}, true)

	next := trans.Next("rain incoming")
	if next.RainExpected == nil || !*next.RainExpected {
		t.Error("Next() should persist rain_expected=true")
	}
	if next.LastStatus != "rain incoming" {
		t.Errorf("Next() lastStatus = %q, want %q", next.LastStatus, "rain incoming")
	}
	if next.UpdatedAt == "" {
		t.Error("Next() should set UpdatedAt")
	}
}
