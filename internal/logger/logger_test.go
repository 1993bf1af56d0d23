package logger

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "log-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // nolint:errcheck
	defer tmpFile.Close()           // nolint:errcheck

	log := New(LevelInfo, tmpFile)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "forecast fetched",
			fields:  Fields{"city": "Szczecin"},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "hourly detail",
			want:    false,
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "notification failed",
			err:     errors.New("telegram API error"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := tmpFile.Seek(0, 2)

			log.log(tt.level, tt.message, tt.fields, tt.err)

			after, _ := tmpFile.Seek(0, 2)
			logged := after > before

			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogEntry_JSON(t *testing.T) {
	entry := LogEntry{
		Timestamp: "2026-08-31T07:00:00Z",
		Level:     "INFO",
		Message:   "state changed",
		Fields: Fields{
			"transition": "rain-started",
			"city":       "Szczecin",
		},
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded LogEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.Message != entry.Message {
		t.Errorf("Message = %q, want %q", decoded.Message, entry.Message)
	}
	if decoded.Fields["transition"] != "rain-started" {
		t.Errorf("Fields[transition] = %v, want rain-started", decoded.Fields["transition"])
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("notifications.sent")
	m.IncrCounter("notifications.sent")
	m.RecordTiming("api.forecast", 120*time.Millisecond)
	m.RecordTiming("api.forecast", 80*time.Millisecond)

	snapshot := m.GetSnapshot()

	counters, ok := snapshot["counters"].(map[string]int64)
	if !ok {
		t.Fatal("snapshot counters has wrong type")
	}
	if counters["notifications.sent"] != 2 {
		t.Errorf("counter = %d, want 2", counters["notifications.sent"])
	}

	timings, ok := snapshot["timings"].(map[string]map[string]interface{})
	if !ok {
		t.Fatal("snapshot timings has wrong type")
	}
	forecast := timings["api.forecast"]
	if forecast == nil {
		t.Fatal("expected api.forecast timing stats")
	}
	if forecast["count"] != 2 {
		t.Errorf("timing count = %v, want 2", forecast["count"])
	}
	if forecast["min"] != "80ms" {
		t.Errorf("timing min = %v, want 80ms", forecast["min"])
	}
	if forecast["max"] != "120ms" {
		t.Errorf("timing max = %v, want 120ms", forecast["max"])
	}
}
