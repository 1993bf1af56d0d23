package forecast

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	// Load test fixture
	fixture, err := os.ReadFile("../../testdata/fixtures/forecast.json")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("hourly"); got != "precipitation,precipitation_probability" {
			t.Errorf("hourly = %q, want precipitation series", got)
		}
		if got := q.Get("forecast_days"); got != "2" {
			t.Errorf("forecast_days = %q, want 2", got)
		}
		if got := q.Get("timezone"); got != "Europe/Warsaw" {
			t.Errorf("timezone = %q, want Europe/Warsaw", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(fixture)
	}))
	defer server.Close()

	c := New(false)
	c.url = server.URL

	hourly, err := c.Fetch(53.42, 14.56, "Europe/Warsaw")
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	if len(hourly.Times) != 8 {
		t.Fatalf("len(Times) = %d, want 8", len(hourly.Times))
	}

	warsaw, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		t.Fatalf("loading Europe/Warsaw: %v", err)
	}
	want := time.Date(2026, 8, 31, 0, 0, 0, 0, warsaw)
	if !hourly.Times[0].Equal(want) {
		t.Errorf("Times[0] = %v, want %v", hourly.Times[0], want)
	}

	// Null precipitation entry decodes as zero
	if hourly.Precipitation[3] != 0 {
		t.Errorf("Precipitation[3] = %v, want 0 for null entry", hourly.Precipitation[3])
	}
	if hourly.Precipitation[5] != 1.2 {
		t.Errorf("Precipitation[5] = %v, want 1.2", hourly.Precipitation[5])
	}

	// Null probability entry decodes as zero
	if hourly.Probability[6] != 0 {
		t.Errorf("Probability[6] = %d, want 0 for null entry", hourly.Probability[6])
	}
	if hourly.Probability[5] != 85 {
		t.Errorf("Probability[5] = %d, want 85", hourly.Probability[5])
	}
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := New(false)
	c.url = server.URL

	if _, err := c.Fetch(53.42, 14.56, "auto"); err == nil {
		t.Error("Fetch() expected error for server error, got nil")
	}
}

func TestFetch_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer server.Close()

	c := New(false)
	c.url = server.URL

	if _, err := c.Fetch(53.42, 14.56, "auto"); err == nil {
		t.Error("Fetch() expected error for malformed response, got nil")
	}
}

func TestFetch_EmptyHourlyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hourly": {"time": [], "precipitation": [], "precipitation_probability": []}}`))
	}))
	defer server.Close()

	c := New(false)
	c.url = server.URL

	if _, err := c.Fetch(53.42, 14.56, "auto"); err == nil {
		t.Error("Fetch() expected error for empty hourly data, got nil")
	}
}

func TestParseHourly_BadTimestamp(t *testing.T) {
	_, err := parseHourly([]string{"yesterday-ish"}, nil, nil, "auto")
	if err == nil {
		t.Error("parseHourly() expected error for unparseable timestamp, got nil")
	}
}

func TestParseHourly_UnknownTimezoneFallsBack(t *testing.T) {
	hourly, err := parseHourly([]string{"2026-08-31T07:00"}, nil, nil, "auto")
	if err != nil {
		t.Fatalf("parseHourly() unexpected error: %v", err)
	}
	if len(hourly.Times) != 1 {
		t.Fatalf("len(Times) = %d, want 1", len(hourly.Times))
	}
	if hourly.Times[0].Location() != time.Local {
		t.Errorf("unknown timezone should fall back to local, got %v", hourly.Times[0].Location())
	}
}
