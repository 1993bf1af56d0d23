package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pkolodziej/rain-alert/internal/forecast"
	"github.com/pkolodziej/rain-alert/internal/state"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt      time.Time       `json:"checked_at"`
	Location       string          `json:"location,omitempty"`
	RainExpected   bool            `json:"rain_expected"`
	Transition     string          `json:"transition,omitempty"`
	MaxProbability int             `json:"max_probability_pct"`
	MaxAmount      float64         `json:"max_precipitation_mm"`
	Notified       bool            `json:"notified"`
	Message        string          `json:"message,omitempty"`
	Skipped        bool            `json:"skipped,omitempty"`
	Hours          []forecast.Hour `json:"hours,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.Skipped {
		fmt.Fprintln(w, "Quiet hours - skipping this run.")
		return nil
	}

	fmt.Fprintf(w, "Location: %s\n", result.Location)

	status := "no"
	if result.RainExpected {
		status = "yes"
	}
	fmt.Fprintf(w, "Rain within 24h: %s (max probability %d%%, max %.1f mm/h)\n",
		status, result.MaxProbability, result.MaxAmount)

	switch state.Kind(result.Transition) {
	case state.KindUnchanged:
		fmt.Fprintln(w, "No state change - nothing sent.")
	case state.KindInitial:
		fmt.Fprintln(w, "First run - initial status sent.")
	default:
		fmt.Fprintf(w, "State change (%s) - notification sent.\n", result.Transition)
	}

	if verbose {
		for _, hour := range result.Hours {
			fmt.Fprintf(w, "  %s: %.1f mm, %d%%\n",
				hour.Time.Format("2006-01-02T15:04"), hour.Precipitation, hour.Probability)
		}
	}

	return nil
}
