package notifier

import (
	"fmt"

	"github.com/pkolodziej/rain-alert/internal/forecast"
	"github.com/pkolodziej/rain-alert/internal/state"
)

// Notifier defines the interface for delivering rain state notifications
type Notifier interface {
	// Notify delivers a single notification message
	Notify(message string) error
}

// FormatMessage renders the notification text for a state transition.
func FormatMessage(trans *state.Transition, location string, report *forecast.Report) string {
	var header string
	switch trans.Kind {
	case state.KindRainStarted:
		header = "\U0001F327 Rain incoming"
	case state.KindRainStopped:
		header = "☀️ Rain ending"
	default:
		header = "\U0001F4CD Rain watch started"
	}

	var status string
	if trans.RainExpected {
		status = "Rain expected within the next 24 hours."
	} else {
		status = "No rain expected for the next 24 hours."
	}

	message := fmt.Sprintf("%s\n\n[%s] %s", header, location, status)

	if trans.RainExpected && report != nil {
		message += fmt.Sprintf("\nMax probability %d%%, up to %.1f mm/h.",
			report.MaxProbability, report.MaxAmount)
	}

	return message
}
