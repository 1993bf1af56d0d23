package forecast

import (
	"time"
)

// WindowDuration is how far ahead the rain decision looks.
const WindowDuration = 24 * time.Hour

// Hourly holds the aligned hourly series returned by the forecast API.
// The precipitation and probability slices may be shorter than the time
// series; missing entries count as zero.
type Hourly struct {
	Times         []time.Time
	Precipitation []float64 // mm per hour
	Probability   []int     // percent
}

// Thresholds decide what counts as rain. An hour trips when its
// probability reaches Probability OR its amount reaches Amount.
type Thresholds struct {
	Probability int     // percent
	Amount      float64 // mm per hour
}

// DefaultThresholds matches the values the tool ships with.
var DefaultThresholds = Thresholds{Probability: 50, Amount: 0.3}

// Hour is a single evaluated hour inside the rain window.
type Hour struct {
	Time          time.Time `json:"time"`
	Precipitation float64   `json:"precipitation_mm"`
	Probability   int       `json:"probability_pct"`
}

// Report summarizes the rain window evaluation.
type Report struct {
	RainExpected   bool    `json:"rain_expected"`
	MaxProbability int     `json:"max_probability_pct"`
	MaxAmount      float64 `json:"max_precipitation_mm"`
	Hours          []Hour  `json:"hours,omitempty"`
}

func (h *Hourly) amountAt(i int) float64 {
	if i < len(h.Precipitation) {
		return h.Precipitation[i]
	}
	return 0
}

func (h *Hourly) probabilityAt(i int) int {
	if i < len(h.Probability) {
		return h.Probability[i]
	}
	return 0
}

// Evaluate inspects the hours within [now, now+24h] against the thresholds.
// Both window bounds are inclusive, so a run at 07:00 still sees the 07:00
// slot of the following day.
func (h *Hourly) Evaluate(now time.Time, th Thresholds) *Report {
	report := &Report{}
	end := now.Add(WindowDuration)

	for i, ts := range h.Times {
		if ts.Before(now) || ts.After(end) {
			continue
		}

		hour := Hour{
			Time:          ts,
			Precipitation: h.amountAt(i),
			Probability:   h.probabilityAt(i),
		}
		report.Hours = append(report.Hours, hour)

		if hour.Probability > report.MaxProbability {
			report.MaxProbability = hour.Probability
		}
		if hour.Precipitation > report.MaxAmount {
			report.MaxAmount = hour.Precipitation
		}

		if hour.Probability >= th.Probability || hour.Precipitation >= th.Amount {
			report.RainExpected = true
		}
	}

	return report
}
