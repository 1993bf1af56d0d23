package forecast

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	ForecastURL = "https://api.open-meteo.com/v1/forecast"
	UserAgent   = "rain-alert/1.0 (github.com/pkolodziej/rain-alert)"
	Timeout     = 20 * time.Second

	// Open-Meteo returns hourly timestamps as naive local time.
	timeLayout = "2006-01-02T15:04"
)

// Client fetches hourly forecasts from the Open-Meteo API
type Client struct {
	client *http.Client
	url    string
}

// New creates a new forecast client. With insecure set, TLS certificate
// verification is skipped (emergency use only).
func New(insecure bool) *Client {
	c := &http.Client{Timeout: Timeout}
	if insecure {
		c.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		client: c,
		url:    ForecastURL,
	}
}

// Fetch retrieves the hourly precipitation series for the given coordinates.
// Two forecast days are requested so that a 24h window starting late in the
// day is fully covered.
func (c *Client) Fetch(latitude, longitude float64, timezone string) (*Hourly, error) {
	if timezone == "" {
		timezone = "auto"
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("hourly", "precipitation,precipitation_probability")
	params.Set("timezone", timezone)
	params.Set("forecast_days", "2")

	req, err := http.NewRequest("GET", c.url+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		Hourly struct {
			Time          []string   `json:"time"`
			Precipitation []*float64 `json:"precipitation"`
			Probability   []*float64 `json:"precipitation_probability"`
		} `json:"hourly"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing forecast response: %w", err)
	}

	if len(payload.Hourly.Time) == 0 {
		return nil, fmt.Errorf("forecast response contains no hourly data")
	}

	return parseHourly(payload.Hourly.Time, payload.Hourly.Precipitation, payload.Hourly.Probability, timezone)
}

// parseHourly converts the raw API series into aligned typed slices.
// Null entries in the value series count as zero.
func parseHourly(times []string, precipitation, probability []*float64, timezone string) (*Hourly, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		// "auto" and unknown zone names fall back to local time, which is
		// what the naive timestamps mean for a forecast at the caller's
		// own location.
		loc = time.Local
	}

	hourly := &Hourly{
		Times:         make([]time.Time, 0, len(times)),
		Precipitation: make([]float64, 0, len(times)),
		Probability:   make([]int, 0, len(times)),
	}

	for i, raw := range times {
		ts, err := time.ParseInLocation(timeLayout, raw, loc)
		if err != nil {
			return nil, fmt.Errorf("parsing hourly timestamp %q: %w", raw, err)
		}
		hourly.Times = append(hourly.Times, ts)

		var mm float64
		if i < len(precipitation) && precipitation[i] != nil {
			mm = *precipitation[i]
		}
		hourly.Precipitation = append(hourly.Precipitation, mm)

		var pct float64
		if i < len(probability) && probability[i] != nil {
			pct = *probability[i]
		}
		hourly.Probability = append(hourly.Probability, int(pct))
	}

	return hourly, nil
}
