// Package geocode resolves city names to coordinates using the Open-Meteo
// geocoding API. The first match is used; an unknown city is an error that
// aborts the run.
package geocode

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	SearchURL = "https://geocoding-api.open-meteo.com/v1/search"
	UserAgent = "rain-alert/1.0 (github.com/pkolodziej/rain-alert)"
	Timeout   = 15 * time.Second
)

// Location is a geocoded city
type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Client queries the Open-Meteo geocoding API
type Client struct {
	client *http.Client
	url    string
}

// New creates a new geocoding client. With insecure set, TLS certificate
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
		url:    SearchURL,
	}
}

// Lookup resolves a city name to its best-matching location
func (c *Client) Lookup(city string) (*Location, error) {
	params := url.Values{}
	params.Set("name", city)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")

	req, err := http.NewRequest("GET", c.url+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching geocoding results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payload struct {
		Results []Location `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing geocoding response: %w", err)
	}

	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("no location found for %q", city)
	}

	loc := payload.Results[0]
	if loc.Timezone == "" {
		loc.Timezone = "auto"
	}

	return &loc, nil
}

// DisplayName returns the location formatted for user-facing messages
func (l *Location) DisplayName() string {
	if l.Country == "" {
		return l.Name
	}
	return fmt.Sprintf("%s, %s", l.Name, l.Country)
}
