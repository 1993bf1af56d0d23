// Package cli implements the command-line interface for rain-alert.
//
// The cli package provides the Cobra-based CLI that performs one check per
// invocation: geocode the city, fetch the hourly forecast, evaluate the
// 24-hour rain window, compare against the persisted state, and notify over
// Telegram only on a state change. It coordinates the geocode, forecast,
// state, storage and notifier packages and formats the run result as text
// or JSON.
package cli
