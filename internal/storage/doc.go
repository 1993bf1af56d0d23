// Package storage provides JSON-based persistence for the rain state.
//
// The storage package manages the single state file that records the last
// notified rain condition between cron-driven runs. The state is stored as
// state.json inside the data directory, created on first run and overwritten
// on each state change. The default location is ~/.local/share/rain-alert/.
package storage
