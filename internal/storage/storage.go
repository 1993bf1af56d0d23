package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkolodziej/rain-alert/internal/state"
)

const stateFilename = "state.json"

// Storage handles persistence of the rain state file between runs
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// statePath returns the path to the state file
func (s *Storage) statePath() string {
	return filepath.Join(s.dataDir, stateFilename)
}

// Load reads the persisted state from disk. A missing file means this is
// the first run and yields an empty state with no recorded condition.
func (s *Storage) Load() (*state.State, error) {
	data, err := os.ReadFile(s.statePath())
	if err != nil {
		if os.IsNotExist(err) {
			return &state.State{}, nil
		}
		return nil, fmt.Errorf("reading state: %w", err)
	}

	var st state.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state: %w", err)
	}

	return &st, nil
}

// Save writes the state to disk, overwriting any previous value.
func (s *Storage) Save(st *state.State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if err := os.WriteFile(s.statePath(), data, 0644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}

	return nil
}

// Exists reports whether a state file has been written yet.
func (s *Storage) Exists() bool {
	_, err := os.Stat(s.statePath())
	return err == nil
}
