package snapshots

import (
	"errors"
	"os"

	"github.com/bytedance/sonic"

	"futbol-dashboard-service/internal/domain/matches"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadMatches(date string) (matches.DayResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadMatches reads a snapshot for the given date (YYYY-MM-DD) from disk.
// Files live at {basePath}/matches/{date}.json with a DayResponse payload.
func (s *FSStore) LoadMatches(date string) (matches.DayResponse, error) {
	if s == nil {
		return matches.DayResponse{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return matches.DayResponse{}, errors.New("snapshot date required")
	}

	raw, err := os.ReadFile(MatchSnapshotPath(s.basePath, date))
	if err != nil {
		return matches.DayResponse{}, err
	}

	var payload matches.DayResponse
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return matches.DayResponse{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	if payload.Matches == nil {
		payload.Matches = []matches.Match{}
	}
	return payload, nil
}
