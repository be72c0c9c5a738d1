package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"futbol-dashboard-service/internal/domain/league"
)

// LeagueData is the persisted shape of the friend league: the full set of
// players and sessions serialized as one blob. Every mutation rewrites the
// whole value.
type LeagueData struct {
	Players  []league.Player      `json:"players"`
	Sessions []league.GameSession `json:"sessions"`
}

// Backend persists the league blob. Load returns an empty LeagueData when
// nothing has been stored yet; a decode failure is reported as
// ErrCorruptData so the store can reset.
type Backend interface {
	Load() (LeagueData, error)
	Save(data LeagueData) error
}

// FSBackend stores the league blob as a single JSON file. Writes go through
// a temp file followed by rename so a crash mid-write never leaves a
// half-written blob behind.
type FSBackend struct {
	path string
}

func NewFSBackend(path string) *FSBackend {
	return &FSBackend{path: path}
}

func (b *FSBackend) Load() (LeagueData, error) {
	raw, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return emptyLeagueData(), nil
	}
	if err != nil {
		return LeagueData{}, &StorageError{Op: "load", Err: err}
	}
	if len(raw) == 0 {
		return emptyLeagueData(), nil
	}

	var data LeagueData
	if err := sonic.Unmarshal(raw, &data); err != nil {
		return LeagueData{}, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	normalizeLeagueData(&data)
	return data, nil
}

func (b *FSBackend) Save(data LeagueData) error {
	raw, err := sonic.Marshal(data)
	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "mkdir", Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return &StorageError{Op: "create", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "close", Err: err}
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "rename", Err: err}
	}
	return nil
}

// MemoryBackend keeps the blob in memory. Tests inject LoadErr/SaveErr to
// exercise failure paths.
type MemoryBackend struct {
	Data    LeagueData
	LoadErr error
	SaveErr error

	SaveCalls int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{Data: emptyLeagueData()}
}

// Load hands out a deep copy so callers can mutate freely; an abandoned
// mutation (failed save) never reaches the stored value.
func (b *MemoryBackend) Load() (LeagueData, error) {
	if b.LoadErr != nil {
		return LeagueData{}, b.LoadErr
	}
	return cloneLeagueData(b.Data), nil
}

func (b *MemoryBackend) Save(data LeagueData) error {
	b.SaveCalls++
	if b.SaveErr != nil {
		return b.SaveErr
	}
	b.Data = cloneLeagueData(data)
	return nil
}

// cloneLeagueData copies the blob including slice backing, matching the
// isolation a serialize/deserialize backend gives for free. Session stat
// slices are copied too since the store snapshots them on write.
func cloneLeagueData(data LeagueData) LeagueData {
	out := LeagueData{
		Players:  make([]league.Player, len(data.Players)),
		Sessions: make([]league.GameSession, len(data.Sessions)),
	}
	copy(out.Players, data.Players)
	for i, s := range data.Sessions {
		s.PlayerStats = append([]league.PlayerGameStats(nil), s.PlayerStats...)
		out.Sessions[i] = s
	}
	return out
}

func emptyLeagueData() LeagueData {
	return LeagueData{Players: []league.Player{}, Sessions: []league.GameSession{}}
}

// normalizeLeagueData replaces nil slices left by decoding with empty ones
// so marshaled output is always [] rather than null.
func normalizeLeagueData(data *LeagueData) {
	if data.Players == nil {
		data.Players = []league.Player{}
	}
	if data.Sessions == nil {
		data.Sessions = []league.GameSession{}
	}
}
