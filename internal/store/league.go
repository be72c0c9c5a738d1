package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"futbol-dashboard-service/internal/domain/league"
	"futbol-dashboard-service/internal/logging"
	"futbol-dashboard-service/internal/metrics"
)

// ErrValidation marks caller input rejected before any write happened.
var ErrValidation = errors.New("invalid input")

// LeagueStore owns the friend-league blob. Every read loads the full value
// from the backend and every mutation rewrites it, so the backend is always
// a complete, consistent league. A blob that fails to load is reset to an
// empty league rather than blocking the service; Status exposes the loss.
type LeagueStore struct {
	mu       sync.Mutex
	backend  Backend
	logger   zerolog.Logger
	metrics  *metrics.Recorder
	validate *validator.Validate
	now      func() time.Time
	newID    func() string

	resets      int
	lastResetAt time.Time
	lastLoadErr string
}

// Config carries LeagueStore dependencies. Zero-value fields get defaults:
// an in-memory backend, wall-clock time and random UUIDs.
type Config struct {
	Backend Backend
	Logger  zerolog.Logger
	Metrics *metrics.Recorder
	Now     func() time.Time
	NewID   func() string
}

func NewLeagueStore(cfg Config) *LeagueStore {
	backend := cfg.Backend
	if backend == nil {
		backend = NewMemoryBackend()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &LeagueStore{
		backend:  backend,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		validate: validator.New(),
		now:      now,
		newID:    newID,
	}
}

// Status reports blob health. Resets counts the times a load failure forced
// the store back to an empty league; callers can surface the data loss.
type Status struct {
	Resets      int       `json:"resets"`
	LastResetAt time.Time `json:"lastResetAt,omitempty"`
	LastError   string    `json:"lastError,omitempty"`
}

func (s *LeagueStore) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Resets:      s.resets,
		LastResetAt: s.lastResetAt,
		LastError:   s.lastLoadErr,
	}
}

// ListPlayers returns all players in insertion order.
func (s *LeagueStore) ListPlayers(ctx context.Context) ([]league.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)
	out := make([]league.Player, len(data.Players))
	copy(out, data.Players)
	return out, nil
}

// GetPlayer returns one player by id.
func (s *LeagueStore) GetPlayer(ctx context.Context, id string) (league.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)
	for _, p := range data.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return league.Player{}, fmt.Errorf("player %q: %w", id, ErrNotFound)
}

// AddPlayer creates a player with zeroed counters and a fresh id.
func (s *LeagueStore) AddPlayer(ctx context.Context, input league.NewPlayerInput) (league.Player, error) {
	if err := s.validate.Struct(input); err != nil {
		return league.Player{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)
	player := league.Player{
		ID:        s.newID(),
		FullName:  input.FullName,
		Alias:     input.Alias,
		Dorsal:    input.Dorsal,
		Position:  input.Position,
		CreatedAt: s.now().UTC(),
	}
	data.Players = append(data.Players, player)

	if err := s.save(ctx, "add_player", data); err != nil {
		return league.Player{}, err
	}
	return player, nil
}

// UpdatePlayer merges non-nil patch fields into an existing player. The id
// and the derived counters cannot be changed through this path.
func (s *LeagueStore) UpdatePlayer(ctx context.Context, id string, patch league.PlayerPatch) (league.Player, error) {
	if err := s.validate.Struct(patch); err != nil {
		return league.Player{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if patch.FullName != nil && *patch.FullName == "" {
		return league.Player{}, fmt.Errorf("%w: fullName cannot be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)
	idx := -1
	for i, p := range data.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return league.Player{}, fmt.Errorf("player %q: %w", id, ErrNotFound)
	}

	player := data.Players[idx]
	if patch.FullName != nil {
		player.FullName = *patch.FullName
	}
	if patch.Alias != nil {
		player.Alias = *patch.Alias
	}
	if patch.Dorsal != nil {
		player.Dorsal = *patch.Dorsal
	}
	if patch.Position != nil {
		player.Position = *patch.Position
	}
	data.Players[idx] = player

	if err := s.save(ctx, "update_player", data); err != nil {
		return league.Player{}, err
	}
	return player, nil
}

// RemovePlayer deletes a player. Recorded sessions keep their entries for
// the removed id: past games are history, not subject to roster changes.
func (s *LeagueStore) RemovePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)
	idx := -1
	for i, p := range data.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("player %q: %w", id, ErrNotFound)
	}

	data.Players = append(data.Players[:idx], data.Players[idx+1:]...)
	return s.save(ctx, "remove_player", data)
}

// ListSessions returns all recorded sessions in insertion order.
func (s *LeagueStore) ListSessions(ctx context.Context) ([]league.GameSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)
	out := make([]league.GameSession, len(data.Sessions))
	copy(out, data.Sessions)
	return out, nil
}

// AddGameSession appends a session and folds its entries into the derived
// player counters in the same write. Every entry counts one game played for
// its player, goals or not. Entries whose playerId matches no current player
// are kept in the session but contribute to no counter.
func (s *LeagueStore) AddGameSession(ctx context.Context, date time.Time, stats []league.PlayerGameStats) (league.GameSession, error) {
	if len(stats) == 0 {
		return league.GameSession{}, fmt.Errorf("%w: session needs at least one player entry", ErrValidation)
	}
	seen := make(map[string]struct{}, len(stats))
	for _, entry := range stats {
		if entry.PlayerID == "" {
			return league.GameSession{}, fmt.Errorf("%w: entry missing playerId", ErrValidation)
		}
		if entry.Goals < 0 || entry.Assists < 0 {
			return league.GameSession{}, fmt.Errorf("%w: negative stats for player %q", ErrValidation, entry.PlayerID)
		}
		if _, dup := seen[entry.PlayerID]; dup {
			return league.GameSession{}, fmt.Errorf("%w: duplicate entry for player %q", ErrValidation, entry.PlayerID)
		}
		seen[entry.PlayerID] = struct{}{}
	}
	if date.IsZero() {
		date = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)

	byID := make(map[string]int, len(data.Players))
	for i, p := range data.Players {
		byID[p.ID] = i
	}

	session := league.GameSession{
		ID:          s.newID(),
		Date:        date.UTC(),
		PlayerStats: append([]league.PlayerGameStats(nil), stats...),
	}
	data.Sessions = append(data.Sessions, session)

	skipped := 0
	for _, entry := range stats {
		i, ok := byID[entry.PlayerID]
		if !ok {
			skipped++
			continue
		}
		data.Players[i].Goals += entry.Goals
		data.Players[i].Assists += entry.Assists
		data.Players[i].GamesPlayed++
	}
	if skipped > 0 {
		logging.FromContext(ctx, s.logger).Warn().
			Str(logging.FieldSessionID, session.ID).
			Int(logging.FieldCount, skipped).
			Msg("session entries reference unknown players")
	}

	if err := s.save(ctx, "add_session", data); err != nil {
		return league.GameSession{}, err
	}
	return session, nil
}

// load must be called with s.mu held. A backend failure resets the store to
// an empty league so the service keeps running; the loss is counted and the
// last error retained for Status.
func (s *LeagueStore) load(ctx context.Context) LeagueData {
	data, err := s.backend.Load()
	if err != nil {
		s.resets++
		s.lastResetAt = s.now().UTC()
		s.lastLoadErr = err.Error()
		s.metrics.RecordBlobReset()
		logging.FromContext(ctx, s.logger).Error().
			Err(err).
			Int("resets", s.resets).
			Msg("league blob unreadable, resetting to empty league")
		// Best-effort persist of the reset so the next load succeeds.
		if saveErr := s.backend.Save(emptyLeagueData()); saveErr != nil {
			logging.FromContext(ctx, s.logger).Error().
				Err(saveErr).
				Msg("could not persist league reset")
		}
		return emptyLeagueData()
	}
	normalizeLeagueData(&data)
	return data
}

// save must be called with s.mu held. Backend failures surface to the
// caller as StorageError; the mutation is considered not to have happened.
func (s *LeagueStore) save(ctx context.Context, op string, data LeagueData) error {
	err := s.backend.Save(data)
	s.metrics.RecordStoreWrite(op, err)
	if err == nil {
		return nil
	}

	logging.FromContext(ctx, s.logger).Error().
		Err(err).
		Str("op", op).
		Msg("league blob write failed")
	if _, ok := AsStorageError(err); ok {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
