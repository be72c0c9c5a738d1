// Package league exposes the application service for the friend league:
// roster management, session recording and the derived leaderboard and
// per-player averages.
package league

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	domain "futbol-dashboard-service/internal/domain/league"
	"futbol-dashboard-service/internal/store"
	"futbol-dashboard-service/internal/timeutil"
)

// Service wraps the league store with input shaping and the pure
// aggregation functions. All mutation goes through the store's single-blob
// write path.
type Service struct {
	store  *store.LeagueStore
	logger zerolog.Logger
}

func NewService(st *store.LeagueStore, logger zerolog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// NewSessionInput carries the caller-provided fields for recording a game.
// An empty date means "now".
type NewSessionInput struct {
	Date        string                   `json:"date"`
	PlayerStats []domain.PlayerGameStats `json:"playerStats" binding:"required"`
}

// Players lists the current roster.
func (s *Service) Players(ctx context.Context) ([]domain.Player, error) {
	return s.store.ListPlayers(ctx)
}

// Player returns one roster entry by id.
func (s *Service) Player(ctx context.Context, id string) (domain.Player, error) {
	return s.store.GetPlayer(ctx, id)
}

// AddPlayer creates a roster entry.
func (s *Service) AddPlayer(ctx context.Context, input domain.NewPlayerInput) (domain.Player, error) {
	return s.store.AddPlayer(ctx, input)
}

// UpdatePlayer patches a roster entry.
func (s *Service) UpdatePlayer(ctx context.Context, id string, patch domain.PlayerPatch) (domain.Player, error) {
	return s.store.UpdatePlayer(ctx, id, patch)
}

// RemovePlayer deletes a roster entry. Recorded sessions are untouched.
func (s *Service) RemovePlayer(ctx context.Context, id string) error {
	return s.store.RemovePlayer(ctx, id)
}

// Sessions lists recorded games in insertion order.
func (s *Service) Sessions(ctx context.Context) ([]domain.GameSession, error) {
	return s.store.ListSessions(ctx)
}

// AddSession records a game and updates the derived counters.
func (s *Service) AddSession(ctx context.Context, input NewSessionInput) (domain.GameSession, error) {
	var date time.Time
	if input.Date != "" {
		parsed, err := timeutil.ParseDate(input.Date)
		if err != nil {
			return domain.GameSession{}, fmt.Errorf("%w: date must be YYYY-MM-DD", store.ErrValidation)
		}
		date = parsed
	}
	return s.store.AddGameSession(ctx, date, input.PlayerStats)
}

// Leaderboard ranks the current roster by goals and assists.
func (s *Service) Leaderboard(ctx context.Context) (domain.Leaderboard, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	return domain.ComputeLeaderboard(players), nil
}

// Averages returns a player's per-game goal and assist rates.
func (s *Service) Averages(ctx context.Context, playerID string) (domain.Averages, error) {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return domain.Averages{}, err
	}
	return domain.CalculateAverages(player), nil
}

// StorageStatus reports blob health for the readiness surface.
func (s *Service) StorageStatus() store.Status {
	return s.store.Status()
}
