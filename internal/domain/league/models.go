// Package league holds the friend-league domain model: locally tracked
// players and recorded game sessions, plus the pure aggregation logic
// derived from them.
package league

import "time"

// Position is a player's fixed field position.
type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

// ValidPosition reports whether p is one of the known positions.
func ValidPosition(p Position) bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// Player is a friend-league participant. Goals, Assists and GamesPlayed are
// derived counters: they must always equal the sum of this player's
// per-session contributions across all recorded sessions.
type Player struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Alias       string    `json:"alias,omitempty"`
	Dorsal      int       `json:"dorsal,omitempty"`
	Position    Position  `json:"position"`
	Goals       int       `json:"goals"`
	Assists     int       `json:"assists"`
	GamesPlayed int       `json:"gamesPlayed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DisplayName returns the alias when set, falling back to the full name.
// The fallback is a rendering concern only and is never stored.
func (p Player) DisplayName() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.FullName
}

// PlayerGameStats is one player's contribution within a single session.
// A zero-goals, zero-assists entry still means the player played.
type PlayerGameStats struct {
	PlayerID string `json:"playerId"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
}

// GameSession is one recorded friend-league game. Sessions are append-only
// and immutable once created.
type GameSession struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	PlayerStats []PlayerGameStats `json:"playerStats"`
}

// NewPlayerInput carries the caller-provided fields for player creation.
// Counters and identity are assigned by the store.
type NewPlayerInput struct {
	FullName string   `json:"fullName" binding:"required" validate:"required"`
	Alias    string   `json:"alias" validate:"omitempty"`
	Dorsal   int      `json:"dorsal" validate:"gte=0,lte=99"`
	Position Position `json:"position" binding:"required" validate:"required,oneof=Goalkeeper Defender Midfielder Forward"`
}

// PlayerPatch merges optional fields into an existing player. Counters and
// the id cannot be mutated through this path.
type PlayerPatch struct {
	FullName *string   `json:"fullName,omitempty"`
	Alias    *string   `json:"alias,omitempty"`
	Dorsal   *int      `json:"dorsal,omitempty" validate:"omitempty,gte=0,lte=99"`
	Position *Position `json:"position,omitempty" validate:"omitempty,oneof=Goalkeeper Defender Midfielder Forward"`
}
