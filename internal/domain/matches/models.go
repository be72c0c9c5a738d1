// Package matches holds the normalized view model for live and scheduled
// fixtures. Values are rebuilt on every poll cycle and never persisted
// beyond the date-keyed snapshots on disk.
package matches

// MatchStatus is the display status derived from upstream status codes.
type MatchStatus string

const (
	StatusUpcoming MatchStatus = "Upcoming"
	StatusLive     MatchStatus = "Live"
	StatusHalfTime MatchStatus = "Half-Time"
	StatusFullTime MatchStatus = "Full-Time"
)

// EventType classifies a timeline event within a match.
type EventType string

const (
	EventGoal         EventType = "goal"
	EventCard         EventType = "card"
	EventSubstitution EventType = "substitution"
)

// MatchTeam is one side of a fixture. The adapter always produces a fully
// populated record; downstream code never sees the vendor's raw shapes.
type MatchTeam struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Logo  string `json:"logo,omitempty"`
	Score int    `json:"score"`
}

// Possession is the ball-control split reported by upstream statistics.
// Absence of the whole struct means "unknown", which is distinct from 0-0.
type Possession struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// MatchEvent is a single timeline entry (goal, card, substitution).
type MatchEvent struct {
	ID     string    `json:"id"`
	Minute int       `json:"minute"`
	Type   EventType `json:"type"`
	Team   string    `json:"team"`
	Player string    `json:"player"`
	Detail string    `json:"detail,omitempty"`
}

// Match is the app-facing fixture shape.
type Match struct {
	ID         string       `json:"id"`
	HomeTeam   MatchTeam    `json:"homeTeam"`
	AwayTeam   MatchTeam    `json:"awayTeam"`
	Status     MatchStatus  `json:"status"`
	Minute     *int         `json:"minute,omitempty"`
	League     string       `json:"league,omitempty"`
	Possession *Possession  `json:"possession,omitempty"`
	Events     []MatchEvent `json:"events,omitempty"`
}

// IsLive reports whether the match is currently being played.
func (m Match) IsLive() bool {
	return m.Status == StatusLive || m.Status == StatusHalfTime
}

// DayResponse is the payload served for a day's fixtures.
type DayResponse struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}

// NewDayResponse builds a DayResponse, normalizing a nil slice to empty.
func NewDayResponse(date string, list []Match) DayResponse {
	if list == nil {
		list = []Match{}
	}
	return DayResponse{Date: date, Matches: list}
}
