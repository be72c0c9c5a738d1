package apifootball

import (
	"fmt"
	"strconv"
	"strings"

	"futbol-dashboard-service/internal/domain/matches"
)

const possessionMetric = "Ball Possession"

func mapFixtures(fixtures []fixtureResponse) []matches.Match {
	out := make([]matches.Match, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, mapFixture(f))
	}
	return out
}

func mapFixture(f fixtureResponse) matches.Match {
	m := matches.Match{
		ID:       strconv.Itoa(f.Fixture.ID),
		HomeTeam: mapTeam(f.Teams.Home, f.Goals.Home),
		AwayTeam: mapTeam(f.Teams.Away, f.Goals.Away),
		Status:   mapStatus(f.Fixture.Status.Short),
		League:   f.League.Name,
	}
	// Elapsed minute is carried through only when upstream reports one.
	if f.Fixture.Status.Elapsed != nil {
		minute := *f.Fixture.Status.Elapsed
		m.Minute = &minute
	}
	return m
}

func mapTeam(t teamBlock, goals *int) matches.MatchTeam {
	score := 0
	if goals != nil {
		score = *goals
	}
	return matches.MatchTeam{
		ID:    strconv.Itoa(t.ID),
		Name:  t.Name,
		Logo:  t.Logo,
		Score: score,
	}
}

// mapStatus translates API-Football short status codes. Codes not in the
// table (SUSP, INT, PST, CANC, ABD, AWD, WO, ...) fall back to Full-Time:
// a conservative default that silently mislabels unknown states as over.
func mapStatus(short string) matches.MatchStatus {
	switch short {
	case "TBD", "NS":
		return matches.StatusUpcoming
	case "1H", "2H", "ET", "P", "BT":
		return matches.StatusLive
	case "HT":
		return matches.StatusHalfTime
	case "FT", "AET", "PEN":
		return matches.StatusFullTime
	default:
		return matches.StatusFullTime
	}
}

func mapEvents(events []eventResponse) []matches.MatchEvent {
	out := make([]matches.MatchEvent, 0, len(events))
	for _, e := range events {
		out = append(out, matches.MatchEvent{
			// Deterministic id so duplicate upstream entries collapse.
			ID:     fmt.Sprintf("%d-%d-%s", e.Time.Elapsed, e.Player.ID, e.Type),
			Minute: e.Time.Elapsed,
			Type:   mapEventType(e.Type),
			Team:   e.Team.Name,
			Player: e.Player.Name,
			Detail: e.Detail,
		})
	}
	return out
}

// mapEventType translates upstream event types. Unrecognized types default
// to substitution, the least alarming rendering.
func mapEventType(apiType string) matches.EventType {
	switch apiType {
	case "Goal":
		return matches.EventGoal
	case "Card":
		return matches.EventCard
	case "subst":
		return matches.EventSubstitution
	default:
		return matches.EventSubstitution
	}
}

// extractPossession returns the possession split from fixture statistics,
// or nil when either side's metric is missing or unparseable. Callers must
// treat nil as "do not render", never as 0-0.
func extractPossession(stats []statisticsResponse) *matches.Possession {
	if len(stats) < 2 {
		return nil
	}

	home, okHome := possessionValue(stats[0])
	away, okAway := possessionValue(stats[1])
	if !okHome || !okAway {
		return nil
	}

	return &matches.Possession{Home: home, Away: away}
}

func possessionValue(side statisticsResponse) (int, bool) {
	for _, line := range side.Statistics {
		if line.Type == possessionMetric {
			return parsePercent(line.Value)
		}
	}
	return 0, false
}

// parsePercent accepts the vendor's loose value typing: numbers or strings
// with a trailing percent sign.
func parsePercent(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case string:
		trimmed := strings.TrimSuffix(strings.TrimSpace(v), "%")
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
