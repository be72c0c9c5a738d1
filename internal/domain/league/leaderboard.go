package league

import (
	"math"
	"sort"
)

// LeaderboardSize caps each ranked list.
const LeaderboardSize = 10

// Leaderboard holds the ranked views derived from the current player list.
type Leaderboard struct {
	TopScorers   []Player `json:"topScorers"`
	TopAssisters []Player `json:"topAssisters"`
}

// Averages holds a player's per-game rates, rounded to two decimals.
type Averages struct {
	GoalsPerGame   float64 `json:"goalsPerGame"`
	AssistsPerGame float64 `json:"assistsPerGame"`
}

// ComputeLeaderboard ranks players descending by goals and by assists.
// Ties keep the original insertion order (stable sort), and each list is
// truncated to LeaderboardSize. Pure function of the input slice.
func ComputeLeaderboard(players []Player) Leaderboard {
	return Leaderboard{
		TopScorers:   rankBy(players, func(p Player) int { return p.Goals }),
		TopAssisters: rankBy(players, func(p Player) int { return p.Assists }),
	}
}

func rankBy(players []Player, key func(Player) int) []Player {
	ranked := make([]Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})
	if len(ranked) > LeaderboardSize {
		ranked = ranked[:LeaderboardSize]
	}
	return ranked
}

// CalculateAverages returns goals and assists per game, each rounded half
// away from zero to two decimal places. Both rates are zero when the player
// has no recorded games.
func CalculateAverages(p Player) Averages {
	if p.GamesPlayed == 0 {
		return Averages{}
	}
	return Averages{
		GoalsPerGame:   round2(float64(p.Goals) / float64(p.GamesPlayed)),
		AssistsPerGame: round2(float64(p.Assists) / float64(p.GamesPlayed)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
