package apifootball

import "encoding/json"

// envelope is the outer shape of every API-Football response. The errors
// field may arrive as a JSON array or a JSON object keyed by parameter
// name; both shapes must be checked before trusting the payload.
type envelope struct {
	Get      string          `json:"get"`
	Errors   json.RawMessage `json:"errors"`
	Results  int             `json:"results"`
	Response json.RawMessage `json:"response"`
}

type fixtureResponse struct {
	Fixture fixtureBlock `json:"fixture"`
	League  leagueBlock  `json:"league"`
	Teams   teamsBlock   `json:"teams"`
	Goals   goalsBlock   `json:"goals"`
}

type fixtureBlock struct {
	ID     int         `json:"id"`
	Date   string      `json:"date"`
	Status statusBlock `json:"status"`
}

type statusBlock struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed"`
}

type leagueBlock struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Season  int    `json:"season"`
}

type teamsBlock struct {
	Home teamBlock `json:"home"`
	Away teamBlock `json:"away"`
}

type teamBlock struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Goals may be null before kickoff; nil maps to a 0 score.
type goalsBlock struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type eventResponse struct {
	Time   eventTime   `json:"time"`
	Team   teamBlock   `json:"team"`
	Player eventPlayer `json:"player"`
	Type   string      `json:"type"`
	Detail string      `json:"detail"`
}

type eventTime struct {
	Elapsed int  `json:"elapsed"`
	Extra   *int `json:"extra"`
}

type eventPlayer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// statisticsResponse is one side's statistics block. Values arrive untyped:
// numbers, "57%" strings, or null.
type statisticsResponse struct {
	Team       teamBlock       `json:"team"`
	Statistics []statisticLine `json:"statistics"`
}

type statisticLine struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}
