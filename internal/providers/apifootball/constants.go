package apifootball

import "time"

const providerName = "apifootball"

const (
	defaultBaseURL     = "https://v3.football.api-sports.io"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "UTC"

	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"
	apiHost       = "v3.football.api-sports.io"
)
