package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDate       = "date"
	FieldFixtureID  = "fixture_id"
	FieldPlayerID   = "player_id"
	FieldSessionID  = "session_id"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
