package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", FormatDate(parsed))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("28/08/2026")
	assert.Error(t, err)
}

func TestDayStart(t *testing.T) {
	at := time.Date(2026, 8, 28, 21, 45, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), DayStart(at))
}
