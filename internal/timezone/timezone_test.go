package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Not/AZone"))
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2031-05-04", "14:30", "UTC")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2031, 5, 4, 14, 30, 0, 0, time.UTC), got)
}

func TestParseDateTimeAcceptsRFC3339Date(t *testing.T) {
	got, err := ParseDateTime("2031-05-04T00:00:00Z", "09:00", "UTC")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2031, 5, 4, 9, 0, 0, 0, time.UTC), got)
}

func TestParseDateTimeRejectsGarbage(t *testing.T) {
	_, err := ParseDateTime("tomorrow", "09:00", "UTC")
	assert.Error(t, err)

	_, err = ParseDateTime("2031-05-04", "9am", "UTC")
	assert.Error(t, err)
}
