package timezone

import (
	"strings"
	"time"
)

const DefaultTimezone = "UTC"

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	dateTimeLayout = DateLayout + " " + TimeLayout
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDateTime combines a calendar date and an HH:MM time in tz. The date
// may also be a full RFC 3339 timestamp, in which case only its calendar day
// (in tz) is used.
func ParseDateTime(date, clock, tz string) (time.Time, error) {
	loc := Location(tz)
	date = strings.TrimSpace(date)

	if len(date) > len(DateLayout) {
		ts, err := time.Parse(time.RFC3339, date)
		if err != nil {
			return time.Time{}, err
		}
		date = ts.In(loc).Format(DateLayout)
	}

	return time.ParseInLocation(dateTimeLayout, date+" "+strings.TrimSpace(clock), loc)
}
