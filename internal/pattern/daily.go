package pattern

import (
	"fmt"
	"time"

	// The reference zone must resolve on hosts without a zoneinfo database
	_ "time/tzdata"
)

const ReferenceZone = "America/Los_Angeles"

// Location loads a zone by name, falling back to the reference zone and then UTC
func Location(name string) (*time.Location, error) {
	if name == "" {
		name = ReferenceZone
	}
	loc, err := time.LoadLocation(name)
	if nil != err {
		return time.UTC, fmt.Errorf("unable to load time zone %v: %w", name, err)
	}
	return loc, nil
}

// Today returns midnight of the calendar day now falls on in loc
func Today(now time.Time, loc *time.Location) time.Time {
	l := now.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

// Seed is the integer form of a calendar date, 2024-03-15 is 20240315
func Seed(date time.Time) int {
	return date.Year()*10000 + int(date.Month())*100 + date.Day()
}

// PuzzleNumber counts whole days since the unix epoch
func PuzzleNumber(now time.Time) int64 {
	return now.UnixNano() / int64(time.Millisecond) / 86400000
}

// UntilNext is the time left before the next calendar day starts in loc
func UntilNext(now time.Time, loc *time.Location) time.Duration {
	next := Today(now, loc).AddDate(0, 0, 1)
	return next.Sub(now)
}

func FormatDate(date time.Time) string {
	return date.Format("Monday, January 2, 2006")
}

// FormatCountdown renders a duration as "3h 12m"
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
