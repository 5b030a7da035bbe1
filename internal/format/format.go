// Package format projects upstream date/time values into the configured
// timezone and renders them with localized name tables.
package format

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadMoment marks start/end values that are neither RFC3339 timestamps
// nor bare calendar dates.
var ErrBadMoment = errors.New("unparseable moment")

const dateOnly = "2006-01-02"

// parse projects a wire moment into loc. Bare dates are parsed in loc so the
// calendar date never shifts across the timezone boundary.
func parse(moment string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, moment); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(dateOnly, moment, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadMoment, moment)
}

func checkTables(weekdays, months []string) error {
	if len(weekdays) != 7 {
		return fmt.Errorf("weekday table must have 7 entries, got %d", len(weekdays))
	}
	if len(months) != 12 {
		return fmt.Errorf("month table must have 12 entries, got %d", len(months))
	}
	return nil
}

// Date renders a moment as "<Weekday>, <day>. <Month>" in loc. Weekday index
// 0 is Sunday, month index 0 is January.
func Date(moment string, loc *time.Location, weekdays, months []string) (string, error) {
	if err := checkTables(weekdays, months); err != nil {
		return "", err
	}
	t, err := parse(moment, loc)
	if err != nil {
		return "", err
	}
	return stamp(t, weekdays, months), nil
}

// Clock renders a moment as zero-padded 24-hour "HH:MM" in loc. Callers must
// not pass bare dates; all-day events carry no wall-clock time.
func Clock(moment string, loc *time.Location) (string, error) {
	t, err := parse(moment, loc)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}

// LastUpdated renders the page footer stamp for the given render time:
// the date followed by " um HH:MM".
func LastUpdated(now time.Time, loc *time.Location, weekdays, months []string) (string, error) {
	if err := checkTables(weekdays, months); err != nil {
		return "", err
	}
	t := now.In(loc)
	return fmt.Sprintf("%s um %s", stamp(t, weekdays, months), t.Format("15:04")), nil
}

func stamp(t time.Time, weekdays, months []string) string {
	return fmt.Sprintf("%s, %d. %s", weekdays[int(t.Weekday())], t.Day(), months[int(t.Month())-1])
}
