package calendar

import (
	"fmt"

	gcal "google.golang.org/api/calendar/v3"
)

// Event is the transport-agnostic view of a single upstream calendar event.
// Start and End carry the raw wire values: an RFC3339 timestamp for timed
// events or a bare YYYY-MM-DD date for all-day events.
type Event struct {
	Summary string
	Start   string
	End     string
	AllDay  bool
}

// convert maps a wire event onto Event. The all-day predicate (start carries
// no time-of-day component) is applied exactly once here; both the HTML page
// and the JSON endpoint read the resulting AllDay field.
func convert(item *gcal.Event) (Event, error) {
	ev := Event{Summary: item.Summary}

	if item.Start == nil || (item.Start.DateTime == "" && item.Start.Date == "") {
		return ev, fmt.Errorf("event %q has no start time or date", item.Summary)
	}

	ev.AllDay = item.Start.DateTime == ""
	if ev.AllDay {
		ev.Start = item.Start.Date
	} else {
		ev.Start = item.Start.DateTime
	}

	if item.End != nil {
		if item.End.DateTime != "" {
			ev.End = item.End.DateTime
		} else {
			ev.End = item.End.Date
		}
	}

	return ev, nil
}
