// Package render builds the display model and assembles the dashboard HTML.
// Rendering is a pure function of its inputs; no network, no clock.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/SebastianNachtigall/KindleWallCalender/internal/calendar"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/config"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/format"
)

// AllDayLabel is shown in place of a start time for all-day events.
const AllDayLabel = "Ganztägig"

// DefaultTitle is used when an event carries no summary.
const DefaultTitle = "No title"

// Item is the display model for a single event row.
type Item struct {
	Date  string
	Time  string
	Title string
}

// Items maps upstream events onto display rows. The mapping is total and
// order-preserving: same cardinality, same order, no dropping.
func Items(events []calendar.Event, cfg *config.Config) ([]Item, error) {
	items := make([]Item, 0, len(events))
	for _, ev := range events {
		date, err := format.Date(ev.Start, cfg.Location, cfg.Weekdays, cfg.Months)
		if err != nil {
			return nil, err
		}

		clock := AllDayLabel
		if !ev.AllDay {
			clock, err = format.Clock(ev.Start, cfg.Location)
			if err != nil {
				return nil, err
			}
		}

		title := ev.Summary
		if title == "" {
			title = DefaultTitle
		}

		items = append(items, Item{Date: date, Time: clock, Title: title})
	}
	return items, nil
}

type pageData struct {
	CalendarName string
	Events       []Item
	LastUpdated  string
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// Page assembles the complete, standalone dashboard document. The output
// instructs the client to reload once per hour; the server holds no refresh
// state of its own.
func Page(calendarName string, items []Item, lastUpdated string) (string, error) {
	var b strings.Builder
	data := pageData{
		CalendarName: calendarName,
		Events:       items,
		LastUpdated:  lastUpdated,
	}
	if err := pageTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return b.String(), nil
}

// ErrorPage returns the fixed document served on any upstream or formatting
// failure.
func ErrorPage() string {
	return errorHTML
}
