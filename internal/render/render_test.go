package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SebastianNachtigall/KindleWallCalender/internal/calendar"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return &config.Config{
		Location: loc,
		Weekdays: config.Weekdays,
		Months:   config.Months,
	}
}

func TestItems(t *testing.T) {
	cfg := testConfig(t)

	events := []calendar.Event{
		{Summary: "Standup", Start: "2024-06-03T09:00:00Z", End: "2024-06-03T09:15:00Z"},
		{Summary: "Vacation", Start: "2024-07-01", End: "2024-07-05", AllDay: true},
		{Start: "2024-06-04T12:00:00Z", End: "2024-06-04T13:00:00Z"},
	}

	items, err := Items(events, cfg)
	require.NoError(t, err)
	require.Len(t, items, len(events))

	require.Equal(t, Item{Date: "Mo, 3. Jun", Time: "11:00", Title: "Standup"}, items[0])
	require.Equal(t, Item{Date: "Mo, 1. Jul", Time: AllDayLabel, Title: "Vacation"}, items[1])
	require.Equal(t, Item{Date: "Di, 4. Jun", Time: "14:00", Title: "No title"}, items[2])
}

func TestItemsBadStart(t *testing.T) {
	cfg := testConfig(t)

	_, err := Items([]calendar.Event{{Summary: "broken", Start: "garbage"}}, cfg)
	require.Error(t, err)
}

func TestPageOrder(t *testing.T) {
	items := []Item{
		{Date: "Mo, 3. Jun", Time: "11:00", Title: "first"},
		{Date: "Di, 4. Jun", Time: "09:00", Title: "second"},
		{Date: "Mi, 5. Jun", Time: AllDayLabel, Title: "third"},
	}

	page, err := Page("Familie", items, "Mo, 3. Jun um 11:05")
	require.NoError(t, err)

	require.Equal(t, len(items), strings.Count(page, `<div class="event">`))

	// Rendered order mirrors input order.
	first := strings.Index(page, "first")
	second := strings.Index(page, "second")
	third := strings.Index(page, "third")
	require.Greater(t, first, -1)
	require.Greater(t, second, first)
	require.Greater(t, third, second)

	require.Contains(t, page, "Familie")
	require.Contains(t, page, AllDayLabel)
	require.Contains(t, page, "Zuletzt aktualisiert: Mo, 3. Jun um 11:05")
	require.NotContains(t, page, "Keine anstehenden Termine")
}

func TestPageEmpty(t *testing.T) {
	page, err := Page("Familie", nil, "Mo, 3. Jun um 11:05")
	require.NoError(t, err)

	require.Contains(t, page, "Keine anstehenden Termine")
	require.Zero(t, strings.Count(page, `<div class="event">`))
}

func TestPageEscapesTitles(t *testing.T) {
	items := []Item{{Date: "Mo, 3. Jun", Time: "11:00", Title: `<script>alert("x")</script>`}}

	page, err := Page("<b>Cal</b>", items, "Mo, 3. Jun um 11:05")
	require.NoError(t, err)

	require.NotContains(t, page, "<script>alert")
	require.Contains(t, page, "&lt;script&gt;")
	require.NotContains(t, page, "<b>Cal</b>")
}

func TestPageRefreshDirective(t *testing.T) {
	page, err := Page("Familie", nil, "Mo, 3. Jun um 11:05")
	require.NoError(t, err)

	require.Contains(t, page, `<meta http-equiv="refresh" content="3600">`)
	require.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
}

func TestPageDeterministic(t *testing.T) {
	items := []Item{{Date: "Mo, 3. Jun", Time: "11:00", Title: "Standup"}}

	a, err := Page("Familie", items, "Mo, 3. Jun um 11:05")
	require.NoError(t, err)
	b, err := Page("Familie", items, "Mo, 3. Jun um 11:05")
	require.NoError(t, err)

	require.Equal(t, a, b)
}
