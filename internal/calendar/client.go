package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/SebastianNachtigall/KindleWallCalender/internal/config"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/logger"
)

// maxResults caps the number of upcoming events shown on the dashboard.
const maxResults = 10

// Scopes required for read-only calendar access.
var Scopes = []string{gcal.CalendarReadonlyScope}

// Service wraps the Google Calendar API for a single configured calendar.
type Service struct {
	service    *gcal.Service
	calendarID string
}

// OAuthConfig builds the OAuth2 client configuration. It is shared between
// the server (refresh-token exchange) and the one-shot auth bootstrap
// (authorization-code exchange).
func OAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Endpoint:     google.Endpoint,
		Scopes:       Scopes,
	}
}

// NewService creates a calendar client seeded with only the stored refresh
// token. The oauth2 transport exchanges it for short-lived access tokens
// transparently on each expiry.
func NewService(ctx context.Context, cfg *config.Config) (*Service, error) {
	ts := OAuthConfig(cfg).TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	srv, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &Service{service: srv, calendarID: cfg.CalendarID}, nil
}

// Upcoming returns up to ten future events, expanded to single occurrences
// and ordered by start time ascending. The mapping onto []Event is 1:1 and
// order-preserving.
func (s *Service) Upcoming(ctx context.Context) ([]Event, error) {
	res, err := s.service.Events.List(s.calendarID).
		TimeMin(time.Now().Format(time.RFC3339)).
		MaxResults(maxResults).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list events for calendar %s: %w", s.calendarID, err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		ev, err := convert(item)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	logger.Debug("fetched events", "calendar_id", s.calendarID, "count", len(events))
	return events, nil
}

// Name returns the calendar's display summary for the page header.
func (s *Service) Name(ctx context.Context) (string, error) {
	cal, err := s.service.Calendars.Get(s.calendarID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve calendar %s: %w", s.calendarID, err)
	}
	return cal.Summary, nil
}
