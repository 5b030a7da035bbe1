// Package server exposes the dashboard over HTTP: the rendered page at /,
// a JSON projection at /api/events, and static files for everything else.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SebastianNachtigall/KindleWallCalender/internal/calendar"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/config"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/format"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/logger"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/render"
)

// Source is the upstream calendar contract the handlers depend on.
type Source interface {
	Upcoming(ctx context.Context) ([]calendar.Event, error)
	Name(ctx context.Context) (string, error)
}

// Server routes dashboard requests. Each request performs exactly one
// upstream fetch; there is no caching and no retrying.
type Server struct {
	cfg    *config.Config
	source Source
	engine *gin.Engine
}

// New wires the routes. The caller controls gin's mode.
func New(cfg *config.Config, source Source) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{cfg: cfg, source: source, engine: engine}

	engine.GET("/", s.handleIndex)
	engine.GET("/api/events", s.handleEvents)
	engine.NoRoute(gin.WrapH(http.FileServer(gin.Dir(cfg.StaticDir, false))))

	return s
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr(), Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("server listening", "addr", s.cfg.Addr(), "calendar_id", s.cfg.CalendarID, "timezone", s.cfg.Timezone)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// handleIndex renders the full dashboard page server-side. Rendering is
// all-or-nothing: nothing is written until the document is complete.
func (s *Server) handleIndex(c *gin.Context) {
	ctx := c.Request.Context()

	name, err := s.source.Name(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}

	events, err := s.source.Upcoming(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}

	items, err := render.Items(events, s.cfg)
	if err != nil {
		s.fail(c, err)
		return
	}

	lastUpdated, err := format.LastUpdated(time.Now(), s.cfg.Location, s.cfg.Weekdays, s.cfg.Months)
	if err != nil {
		s.fail(c, err)
		return
	}

	page, err := render.Page(name, items, lastUpdated)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (s *Server) fail(c *gin.Context, err error) {
	logger.Error("failed to render dashboard", "error", err)
	c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(render.ErrorPage()))
}

// eventJSON mirrors the raw upstream values rather than the display strings.
type eventJSON struct {
	Summary  string `json:"summary"`
	Start    string `json:"start"`
	End      string `json:"end"`
	IsAllDay bool   `json:"isAllDay"`
}

func (s *Server) handleEvents(c *gin.Context) {
	events, err := s.source.Upcoming(c.Request.Context())
	if err != nil {
		logger.Error("error fetching calendar events", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	out := make([]eventJSON, 0, len(events))
	for _, ev := range events {
		summary := ev.Summary
		if summary == "" {
			summary = render.DefaultTitle
		}
		out = append(out, eventJSON{
			Summary:  summary,
			Start:    ev.Start,
			End:      ev.End,
			IsAllDay: ev.AllDay,
		})
	}

	c.JSON(http.StatusOK, out)
}
