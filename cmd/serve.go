package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/SebastianNachtigall/KindleWallCalender/internal/calendar"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/config"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP server",
	Long: `Run the dashboard HTTP server.

Reads configuration from the environment:

  GOOGLE_CLIENT_ID      OAuth2 client id (required)
  GOOGLE_CLIENT_SECRET  OAuth2 client secret (required)
  GOOGLE_REFRESH_TOKEN  refresh token from 'auth' (required)
  GOOGLE_REDIRECT_URI   OAuth2 redirect URI
  PORT                  listen port (default 3000)
  CALENDAR_ID           calendar to display (default "primary")
  TIMEZONE              IANA display timezone (default "Europe/Berlin")
  STATIC_DIR            directory served for unknown paths (default "public")`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := calendar.NewService(ctx, cfg)
	if err != nil {
		return err
	}

	return server.New(cfg, source).Run(ctx)
}
