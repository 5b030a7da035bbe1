package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingCredentials is returned by Validate when required Google API
// credential values are absent from the environment.
var ErrMissingCredentials = errors.New("missing Google API credentials")

// German display name tables. Weekday index 0 is Sunday, month index 0 is
// January.
var (
	Weekdays = []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}
	Months   = []string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}
)

// Config holds everything the process reads from the environment, resolved
// once at startup and treated as immutable afterwards.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	RefreshToken string

	Port       int
	CalendarID string
	Timezone   string
	StaticDir  string

	// Location is the resolved IANA timezone. All date/time projection goes
	// through it, never through the host default.
	Location *time.Location

	Weekdays []string
	Months   []string
}

// Load reads configuration from the environment and resolves the timezone.
// Credential presence is checked separately via Validate so the one-shot
// auth flow can run before a refresh token exists.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("GOOGLE_REDIRECT_URI", "http://localhost:3000/oauth2callback")
	v.SetDefault("PORT", 3000)
	v.SetDefault("CALENDAR_ID", "primary")
	v.SetDefault("TIMEZONE", "Europe/Berlin")
	v.SetDefault("STATIC_DIR", "public")

	cfg := &Config{
		ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
		RedirectURI:  v.GetString("GOOGLE_REDIRECT_URI"),
		RefreshToken: v.GetString("GOOGLE_REFRESH_TOKEN"),
		Port:         v.GetInt("PORT"),
		CalendarID:   v.GetString("CALENDAR_ID"),
		Timezone:     v.GetString("TIMEZONE"),
		StaticDir:    v.GetString("STATIC_DIR"),
		Weekdays:     Weekdays,
		Months:       Months,
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// Validate reports every missing credential value at once so the operator
// can fix them in one pass.
func (c *Config) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "GOOGLE_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "GOOGLE_CLIENT_SECRET")
	}
	if c.RefreshToken == "" {
		missing = append(missing, "GOOGLE_REFRESH_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
