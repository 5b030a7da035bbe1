package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_REDIRECT_URI",
		"GOOGLE_REFRESH_TOKEN", "PORT", "CALENDAR_ID", "TIMEZONE", "STATIC_DIR",
	} {
		// t.Setenv registers restoration of the original value; the
		// Unsetenv leaves the variable absent for this test.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, "primary", cfg.CalendarID)
	require.Equal(t, "Europe/Berlin", cfg.Timezone)
	require.Equal(t, "public", cfg.StaticDir)
	require.Equal(t, "http://localhost:3000/oauth2callback", cfg.RedirectURI)
	require.Equal(t, "Europe/Berlin", cfg.Location.String())
	require.Len(t, cfg.Weekdays, 7)
	require.Len(t, cfg.Months, 12)
	require.Equal(t, ":3000", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "1//refresh")
	t.Setenv("PORT", "8080")
	t.Setenv("CALENDAR_ID", "family@group.calendar.google.com")
	t.Setenv("TIMEZONE", "America/New_York")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "id", cfg.ClientID)
	require.Equal(t, "secret", cfg.ClientSecret)
	require.Equal(t, "1//refresh", cfg.RefreshToken)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "family@group.calendar.google.com", cfg.CalendarID)
	require.Equal(t, "America/New_York", cfg.Location.String())
	require.NoError(t, cfg.Validate())
}

func TestLoadBadTimezone(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIMEZONE", "Not/AZone")

	_, err := Load()
	require.Error(t, err)
}

func TestValidateMissingCredentials(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.Validate()
	require.ErrorIs(t, err, ErrMissingCredentials)
	require.Contains(t, err.Error(), "GOOGLE_CLIENT_ID")
	require.Contains(t, err.Error(), "GOOGLE_CLIENT_SECRET")
	require.Contains(t, err.Error(), "GOOGLE_REFRESH_TOKEN")
}

func TestValidatePartialCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.Validate()
	require.ErrorIs(t, err, ErrMissingCredentials)
	require.Contains(t, err.Error(), "GOOGLE_REFRESH_TOKEN")
	require.NotContains(t, err.Error(), "GOOGLE_CLIENT_ID,")
}
