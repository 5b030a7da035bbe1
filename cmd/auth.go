package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/SebastianNachtigall/KindleWallCalender/internal/calendar"
	"github.com/SebastianNachtigall/KindleWallCalender/internal/config"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Obtain a Google Calendar refresh token",
	Long: `One-shot interactive OAuth2 bootstrap.

Prints an authorization URL, waits for the browser redirect on the configured
redirect URI, exchanges the authorization code and prints the resulting
refresh token. Store the token as GOOGLE_REFRESH_TOKEN before running
'serve'. The command exits after the first callback.`,
	RunE: runAuth,
}

func runAuth(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return fmt.Errorf("%w: GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set", config.ErrMissingCredentials)
	}

	oc := calendar.OAuthConfig(cfg)
	// access_type=offline makes Google return a refresh token on consent.
	authURL := oc.AuthCodeURL("state", oauth2.AccessTypeOffline)

	fmt.Println()
	fmt.Println("=================================")
	fmt.Println("STEP 1: Visit this URL in your browser:")
	fmt.Println("=================================")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()

	callbackPath, addr := callbackEndpoint(cfg.RedirectURI)

	done := make(chan error, 1)
	mux := http.NewServeMux()
	srv := &http.Server{Addr: addr, Handler: mux}

	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		tok, err := oc.Exchange(r.Context(), code)
		if err != nil {
			fmt.Fprintln(w, "Error! Check your terminal.")
			done <- fmt.Errorf("failed to exchange authorization code: %w", err)
			return
		}

		fmt.Println()
		fmt.Println("=================================")
		fmt.Println("SUCCESS! Your refresh token:")
		fmt.Println("=================================")
		fmt.Println()
		fmt.Println(tok.RefreshToken)
		fmt.Println()
		fmt.Println("Copy this token to your .env file as GOOGLE_REFRESH_TOKEN")

		fmt.Fprintln(w, "Authentication successful! Check your terminal for the refresh token. You can close this window.")
		done <- nil
	})

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			done <- err
		}
	}()

	fmt.Println("Waiting for authentication...")

	err = <-done

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)

	return err
}

// callbackEndpoint derives the local listener address and handler path from
// the configured redirect URI.
func callbackEndpoint(redirectURI string) (path, addr string) {
	path = "/oauth2callback"
	addr = ":3000"

	u, err := url.Parse(redirectURI)
	if err != nil {
		return path, addr
	}
	if u.Path != "" {
		path = u.Path
	}
	if p := u.Port(); p != "" {
		addr = ":" + p
	}
	return path, addr
}
