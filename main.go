package main

import (
	"os"
	"path/filepath"

	"github.com/subosito/gotenv"

	"github.com/SebastianNachtigall/KindleWallCalender/cmd"
)

func main() {
	// Load .env file if present (current directory or XDG config dir) so
	// credentials don't have to live in the shell environment.
	// Order: project root .env > XDG config dir .env (first one found is loaded)
	tryPaths := []string{".env"}
	if cfgHome, err := os.UserConfigDir(); err == nil {
		tryPaths = append(tryPaths, filepath.Join(cfgHome, "kindlewallcalendar", ".env"))
	}
	for _, p := range tryPaths {
		if _, err := os.Stat(p); err == nil {
			if loadErr := gotenv.Load(p); loadErr == nil {
				break
			}
		}
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
