package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SebastianNachtigall/KindleWallCalender/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "kindlewallcalendar",
	Short: "Google Calendar wall dashboard for e-ink browsers",
	Long: `A minimal personal dashboard that shows upcoming Google Calendar events
as a static HTML page, designed for old Kindle browsers pinned to a wall.

The page is rendered server-side on every request and tells the client to
reload itself once per hour. Run 'auth' once to obtain a refresh token, store
it in the environment (or a .env file), then run 'serve'.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(authCmd)
}
