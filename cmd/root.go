package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wdash",
	Short: "wdash – a terminal weather dashboard client",
	Long: `wdash is a single-binary terminal client for a remote weather service.
It renders per-city daily temperature records as a table and an ASCII line
chart, and lets the administrator edit them after logging in.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute is the entry point called from main. Failures the notifier has
// already surfaced are not printed a second time.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if reportable(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(passwdCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}
