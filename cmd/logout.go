package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the persisted session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	env := mustEnv()
	if err := env.sess.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session state",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	env := mustEnv()
	if cur := env.sess.Current(); cur != nil {
		fmt.Printf("Logged in as %s (administrator).\n", cur.Username)
	} else {
		fmt.Println("Not logged in.")
	}
	return nil
}
