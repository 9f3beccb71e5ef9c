package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in as the administrator",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	password, err := promptLine(stdin, "Password: ")
	if err != nil {
		return err
	}

	env := mustEnv()
	if err := env.sess.Login(cmd.Context(), env.cli, args[0], password); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s.\n", args[0])
	return nil
}
