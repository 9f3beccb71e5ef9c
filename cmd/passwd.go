package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the administrator password",
	Args:  cobra.NoArgs,
	RunE:  runPasswd,
}

func runPasswd(cmd *cobra.Command, args []string) error {
	env := mustEnv()
	if !env.sess.IsAdmin() {
		return errors.New("not logged in; run `wdash login` first")
	}

	current, err := promptLine(stdin, "Current password: ")
	if err != nil {
		return err
	}
	newPassword, err := promptLine(stdin, "New password: ")
	if err != nil {
		return err
	}
	if newPassword == "" {
		return errors.New("new password must not be empty")
	}

	if err := env.sess.ChangePassword(cmd.Context(), env.cli, current, newPassword); err != nil {
		return err
	}

	fmt.Println("Password changed.")
	return nil
}
