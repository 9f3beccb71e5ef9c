package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a weather record",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	env := mustEnv()
	if !env.sess.IsAdmin() {
		return errors.New("not logged in; run `wdash login` first")
	}

	if err := env.recs.Load(cmd.Context()); err != nil {
		return errOpFailed
	}
	if _, ok := env.recs.Find(id); !ok {
		return fmt.Errorf("no record with id %d", id)
	}

	if err := env.recs.Delete(cmd.Context(), id); err != nil {
		return errOpFailed
	}
	return nil
}
