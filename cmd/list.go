package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MrRedFox1223/wdash/internal/filter"
	"github.com/MrRedFox1223/wdash/internal/view"
)

var (
	listFrom string
	listTo   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List weather records as a table",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFrom, "from", "", "Range start (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Range end (YYYY-MM-DD)")
}

func runList(cmd *cobra.Command, args []string) error {
	rng, err := filter.ParseRange(listFrom, listTo)
	if err != nil {
		return err
	}

	env := mustEnv()
	if err := env.recs.Load(cmd.Context()); err != nil {
		return errOpFailed
	}

	view.RenderTable(os.Stdout, filter.Apply(env.recs.Records(), rng))
	return nil
}
