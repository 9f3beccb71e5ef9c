package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MrRedFox1223/wdash/internal/filter"
	"github.com/MrRedFox1223/wdash/internal/view"
)

var (
	dashboardFrom string
	dashboardTo   string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the weather chart and table",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardFrom, "from", "", "Range start (YYYY-MM-DD)")
	dashboardCmd.Flags().StringVar(&dashboardTo, "to", "", "Range end (YYYY-MM-DD)")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	rng, err := filter.ParseRange(dashboardFrom, dashboardTo)
	if err != nil {
		return err
	}

	env := mustEnv()
	if err := env.recs.Load(cmd.Context()); err != nil {
		return errOpFailed
	}
	env.log.Debug("records loaded", "count", len(env.recs.Records()))

	// Chart and table share one filtered view; the memo computes it once.
	var memo filter.Memo
	view.RenderChart(os.Stdout, memo.Apply(env.recs.Records(), rng), env.recs.Highlight(), view.ChartOptions{})
	view.RenderTable(os.Stdout, memo.Apply(env.recs.Records(), rng))
	return nil
}
