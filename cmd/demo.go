package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MrRedFox1223/wdash/internal/filter"
	"github.com/MrRedFox1223/wdash/internal/seed"
	"github.com/MrRedFox1223/wdash/internal/view"
)

var (
	demoFrom string
	demoTo   string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render the built-in sample dataset without a server",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoFrom, "from", "", "Range start (YYYY-MM-DD)")
	demoCmd.Flags().StringVar(&demoTo, "to", "", "Range end (YYYY-MM-DD)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	rng, err := filter.ParseRange(demoFrom, demoTo)
	if err != nil {
		return err
	}

	records := filter.Apply(seed.Records(), rng)
	view.RenderChart(os.Stdout, records, nil, view.ChartOptions{})
	view.RenderTable(os.Stdout, records)
	return nil
}
