package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MrRedFox1223/wdash/internal/filter"
	"github.com/MrRedFox1223/wdash/internal/view"
)

var (
	chartFrom      string
	chartTo        string
	chartCity      string
	chartHighlight int
	chartHeight    int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Plot temperatures as an ASCII line chart",
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartFrom, "from", "", "Range start (YYYY-MM-DD)")
	chartCmd.Flags().StringVar(&chartTo, "to", "", "Range end (YYYY-MM-DD)")
	chartCmd.Flags().StringVar(&chartCity, "city", "", "Limit the chart to one city")
	chartCmd.Flags().IntVar(&chartHighlight, "highlight", 0, "Record ID to emphasise")
	chartCmd.Flags().IntVar(&chartHeight, "height", 0, "Chart height in rows")
}

func runChart(cmd *cobra.Command, args []string) error {
	rng, err := filter.ParseRange(chartFrom, chartTo)
	if err != nil {
		return err
	}

	env := mustEnv()
	if err := env.recs.Load(cmd.Context()); err != nil {
		return errOpFailed
	}

	if chartHighlight > 0 {
		env.recs.ToggleHighlight(chartHighlight)
	}

	view.RenderChart(os.Stdout, filter.Apply(env.recs.Records(), rng), env.recs.Highlight(), view.ChartOptions{
		Height: chartHeight,
		City:   chartCity,
	})
	return nil
}
