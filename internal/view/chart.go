package view

import (
	"fmt"
	"io"
	"sort"

	"github.com/guptarohit/asciigraph"

	"github.com/MrRedFox1223/wdash/internal/model"
)

// ChartOptions controls chart rendering.
type ChartOptions struct {
	// Height in terminal rows; 0 uses a default.
	Height int
	// City limits the chart to one city's series.
	City string
}

const defaultChartHeight = 12

// RenderChart writes an ASCII line chart of temperatures, ordered by date
// then city. When highlight names a record present in the series, a caption
// line calls it out under the chart.
func RenderChart(w io.Writer, records []model.WeatherRecord, highlight *model.HighlightedPoint, opts ChartOptions) {
	series := make([]model.WeatherRecord, 0, len(records))
	for _, r := range records {
		if opts.City != "" && r.CityName != opts.City {
			continue
		}
		series = append(series, r)
	}
	if len(series) == 0 {
		fmt.Fprintln(w, "No records to chart.")
		return
	}

	sort.SliceStable(series, func(i, j int) bool {
		if series[i].Date != series[j].Date {
			return series[i].Date < series[j].Date
		}
		return series[i].CityName < series[j].CityName
	})

	data := make([]float64, len(series))
	for i, r := range series {
		data[i] = r.Temperature
	}

	height := opts.Height
	if height <= 0 {
		height = defaultChartHeight
	}

	caption := "Temperature (°C)"
	if opts.City != "" {
		caption = fmt.Sprintf("Temperature (°C) — %s", opts.City)
	}

	fmt.Fprintln(w, asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	))

	fmt.Fprintf(w, "%s – %s, %d points\n", series[0].Date, series[len(series)-1].Date, len(series))

	if highlight != nil {
		for _, r := range series {
			if r.ID == highlight.ID {
				fmt.Fprintf(w, "highlighted: %s %s (id %d): %s\n",
					highlight.CityName, highlight.Date, highlight.ID, FormatTemperature(r.Temperature))
				break
			}
		}
	}
}
