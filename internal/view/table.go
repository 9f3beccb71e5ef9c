// Package view renders the record list for the terminal: a table mirroring
// the dashboard's data table and an ASCII line chart mirroring its
// temperature chart.
package view

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/MrRedFox1223/wdash/internal/model"
)

// RenderTable writes the record list as a table with ID, city, date and
// temperature columns.
func RenderTable(w io.Writer, records []model.WeatherRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "City", "Date", "Temperature"})
	for _, r := range records {
		table.Append([]string{
			strconv.Itoa(r.ID),
			r.CityName,
			r.Date,
			FormatTemperature(r.Temperature),
		})
	}
	table.Render()
}

// FormatTemperature renders a temperature with the degree suffix, dropping
// trailing zeros so whole degrees print as "2°C".
func FormatTemperature(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64) + "°C"
}
