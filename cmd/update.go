package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrRedFox1223/wdash/internal/model"
)

var (
	updateCity string
	updateDate string
	updateTemp float64
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a weather record",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateCity, "city", "", "City name")
	updateCmd.Flags().StringVar(&updateDate, "date", "", "Date (YYYY-MM-DD)")
	updateCmd.Flags().Float64Var(&updateTemp, "temp", 0, "Temperature in °C")
	_ = updateCmd.MarkFlagRequired("city")
	_ = updateCmd.MarkFlagRequired("date")
	_ = updateCmd.MarkFlagRequired("temp")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	env := mustEnv()
	if !env.sess.IsAdmin() {
		return errors.New("not logged in; run `wdash login` first")
	}

	// Load first so the rollback path has the current record to capture.
	if err := env.recs.Load(cmd.Context()); err != nil {
		return errOpFailed
	}
	if _, ok := env.recs.Find(id); !ok {
		return fmt.Errorf("no record with id %d", id)
	}

	rec := model.WeatherRecord{ID: id, CityName: updateCity, Date: updateDate, Temperature: updateTemp}
	if err := env.recs.Update(cmd.Context(), rec); err != nil {
		return errOpFailed
	}
	return nil
}
