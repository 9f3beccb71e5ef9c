package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MrRedFox1223/wdash/internal/model"
)

var (
	addCity string
	addDate string
	addTemp float64
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a weather record",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addCity, "city", "", "City name")
	addCmd.Flags().StringVar(&addDate, "date", "", "Date (YYYY-MM-DD)")
	addCmd.Flags().Float64Var(&addTemp, "temp", 0, "Temperature in °C")
	_ = addCmd.MarkFlagRequired("city")
	_ = addCmd.MarkFlagRequired("date")
	_ = addCmd.MarkFlagRequired("temp")
}

func runAdd(cmd *cobra.Command, args []string) error {
	env := mustEnv()
	if !env.sess.IsAdmin() {
		return errors.New("not logged in; run `wdash login` first")
	}

	draft := model.RecordDraft{CityName: addCity, Date: addDate, Temperature: addTemp}
	if err := env.recs.Add(cmd.Context(), draft); err != nil {
		return errOpFailed
	}
	return nil
}
