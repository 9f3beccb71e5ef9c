// Package seed regenerates the dashboard's built-in sample dataset:
// ten cities, seven consecutive days each, with a small sinusoidal
// temperature variation around the city's base value.
package seed

import (
	"math"
	"time"

	"github.com/MrRedFox1223/wdash/internal/model"
)

var cities = []string{
	"New York", "London", "Tokyo", "Paris", "Sydney",
	"Berlin", "Moscow", "Dubai", "Toronto", "Barcelona",
}

var baseTemperatures = []float64{5, 8, 12, 6, 25, 3, -5, 22, -2, 15}

const seedDays = 7

var seedStart = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

// Records returns the sample dataset with IDs assigned sequentially from 1.
func Records() []model.WeatherRecord {
	records := make([]model.WeatherRecord, 0, len(cities)*seedDays)
	id := 1
	for i, city := range cities {
		base := baseTemperatures[i]
		for day := 0; day < seedDays; day++ {
			date := seedStart.AddDate(0, 0, day).Format(model.DateLayout)
			// ±3°C variation over the week.
			temperature := math.Round(base + math.Sin(float64(day)*0.8)*3)
			records = append(records, model.WeatherRecord{
				ID:          id,
				CityName:    city,
				Date:        date,
				Temperature: temperature,
			})
			id++
		}
	}
	return records
}
