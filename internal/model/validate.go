package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for record dates. Fixed-width, so
// lexicographic comparison orders dates correctly.
const DateLayout = "2006-01-02"

// Accepted bounds for record fields, inclusive on both ends.
const (
	MinDate        = "1900-01-01"
	MaxDate        = "2100-12-31"
	MinTemperature = -100.0
	MaxTemperature = 100.0
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// recorddate: well-formed YYYY-MM-DD within [MinDate, MaxDate].
	// The round-trip check rejects strings time.Parse accepts loosely,
	// e.g. "2024-1-05".
	if err := v.RegisterValidation("recorddate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		t, err := time.Parse(DateLayout, s)
		if err != nil || t.Format(DateLayout) != s {
			return false
		}
		return s >= MinDate && s <= MaxDate
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateRecord checks a full record before it is sent anywhere.
// The returned error carries a user-facing message.
func ValidateRecord(r WeatherRecord) error {
	return validationMessage(validate.Struct(r))
}

// ValidateDraft checks a record draft before the create call.
func ValidateDraft(d RecordDraft) error {
	return validationMessage(validate.Struct(d))
}

// validationMessage converts validator output into a single human-readable
// message covering the first failed field.
func validationMessage(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", jsonField(fe.Field()))
	case "recorddate":
		return fmt.Errorf("date must be YYYY-MM-DD between %s and %s", MinDate, MaxDate)
	case "gte", "lte":
		return fmt.Errorf("temperature must be between %.0f and %.0f", MinTemperature, MaxTemperature)
	}
	return err
}

func jsonField(field string) string {
	switch field {
	case "CityName":
		return "city_name"
	case "Date":
		return "date"
	case "Temperature":
		return "temperature"
	}
	return field
}
