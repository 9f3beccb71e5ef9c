package model

// WeatherRecord is one per-city daily temperature measurement.
// The remote service is the source of truth and assigns IDs; the
// client-side list is a cache reconciled against it on every mutation.
type WeatherRecord struct {
	ID          int     `json:"id"`
	CityName    string  `json:"city_name" validate:"required"`
	Date        string  `json:"date" validate:"required,recorddate"`
	Temperature float64 `json:"temperature" validate:"gte=-100,lte=100"`
}

// RecordDraft is a record before the server has assigned an ID,
// as sent to the create endpoint.
type RecordDraft struct {
	CityName    string  `json:"city_name" validate:"required"`
	Date        string  `json:"date" validate:"required,recorddate"`
	Temperature float64 `json:"temperature" validate:"gte=-100,lte=100"`
}

// RoleAdmin is the only role allowed to perform write operations.
const RoleAdmin = "admin"

// Session identifies the logged-in user, as returned by the login endpoint
// and persisted between runs.
type Session struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// IsAdmin reports whether s is an authenticated administrator session.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// HighlightedPoint marks one record for visual emphasis on the chart.
// It is a transient selection, cleared independently of the record list.
type HighlightedPoint struct {
	ID       int
	CityName string
	Date     string
}
