package domain

import "encoding/json"

// WeatherSnapshot is one fetched-and-formatted weather observation. It is
// immutable: a newer fetch supersedes it wholesale, never merges into it.
type WeatherSnapshot struct {
	Location      string          `json:"location"`
	Temperature   string          `json:"temperature"`
	Condition     string          `json:"condition"`
	Icon          string          `json:"icon"`
	FeelsLike     string          `json:"feels_like"`
	Humidity      string          `json:"humidity"`
	Wind          string          `json:"wind"`
	Precipitation string          `json:"precipitation"`
	UVIndex       float64         `json:"uv_index"`
	Visibility    string          `json:"visibility"`
	LocalTime     string          `json:"local_time"`
	Raw           json.RawMessage `json:"raw_data"`
}

// SameConditions compares the stable subset of two snapshots. The raw provider
// payload carries a live local-clock field, so two fetches of the same place
// moments apart never compare byte-equal; location, condition and temperature
// are what "the weather changed" actually means here.
func (s *WeatherSnapshot) SameConditions(other *WeatherSnapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Location == other.Location &&
		s.Condition == other.Condition &&
		s.Temperature == other.Temperature
}
