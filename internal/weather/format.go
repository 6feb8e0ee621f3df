package weather

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Rrens/weather-advisor/internal/domain"
)

// payload mirrors the provider's current-conditions document. Optional fields
// simply decode to zero values when absent.
type payload struct {
	Location struct {
		Name      string `json:"name"`
		Country   string `json:"country"`
		Localtime string `json:"localtime"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		TempF     float64 `json:"temp_f"`
		Condition struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
		} `json:"condition"`
		FeelslikeC float64 `json:"feelslike_c"`
		Humidity   float64 `json:"humidity"`
		WindKph    float64 `json:"wind_kph"`
		WindDir    string  `json:"wind_dir"`
		PrecipMm   float64 `json:"precip_mm"`
		UV         float64 `json:"uv"`
		VisKm      float64 `json:"vis_km"`
	} `json:"current"`
}

// Format is a pure transformation of a raw provider document into a snapshot.
// The verbatim payload is retained on the snapshot for prompt construction.
func Format(raw []byte) (*domain.WeatherSnapshot, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("malformed provider payload: %w", err)
	}

	return &domain.WeatherSnapshot{
		Location:      fmt.Sprintf("%s, %s", p.Location.Name, p.Location.Country),
		Temperature:   fmt.Sprintf("%s°C / %s°F", num(p.Current.TempC), num(p.Current.TempF)),
		Condition:     p.Current.Condition.Text,
		Icon:          p.Current.Condition.Icon,
		FeelsLike:     fmt.Sprintf("%s°C", num(p.Current.FeelslikeC)),
		Humidity:      fmt.Sprintf("%s%%", num(p.Current.Humidity)),
		Wind:          fmt.Sprintf("%s km/h %s", num(p.Current.WindKph), p.Current.WindDir),
		Precipitation: fmt.Sprintf("%s mm", num(p.Current.PrecipMm)),
		UVIndex:       p.Current.UV,
		Visibility:    fmt.Sprintf("%s km", num(p.Current.VisKm)),
		LocalTime:     p.Location.Localtime,
		Raw:           json.RawMessage(raw),
	}, nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
