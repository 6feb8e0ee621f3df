package advisor

import (
	"fmt"

	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/Rrens/weather-advisor/internal/i18n"
	"github.com/Rrens/weather-advisor/internal/llm"
)

const weatherToolName = "get_weather"

// weatherTool is the single capability offered to the model.
var weatherTool = llm.Tool{
	Type: "function",
	Function: llm.Function{
		Name:        weatherToolName,
		Description: "Get current weather information for a specific location. Use this tool when the user mentions a location (city name) in their query, even if it's different from the current session location.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{
					"type":        "string",
					"description": "The city name or location to get weather for (e.g., 'Tokyo', 'New York', 'London')",
				},
			},
			"required": []string{"location"},
		},
	},
}

// weatherContext renders a snapshot as the human-readable block that prefixes
// user prompts and fills tool-result messages. Empty for a nil snapshot.
func weatherContext(snapshot *domain.WeatherSnapshot) string {
	if snapshot == nil {
		return ""
	}
	return fmt.Sprintf(`
Current weather in %s:
- Temperature: %s (feels like %s)
- Condition: %s
- Humidity: %s
- Wind: %s
- UV Index: %s
- Precipitation: %s
- Local time: %s
`,
		snapshot.Location,
		snapshot.Temperature,
		snapshot.FeelsLike,
		snapshot.Condition,
		snapshot.Humidity,
		snapshot.Wind,
		fmt.Sprintf("%g", snapshot.UVIndex),
		snapshot.Precipitation,
		snapshot.LocalTime,
	)
}

// buildMessages constructs a fresh two-message exchange. The fallback flag
// selects the prompt variant without the tool hint, used after the extractor
// rebuilt the conversation around a newly fetched snapshot.
func buildMessages(loc *i18n.Locale, snapshot *domain.WeatherSnapshot, userQuery string, fallback bool) []llm.Message {
	context := weatherContext(snapshot)

	var prompt string
	switch {
	case userQuery == "":
		prompt = fmt.Sprintf(loc.DailyPrompt, context)
	case fallback:
		prompt = fmt.Sprintf(loc.FallbackPrompt, context, userQuery)
	default:
		prompt = fmt.Sprintf(loc.QueryPrompt, context, userQuery)
	}

	return []llm.Message{
		{Role: llm.RoleSystem, Content: loc.SystemPrompt},
		{Role: llm.RoleUser, Content: prompt},
	}
}
