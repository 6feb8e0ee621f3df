package advisor

import (
	"context"
	"fmt"

	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/Rrens/weather-advisor/internal/llm"
)

// scriptedProvider plays back one canned outcome per model round and records
// every request it sees, so tests can assert on the exact message lists the
// orchestrator submits.
type scriptedProvider struct {
	script   []scriptedRound
	requests []llm.Request
}

type scriptedRound struct {
	completion *llm.Completion
	err        error
}

func (p *scriptedProvider) Name() string         { return "scripted" }
func (p *scriptedProvider) DefaultModel() string { return "test-model" }
func (p *scriptedProvider) IsConfigured() bool   { return true }

func (p *scriptedProvider) Complete(_ context.Context, req llm.Request) (*llm.Completion, error) {
	p.requests = append(p.requests, req)
	if len(p.script) == 0 {
		return nil, fmt.Errorf("scripted provider exhausted after %d rounds", len(p.requests))
	}
	round := p.script[0]
	p.script = p.script[1:]
	return round.completion, round.err
}

// fakeFetcher resolves locations from a fixed map and records fetch order.
type fakeFetcher struct {
	snapshots map[string]*domain.WeatherSnapshot
	errs      map[string]error
	fetched   []string
}

func (f *fakeFetcher) Fetch(_ context.Context, location string) (*domain.WeatherSnapshot, error) {
	f.fetched = append(f.fetched, location)
	if err, ok := f.errs[location]; ok {
		return nil, err
	}
	if snap, ok := f.snapshots[location]; ok {
		return snap, nil
	}
	return nil, &domain.WeatherFetchError{Location: location, Err: fmt.Errorf("unknown location")}
}

func snapshotFor(city string) *domain.WeatherSnapshot {
	return &domain.WeatherSnapshot{
		Location:      city + ", Japan",
		Temperature:   "18°C / 64.4°F",
		Condition:     "Partly cloudy",
		FeelsLike:     "17°C",
		Humidity:      "60%",
		Wind:          "11 km/h SW",
		Precipitation: "0 mm",
		UVIndex:       4,
		Visibility:    "10 km",
		LocalTime:     "2024-05-01 14:00",
	}
}

func toolCall(id, location string) llm.ToolCall {
	return llm.ToolCall{
		ID:   id,
		Type: "function",
		Function: llm.FunctionCall{
			Name:      weatherToolName,
			Arguments: fmt.Sprintf(`{"location": %q}`, location),
		},
	}
}
