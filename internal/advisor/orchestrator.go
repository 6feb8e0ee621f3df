package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/Rrens/weather-advisor/internal/i18n"
	"github.com/Rrens/weather-advisor/internal/llm"
	"github.com/rs/zerolog/log"
)

// maxRounds bounds the model round loop; a conversation that still wants
// tools after this many rounds finalizes with maxRoundsMessage instead.
const maxRounds = 3

const maxRoundsMessage = "Error: Maximum iterations reached while processing your request."

// WeatherFetcher is the weather gateway surface the orchestrator dispatches
// tool calls against.
type WeatherFetcher interface {
	Fetch(ctx context.Context, location string) (*domain.WeatherSnapshot, error)
}

// Orchestrator drives the model conversation, invoking the weather gateway on
// the model's behalf, and returns final content plus whichever snapshot ended
// up being authoritative. It holds no state of its own between calls.
type Orchestrator struct {
	provider    llm.Provider
	weather     WeatherFetcher
	model       string
	temperature float64
	maxTokens   int
}

// NewOrchestrator creates a suggestion orchestrator
func NewOrchestrator(provider llm.Provider, weather WeatherFetcher, model string, temperature float64, maxTokens int) *Orchestrator {
	return &Orchestrator{
		provider:    provider,
		weather:     weather,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Result is the outcome of one Advise call. Snapshot may differ from the one
// passed in when the conversation fetched weather for another location.
type Result struct {
	Content  string
	Snapshot *domain.WeatherSnapshot
}

// Advise runs the suggestion conversation to completion. It never fails:
// provider errors degrade to a visible error message paired with the best
// snapshot known so far.
func (o *Orchestrator) Advise(ctx context.Context, snapshot *domain.WeatherSnapshot, userQuery, language string, allowToolCalls bool) Result {
	result, err := o.advise(ctx, snapshot, userQuery, language, allowToolCalls)
	if err != nil {
		log.Error().Err(err).Str("language", language).Msg("suggestion loop failed")
		result.Content = fmt.Sprintf("Error getting AI suggestions: %v", err)
	}
	return result
}

func (o *Orchestrator) advise(ctx context.Context, snapshot *domain.WeatherSnapshot, userQuery, language string, allowToolCalls bool) (Result, error) {
	loc := i18n.ForPrompt(language)
	messages := buildMessages(loc, snapshot, userQuery, false)

	final := snapshot
	toolsEnabled := allowToolCalls

	for round := 0; round < maxRounds; round++ {
		completion, err := o.completeRound(ctx, messages, &toolsEnabled)
		if err != nil {
			return Result{Snapshot: final}, &domain.SuggestionError{Err: err}
		}

		if completion.RequestsTools() && toolsEnabled {
			messages = append(messages, llm.Message{
				Role:      llm.RoleAssistant,
				Content:   completion.Content,
				ToolCalls: completion.ToolCalls,
			})
			messages = o.dispatchTools(ctx, messages, completion.ToolCalls, &final)
			continue
		}

		// Fallback: the model produced plain content without ever asking for
		// weather. Only on the first round, and only when there is a query to
		// mine, try extracting a location ourselves and restart the
		// conversation around its conditions. A response that carried tool
		// requests is not plain content, even when tools are disabled and the
		// requests go unserved.
		if round == 0 && userQuery != "" && !completion.RequestsTools() {
			if place := ExtractLocation(userQuery, language); place != "" {
				fetched, ferr := o.weather.Fetch(ctx, place)
				if ferr == nil {
					log.Debug().Str("location", place).Msg("extractor fallback fetched weather")
					final = fetched
					messages = buildMessages(loc, fetched, userQuery, true)
					continue
				}
				log.Warn().Err(ferr).Str("location", place).Msg("extractor fallback fetch failed")
			}
		}

		return Result{Content: completion.Content, Snapshot: final}, nil
	}

	return Result{Content: maxRoundsMessage, Snapshot: final}, nil
}

// completeRound submits the running message list for one model round. When
// the provider rejects the request because of the tool schema itself, the
// round is retried once without tools and tool calling is disabled for the
// remainder of the call.
func (o *Orchestrator) completeRound(ctx context.Context, messages []llm.Message, toolsEnabled *bool) (*llm.Completion, error) {
	req := llm.Request{
		Model:       o.model,
		Messages:    messages,
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
	}
	if *toolsEnabled {
		req.Tools = []llm.Tool{weatherTool}
		req.ToolChoice = "auto"
	}

	completion, err := o.provider.Complete(ctx, req)
	if err == nil {
		return completion, nil
	}

	if *toolsEnabled && errors.Is(err, llm.ErrToolsUnsupported) {
		log.Warn().Err(err).Msg("provider rejected tool schema, retrying without tools")
		*toolsEnabled = false
		req.Tools = nil
		req.ToolChoice = ""
		return o.provider.Complete(ctx, req)
	}

	return nil, err
}

// dispatchTools satisfies the model's tool requests in order. A failed
// sub-fetch is not fatal: it becomes an error-text tool message and the loop
// continues; a successful one replaces the authoritative snapshot.
func (o *Orchestrator) dispatchTools(ctx context.Context, messages []llm.Message, calls []llm.ToolCall, final **domain.WeatherSnapshot) []llm.Message {
	for _, call := range calls {
		if call.Function.Name != weatherToolName {
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Name:       call.Function.Name,
				Content:    fmt.Sprintf("Unknown tool: %s", call.Function.Name),
			})
			continue
		}

		var args struct {
			Location string `json:"location"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Name:       call.Function.Name,
				Content:    fmt.Sprintf("Invalid tool arguments: %v", err),
			})
			continue
		}

		fetched, err := o.weather.Fetch(ctx, args.Location)
		if err != nil {
			log.Warn().Err(err).Str("location", args.Location).Msg("tool weather fetch failed")
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Name:       call.Function.Name,
				Content:    fmt.Sprintf("Error fetching weather for %s: %v", args.Location, err),
			})
			continue
		}

		*final = fetched
		messages = append(messages, llm.Message{
			Role:       llm.RoleTool,
			ToolCallID: call.ID,
			Name:       call.Function.Name,
			Content:    weatherContext(fetched),
		})
	}
	return messages
}
