package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Rrens/weather-advisor/internal/config"
	"github.com/Rrens/weather-advisor/internal/domain"
)

// contentTypes maps declared audio container formats to the provider's
// required content-type. Anything unrecognized falls back to wav.
var contentTypes = map[string]string{
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"flac": "audio/flac",
	"m4a":  "audio/mp4",
	"ogg":  "audio/ogg",
	"opus": "audio/opus",
	"webm": "audio/webm",
}

const defaultContentType = "audio/wav"

// Client transcribes audio through Deepgram's pre-recorded listen endpoint.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewClient creates a speech client
func NewClient(cfg config.SpeechConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.deepgram.com/v1"
	}
	model := cfg.Model
	if model == "" {
		model = "nova-2"
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// ContentType resolves a declared audio format to the provider content-type.
func ContentType(format string) string {
	if ct, ok := contentTypes[strings.ToLower(format)]; ok {
		return ct
	}
	return defaultContentType
}

// Transcribe sends audio bytes for synchronous transcription. An empty
// transcript on a successful response means the provider detected no speech;
// that is a valid outcome, returned as ("", nil), not an error. Any non-2xx
// status fails with *domain.TranscriptionError.
func (c *Client) Transcribe(ctx context.Context, audio []byte, format, language string) (string, error) {
	params := url.Values{}
	params.Set("model", c.model)
	params.Set("language", language)
	params.Set("smart_format", "true")
	params.Set("punctuate", "true")

	u := fmt.Sprintf("%s/listen?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", ContentType(format))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &domain.TranscriptionError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &domain.TranscriptionError{
			StatusCode: resp.StatusCode,
			Message:    string(detail),
		}
	}

	var result struct {
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string `json:"transcript"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &domain.TranscriptionError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if len(result.Results.Channels) == 0 || len(result.Results.Channels[0].Alternatives) == 0 {
		return "", nil
	}
	return result.Results.Channels[0].Alternatives[0].Transcript, nil
}
