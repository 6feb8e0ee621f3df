package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Rrens/weather-advisor/internal/config"
	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/sony/gobreaker"
)

// Client fetches current conditions from WeatherAPI.com and normalizes them
// into domain snapshots. A single request per fetch: no retries, the caller
// decides whether a failure is worth retrying or surfacing.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a weather client with the provider's fixed request timeout.
func NewClient(cfg config.WeatherConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.weatherapi.com/v1"
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		circuit: cb,
	}
}

// Fetch retrieves current conditions for a location. Any transport failure,
// non-2xx status or malformed payload fails with *domain.WeatherFetchError.
func (c *Client) Fetch(ctx context.Context, location string) (*domain.WeatherSnapshot, error) {
	raw, err := c.fetchRaw(ctx, location)
	if err != nil {
		return nil, &domain.WeatherFetchError{Location: location, Err: err}
	}

	snapshot, err := Format(raw)
	if err != nil {
		return nil, &domain.WeatherFetchError{Location: location, Err: err}
	}
	return snapshot, nil
}

func (c *Client) fetchRaw(ctx context.Context, location string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather api key is not configured")
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", location)
	values.Set("aqi", "yes")

	u := fmt.Sprintf("%s/current.json?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	result, err := c.circuit.Execute(func() (any, error) {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, body)
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
