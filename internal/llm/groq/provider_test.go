package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rrens/weather-advisor/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(baseURL string) *Provider {
	p := NewProvider("gsk-test", "")
	p.baseURL = baseURL
	return p
}

func TestProviderIdentity(t *testing.T) {
	p := NewProvider("gsk-test", "")
	assert.Equal(t, "groq", p.Name())
	assert.Equal(t, "llama-3.3-70b-versatile", p.DefaultModel())
	assert.True(t, p.IsConfigured())

	assert.False(t, NewProvider("", "").IsConfigured())
	assert.Equal(t, "mixtral-8x7b", NewProvider("k", "mixtral-8x7b").DefaultModel())
}

func TestCompleteContent(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"choices":[{"message":{"content":"Wear a jacket."}}]}`))
	}))
	defer srv.Close()

	completion, err := newTestProvider(srv.URL).Complete(context.Background(), llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
		Temperature: 0.7,
		MaxTokens:   1000,
	})

	require.NoError(t, err)
	assert.Equal(t, "Wear a jacket.", completion.Content)
	assert.False(t, completion.RequestsTools())
	assert.Equal(t, "llama-3.3-70b-versatile", got.Model, "empty model falls back to default")
	assert.Equal(t, 0.7, got.Temperature)
	assert.Equal(t, 1000, got.MaxTokens)
}

func TestCompleteToolCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"","tool_calls":[
			{"id":"call_1","type":"function","function":{"name":"get_weather","arguments":"{\"location\": \"Tokyo\"}"}}
		]}}]}`))
	}))
	defer srv.Close()

	completion, err := newTestProvider(srv.URL).Complete(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "weather in Tokyo?"}},
	})

	require.NoError(t, err)
	require.True(t, completion.RequestsTools())
	require.Len(t, completion.ToolCalls, 1)
	assert.Equal(t, "call_1", completion.ToolCalls[0].ID)
	assert.Equal(t, "get_weather", completion.ToolCalls[0].Function.Name)
	assert.JSONEq(t, `{"location": "Tokyo"}`, completion.ToolCalls[0].Function.Arguments)
}

func TestCompleteToolSchemaRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"tool use is not supported for this model"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).Complete(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
		Tools:    []llm.Tool{{Type: "function"}},
	})

	assert.ErrorIs(t, err, llm.ErrToolsUnsupported)
}

func TestCompleteToollessErrorIsNotRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"tool use is not supported for this model"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).Complete(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, llm.ErrToolsUnsupported)
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).Complete(context.Background(), llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
	})

	assert.Error(t, err)
}

func TestRejectsTools(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   bool
	}{
		{"tool complaint", 400, `{"error":"tools not supported"}`, true},
		{"function complaint", 422, `{"error":"unknown field: functions"}`, true},
		{"unrelated 400", 400, `{"error":"model not found"}`, false},
		{"server error mentioning tools", 500, `{"error":"tool backend down"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rejectsTools(tt.status, tt.body))
		})
	}
}
