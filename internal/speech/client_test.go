package speech

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rrens/weather-advisor/internal/config"
	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentType(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"mp3", "audio/mpeg"},
		{"MP3", "audio/mpeg"},
		{"wav", "audio/wav"},
		{"flac", "audio/flac"},
		{"m4a", "audio/mp4"},
		{"ogg", "audio/ogg"},
		{"opus", "audio/opus"},
		{"webm", "audio/webm"},
		{"aiff", "audio/wav"},
		{"", "audio/wav"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContentType(tt.format), "format %q", tt.format)
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.SpeechConfig{
		APIKey:  "dg-key",
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	})
}

func TestTranscribe(t *testing.T) {
	audio := []byte("fake-audio-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listen", r.URL.Path)
		assert.Equal(t, "nova-2", r.URL.Query().Get("model"))
		assert.Equal(t, "ja", r.URL.Query().Get("language"))
		assert.Equal(t, "true", r.URL.Query().Get("smart_format"))
		assert.Equal(t, "true", r.URL.Query().Get("punctuate"))
		assert.Equal(t, "Token dg-key", r.Header.Get("Authorization"))
		assert.Equal(t, "audio/mpeg", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, audio, body)
		w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"東京の天気は？"}]}]}}`))
	}))
	defer srv.Close()

	transcript, err := newTestClient(srv.URL).Transcribe(context.Background(), audio, "mp3", "ja")

	require.NoError(t, err)
	assert.Equal(t, "東京の天気は？", transcript)
}

func TestTranscribeNoSpeech(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":{"channels":[]}}`))
	}))
	defer srv.Close()

	transcript, err := newTestClient(srv.URL).Transcribe(context.Background(), []byte("silence"), "wav", "en")

	require.NoError(t, err)
	assert.Empty(t, transcript)
}

func TestTranscribeProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"err_code":"INVALID_AUTH"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Transcribe(context.Background(), []byte("x"), "wav", "en")

	var trErr *domain.TranscriptionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, http.StatusUnauthorized, trErr.StatusCode)
	assert.Contains(t, trErr.Message, "INVALID_AUTH")
}

func TestTranscribeTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).Transcribe(context.Background(), []byte("x"), "wav", "en")

	var trErr *domain.TranscriptionError
	require.ErrorAs(t, err, &trErr)
	assert.Zero(t, trErr.StatusCode)
}
