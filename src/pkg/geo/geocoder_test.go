package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastewise/local-app/src/pkg/log"
	"wastewise/local-app/src/pkg/model"
)

func newTestLogger(t *testing.T) *log.Logger {
	t.Helper()

	cfg := &model.Config{
		LogFolder:  filepath.Join(t.TempDir(), "logs"),
		CommandLog: "commands.log",
		ErrorLog:   "errors.log",
		InfoLog:    "info.log",
	}
	logger, err := log.NewLogger(cfg, log.LevelError)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	return logger
}

func TestReverseGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.URL.Query().Get("lat"))
		assert.NotEmpty(t, r.URL.Query().Get("lon"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name": "Jl. Sudirman, Jakarta, Indonesia"}`))
	}))
	defer server.Close()

	client := NewClient(&model.Config{GeocodeBaseURL: server.URL}, newTestLogger(t))

	address := client.ReverseGeocode(context.Background(), -6.2, 106.8)
	assert.Equal(t, "Jl. Sudirman, Jakarta, Indonesia", address)
}

func TestReverseGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(&model.Config{GeocodeBaseURL: server.URL}, newTestLogger(t))
	assert.Empty(t, client.ReverseGeocode(context.Background(), -6.2, 106.8))
}

func TestReverseGeocodeUnreachable(t *testing.T) {
	client := NewClient(&model.Config{GeocodeBaseURL: "http://127.0.0.1:1"}, newTestLogger(t))
	assert.Empty(t, client.ReverseGeocode(context.Background(), -6.2, 106.8))
}

func TestReverseGeocodeBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(&model.Config{GeocodeBaseURL: server.URL}, newTestLogger(t))
	assert.Empty(t, client.ReverseGeocode(context.Background(), -6.2, 106.8))
}
