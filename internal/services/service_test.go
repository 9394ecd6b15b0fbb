package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/modelboard/internal/api"
)

// newTestBackend spins up a stub backend and a client pointed at it.
func newTestBackend(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(api.Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
}

func writeSuccess(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
}

func writeFailure(w http.ResponseWriter, message string) {
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}
