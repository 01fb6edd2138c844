// Package transport wires the MCP server to HTTP: routing, health, and
// bearer-token profile resolution.
package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the MCP handler and the health endpoint.
func NewRouter(mcpHandler http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Handle("/mcp", mcpHandler)
	r.Handle("/mcp/*", mcpHandler)
	r.Get("/health", handleHealth)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
