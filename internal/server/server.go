// Package server contains everything related to the Server
package server

import (
	"log/slog"
	"net/http"

	"github.com/starquake/quizcrud/internal/config"
	"github.com/starquake/quizcrud/internal/store"
)

// NewServer creates a new server.
func NewServer(logger *slog.Logger, cfg *config.Config, stores *store.Stores) http.Handler {
	mux := http.NewServeMux()
	AddRoutes(mux, logger, cfg, stores)
	var handler http.Handler = mux
	handler = accessLog(logger, handler)
	handler = requestID(handler)

	return handler
}
