package server

import (
	"log/slog"
	"net/http"

	"github.com/starquake/quizcrud/internal/api"
	"github.com/starquake/quizcrud/internal/config"
	"github.com/starquake/quizcrud/internal/docs"
	"github.com/starquake/quizcrud/internal/health"
	"github.com/starquake/quizcrud/internal/httputil"
	"github.com/starquake/quizcrud/internal/store"
)

// AddRoutes adds all routes to the mux.
func AddRoutes(
	mux *http.ServeMux,
	logger *slog.Logger,
	cfg *config.Config,
	stores *store.Stores,
) {
	mux.Handle("GET /healthz", health.HandleHealthz(logger, stores))
	mux.Handle("GET /openapi.json", docs.Handler(cfg))

	api.AddRoutes(mux, logger, stores.Quizzes)

	mux.Handle("/", handleNotFound(logger))
}

func handleNotFound(logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteDetail(w, logger, r, http.StatusNotFound, "Not Found")
	})
}
