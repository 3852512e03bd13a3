// Package health provides health check endpoints.
package health

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/starquake/quizcrud/internal/httputil"
	"github.com/starquake/quizcrud/internal/logging"
	"github.com/starquake/quizcrud/internal/store"
)

// HandleHealthz returns a handler that serves health check responses.
func HandleHealthz(logger *slog.Logger, stores *store.Stores) http.Handler {
	type healthStatus struct {
		Status  string            `json:"status"`
		Checks  map[string]string `json:"checks,omitempty"`
		Quizzes int               `json:"quizzes"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		httpStatus := http.StatusOK
		health := healthStatus{
			Status: "ok",
			Checks: make(map[string]string),
		}

		if err := stores.Quizzes.Ping(ctx); err != nil {
			health.Status = "degraded"
			health.Checks["store"] = fmt.Sprintf("unhealthy: %v", err)
			httpStatus = http.StatusServiceUnavailable
		} else {
			health.Checks["store"] = "healthy"
			n, err := stores.Quizzes.Count(ctx)
			if err != nil {
				logger.ErrorContext(ctx, "error counting quizzes", logging.ErrAttr(err))
			}
			health.Quizzes = n
		}

		logger.DebugContext(ctx, "health check performed", slog.String("status", health.Status))
		if err := httputil.EncodeJSON(w, httpStatus, health); err != nil {
			logger.ErrorContext(ctx, "error encoding health status", logging.ErrAttr(err))
		}
	})
}
