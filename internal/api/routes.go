package api

import (
	"log/slog"
	"net/http"

	"github.com/starquake/quizcrud/internal/quiz"
)

// AddRoutes registers the quiz endpoints on mux.
func AddRoutes(
	mux *http.ServeMux,
	logger *slog.Logger,
	quizStore quiz.Store,
) {
	mux.Handle("GET /quiz", HandleQuizList(logger, quizStore))
	mux.Handle("POST /quiz", HandleQuizCreate(logger, quizStore))
	mux.Handle("GET /quiz/{quiz_id}", HandleQuizGet(logger, quizStore))
	mux.Handle("PUT /quiz/{quiz_id}", HandleQuizUpdate(logger, quizStore))
	mux.Handle("DELETE /quiz/{quiz_id}", HandleQuizDelete(logger, quizStore))

	// Any other method on a known path.
	mux.Handle("/quiz", HandleMethodNotAllowed(logger, "GET, HEAD, POST"))
	mux.Handle("/quiz/{quiz_id}", HandleMethodNotAllowed(logger, "GET, HEAD, PUT, DELETE"))
}
