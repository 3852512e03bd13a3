// Package api provides the JSON HTTP handlers for quizzes.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/starquake/quizcrud/internal/httputil"
	"github.com/starquake/quizcrud/internal/logging"
	"github.com/starquake/quizcrud/internal/quiz"
)

const (
	msgQuizNotFound = "Quiz not found"
	msgQuizUpdated  = "Quiz updated"
	msgQuizDeleted  = "Quiz deleted"
	msgInternal     = "Internal Server Error"
	msgNotAllowed   = "Method Not Allowed"
)

// HandleQuizList returns all quizzes in insertion order.
func HandleQuizList(logger *slog.Logger, quizStore quiz.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		quizzes, err := quizStore.ListQuizzes(r.Context())
		if err != nil {
			logger.ErrorContext(r.Context(), "error retrieving quizzes from store", logging.ErrAttr(err))
			httputil.WriteDetail(w, logger, r, http.StatusInternalServerError, msgInternal)

			return
		}

		res := make([]quizResponse, 0, len(quizzes))
		for _, qz := range quizzes {
			res = append(res, quizResponseFromQuiz(qz))
		}

		if err = httputil.EncodeJSON(w, http.StatusOK, res); err != nil {
			logger.ErrorContext(r.Context(), "error encoding quiz list", logging.ErrAttr(err))

			return
		}
	})
}

// HandleQuizGet returns a single quiz.
// Returns 404 if the quiz does not exist and 422 if the ID is not a UUID.
func HandleQuizGet(logger *slog.Logger, quizStore quiz.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httputil.ParseUUIDFromPath(w, r, logger, "quiz_id")
		if !ok {
			return
		}

		qz, err := quizStore.GetQuiz(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, logger, err)

			return
		}

		if err = httputil.EncodeJSON(w, http.StatusOK, quizResponseFromQuiz(qz)); err != nil {
			logger.ErrorContext(r.Context(), "error encoding quiz", logging.ErrAttr(err))

			return
		}
	})
}

// HandleQuizCreate creates a quiz from a QuizCreate body and returns it with its assigned ID and creation date.
// Returns 422 if the body is invalid.
func HandleQuizCreate(logger *slog.Logger, quizStore quiz.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fields, problems := decodeQuizFields(r)
		if len(problems) > 0 {
			httputil.WriteValidationError(w, logger, r, problems)

			return
		}

		qz, err := quizStore.CreateQuiz(r.Context(), fields)
		if err != nil {
			writeStoreError(w, r, logger, err)

			return
		}
		logger.InfoContext(r.Context(), "quiz created", slog.String("id", qz.ID.String()))

		if err = httputil.EncodeJSON(w, http.StatusOK, quizResponseFromQuiz(qz)); err != nil {
			logger.ErrorContext(r.Context(), "error encoding quiz", logging.ErrAttr(err))

			return
		}
	})
}

// HandleQuizUpdate replaces the client-supplied fields of a quiz.
// Returns 404 if the quiz does not exist and 422 if the ID or body is invalid.
func HandleQuizUpdate(logger *slog.Logger, quizStore quiz.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httputil.ParseUUIDFromPath(w, r, logger, "quiz_id")
		if !ok {
			return
		}

		fields, problems := decodeQuizFields(r)
		if len(problems) > 0 {
			httputil.WriteValidationError(w, logger, r, problems)

			return
		}

		if err := quizStore.UpdateQuiz(r.Context(), id, fields); err != nil {
			writeStoreError(w, r, logger, err)

			return
		}
		logger.InfoContext(r.Context(), "quiz updated", slog.String("id", id.String()))

		if err := httputil.EncodeJSON(w, http.StatusOK, detailResponse{Detail: msgQuizUpdated}); err != nil {
			logger.ErrorContext(r.Context(), "error encoding update response", logging.ErrAttr(err))

			return
		}
	})
}

// HandleQuizDelete removes a quiz.
// Returns 404 if the quiz does not exist and 422 if the ID is not a UUID.
func HandleQuizDelete(logger *slog.Logger, quizStore quiz.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httputil.ParseUUIDFromPath(w, r, logger, "quiz_id")
		if !ok {
			return
		}

		if err := quizStore.DeleteQuiz(r.Context(), id); err != nil {
			writeStoreError(w, r, logger, err)

			return
		}
		logger.InfoContext(r.Context(), "quiz deleted", slog.String("id", id.String()))

		if err := httputil.EncodeJSON(w, http.StatusOK, detailResponse{Detail: msgQuizDeleted}); err != nil {
			logger.ErrorContext(r.Context(), "error encoding delete response", logging.ErrAttr(err))

			return
		}
	})
}

// HandleMethodNotAllowed answers 405 and lists the allowed methods.
func HandleMethodNotAllowed(logger *slog.Logger, allow string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		httputil.WriteDetail(w, logger, r, http.StatusMethodNotAllowed, msgNotAllowed)
	})
}

func writeStoreError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if errors.Is(err, quiz.ErrQuizNotFound) {
		httputil.WriteDetail(w, logger, r, http.StatusNotFound, msgQuizNotFound)

		return
	}
	logger.ErrorContext(r.Context(), "error accessing quiz store", logging.ErrAttr(err))
	httputil.WriteDetail(w, logger, r, http.StatusInternalServerError, msgInternal)
}
