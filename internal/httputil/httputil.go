// Package httputil provides utility functions for HTTP servers.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/starquake/quizcrud/internal/logging"
)

var (
	// ErrEmptyBody is returned by DecodeJSON when the request has no body.
	ErrEmptyBody = errors.New("request body is empty")
	// ErrTrailingData is returned by DecodeJSON when the body holds more than one JSON value.
	ErrTrailingData = errors.New("unexpected data after JSON value")
)

// ValidationProblem describes one rejected part of a request, in the shape FastAPI clients expect.
type ValidationProblem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func jsonInvalid() ValidationProblem {
	return ValidationProblem{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}
}

type detailResponse struct {
	Detail any `json:"detail"`
}

// UUIDFromString parses a UUID from the given string.
func UUIDFromString(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error parsing %q: %w", s, err)
	}

	return id, nil
}

// ParseUUIDFromPath parses a UUID from the named path value.
// It returns the parsed ID and true if the parsing was successful.
// It writes a 422 response and returns false if the path value is not a UUID.
func ParseUUIDFromPath(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	id, err := UUIDFromString(r.PathValue(name))
	if err != nil {
		logger.DebugContext(r.Context(), "error parsing "+name, logging.ErrAttr(err))
		WriteValidationError(w, logger, r, []ValidationProblem{{
			Loc:  []string{"path", name},
			Msg:  "Input should be a valid UUID",
			Type: "uuid_parsing",
		}})

		return uuid.Nil, false
	}

	return id, true
}

// EncodeJSON encodes v to JSON, sets status, and writes it to w.
func EncodeJSON[T any](w http.ResponseWriter, statusCode int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	return nil
}

// DecodeJSON decodes a single JSON value from r.
// The body must hold nothing but that value and whitespace.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, ErrEmptyBody
		}

		return v, fmt.Errorf("failed to decode json: %w", err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return v, fmt.Errorf("%w: %w", ErrTrailingData, err)
		}

		return v, ErrTrailingData
	}

	return v, nil
}

// WriteDetail writes {"detail": msg} with the given status.
func WriteDetail(w http.ResponseWriter, logger *slog.Logger, r *http.Request, statusCode int, msg string) {
	if err := EncodeJSON(w, statusCode, detailResponse{Detail: msg}); err != nil {
		logger.ErrorContext(r.Context(), "error encoding detail response", logging.ErrAttr(err))
	}
}

// WriteValidationError writes a 422 response listing the problems.
func WriteValidationError(w http.ResponseWriter, logger *slog.Logger, r *http.Request, problems []ValidationProblem) {
	if err := EncodeJSON(w, http.StatusUnprocessableEntity, detailResponse{Detail: problems}); err != nil {
		logger.ErrorContext(r.Context(), "error encoding validation response", logging.ErrAttr(err))
	}
}

// DecodeProblem turns a DecodeJSON error into a validation problem.
func DecodeProblem(err error) ValidationProblem {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, ErrEmptyBody):
		return ValidationProblem{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}
	case errors.Is(err, ErrTrailingData), errors.Is(err, io.ErrUnexpectedEOF):
		return jsonInvalid()
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}

		return ValidationProblem{Loc: loc, Msg: "Input should be a valid " + typeErr.Type.String(), Type: "type_error"}
	case errors.As(err, &syntaxErr):
		return jsonInvalid()
	default:
		return ValidationProblem{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}
	}
}
