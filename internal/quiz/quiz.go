// Package quiz provides the quiz domain and the stores that hold quizzes.
package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrQuizNotFound is returned when no quiz matches the requested ID.
var ErrQuizNotFound = errors.New("quiz not found")

// Quiz represents a quiz.
type Quiz struct {
	ID           uuid.UUID
	Title        string
	Description  *string
	CreationDate time.Time
	CloseDate    *time.Time
	IsActive     bool
	OwnerID      uuid.UUID
}

// Fields are the client-supplied fields of a quiz. ID and CreationDate are assigned by the store.
type Fields struct {
	Title       string
	Description *string
	CloseDate   *time.Time
	IsActive    bool
	OwnerID     uuid.UUID
}

// Valid checks if the fields are valid. Any owner ID is accepted; owners are not checked.
func (f *Fields) Valid(_ context.Context) map[string]string {
	problems := make(map[string]string)
	if f.Title == "" {
		problems["title"] = "Title is required"
	}

	return problems
}

// Fields returns the client-supplied fields of the quiz.
func (q *Quiz) Fields() Fields {
	return Fields{
		Title:       q.Title,
		Description: q.Description,
		CloseDate:   q.CloseDate,
		IsActive:    q.IsActive,
		OwnerID:     q.OwnerID,
	}
}

// apply overwrites everything except ID and CreationDate.
func (q *Quiz) apply(f Fields) {
	q.Title = f.Title
	q.Description = cloneString(f.Description)
	q.CloseDate = cloneTime(f.CloseDate)
	q.IsActive = f.IsActive
	q.OwnerID = f.OwnerID
}

func (q *Quiz) clone() *Quiz {
	c := *q
	c.Description = cloneString(q.Description)
	c.CloseDate = cloneTime(q.CloseDate)

	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}

// Store represents a store for quizzes.
// This can be implemented for different backends.
type Store interface {
	// Ping reports whether the store is able to serve requests.
	Ping(ctx context.Context) error
	// ListQuizzes returns all quizzes in insertion order.
	ListQuizzes(ctx context.Context) ([]*Quiz, error)
	// GetQuiz returns a quiz by its ID.
	GetQuiz(ctx context.Context, id uuid.UUID) (*Quiz, error)
	// CreateQuiz creates a quiz with a fresh ID and creation date.
	CreateQuiz(ctx context.Context, f Fields) (*Quiz, error)
	// UpdateQuiz replaces all client-supplied fields of a quiz.
	UpdateQuiz(ctx context.Context, id uuid.UUID, f Fields) error
	// DeleteQuiz removes a quiz.
	DeleteQuiz(ctx context.Context, id uuid.UUID) error
	// Count returns the number of quizzes.
	Count(ctx context.Context) (int, error)
}
