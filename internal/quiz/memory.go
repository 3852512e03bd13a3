package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a store for quizzes held in process memory.
// Quizzes are indexed by ID; insertion order is kept in a separate slice.
type MemoryStore struct {
	mu      sync.RWMutex
	quizzes map[uuid.UUID]*Quiz
	order   []uuid.UUID

	now    func() time.Time
	newID  func() uuid.UUID
	logger *slog.Logger
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithClock sets the function used to stamp creation dates.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// WithIDGenerator sets the function used to generate quiz IDs.
func WithIDGenerator(newID func() uuid.UUID) MemoryStoreOption {
	return func(s *MemoryStore) {
		s.newID = newID
	}
}

// NewMemoryStore creates a new, empty MemoryStore.
func NewMemoryStore(logger *slog.Logger, opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		quizzes: make(map[uuid.UUID]*Quiz),
		now:     time.Now,
		newID:   uuid.New,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ping returns the context error, if any. The memory store itself is always available.
func (s *MemoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to ping memory store: %w", err)
	}

	return nil
}

// Seed inserts the given quizzes as they are, keeping their creation dates.
// A quiz without an ID gets a fresh one.
func (s *MemoryStore) Seed(ctx context.Context, quizzes []*Quiz) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, qz := range quizzes {
		c := qz.clone()
		if c.ID == uuid.Nil {
			c.ID = s.uniqueID()
		}
		if _, ok := s.quizzes[c.ID]; ok {
			s.logger.WarnContext(ctx, "skipping seed quiz with duplicate id", slog.String("id", c.ID.String()))

			continue
		}
		s.insert(c)
	}
	s.logger.DebugContext(ctx, "seeded memory store", slog.Int("count", len(s.order)))
}

// ListQuizzes returns all quizzes in insertion order.
func (s *MemoryStore) ListQuizzes(_ context.Context) ([]*Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quizzes := make([]*Quiz, 0, len(s.order))
	for _, id := range s.order {
		quizzes = append(quizzes, s.quizzes[id].clone())
	}

	return quizzes, nil
}

// GetQuiz returns a quiz by its ID.
func (s *MemoryStore) GetQuiz(_ context.Context, id uuid.UUID) (*Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	qz, ok := s.quizzes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuizNotFound, id)
	}

	return qz.clone(), nil
}

// CreateQuiz creates a quiz and appends it to the end of the store.
func (s *MemoryStore) CreateQuiz(_ context.Context, f Fields) (*Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	qz := &Quiz{
		ID:           s.uniqueID(),
		CreationDate: s.now().UTC(),
	}
	qz.apply(f)
	s.insert(qz)

	return qz.clone(), nil
}

// UpdateQuiz replaces the client-supplied fields of a quiz. The quiz keeps its ID, creation date and position.
func (s *MemoryStore) UpdateQuiz(_ context.Context, id uuid.UUID, f Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	qz, ok := s.quizzes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrQuizNotFound, id)
	}
	qz.apply(f)

	return nil
}

// DeleteQuiz removes a quiz. The remaining quizzes keep their order.
func (s *MemoryStore) DeleteQuiz(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quizzes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrQuizNotFound, id)
	}
	delete(s.quizzes, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}

	return nil
}

// Count returns the number of quizzes.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order), nil
}

// insert must be called with the write lock held.
func (s *MemoryStore) insert(qz *Quiz) {
	s.quizzes[qz.ID] = qz
	s.order = append(s.order, qz.ID)
}

// uniqueID must be called with the write lock held.
func (s *MemoryStore) uniqueID() uuid.UUID {
	for {
		id := s.newID()
		if _, ok := s.quizzes[id]; !ok && id != uuid.Nil {
			return id
		}
	}
}
