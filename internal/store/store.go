// Package store provides the application's data stores.
package store

import (
	"context"
	"log/slog"

	"github.com/starquake/quizcrud/internal/config"
	"github.com/starquake/quizcrud/internal/quiz"
)

// Stores is a collection of stores for the application.
type Stores struct {
	Quizzes quiz.Store
}

// New initializes a new Stores instance. The quiz store is seeded unless cfg.Seed is false.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) *Stores {
	quizStore := quiz.NewMemoryStore(logger)
	if cfg.Seed {
		quizStore.Seed(ctx, quiz.SeedQuizzes())
	}

	return &Stores{
		Quizzes: quizStore,
	}
}
