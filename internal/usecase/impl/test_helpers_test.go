package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"travelhub/internal/domain/repository"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runInTx hands the factory to the transactional callback and returns its error,
// the way the gorm transaction manager reports a rolled back transaction.
func runInTx(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}
