package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant-api/internal/storage"

	"github.com/jackc/pgx/v5"
)

// mapRepoError maps storage errors to service errors. notFound is returned
// (wrapped) when the row is missing.
func mapRepoError(err error, operation string, notFound error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", operation, notFound)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	slog.Error("unexpected repository error", slog.String("operation", operation), slog.Any("error", err))
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

var readOnlySnapshot = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// inTx runs fn inside a transaction and commits when fn succeeds. Any other
// path rolls back.
func inTx(ctx context.Context, db storage.TxBeginner, opts pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		slog.Error("error beginning transaction", slog.Any("error", err))
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		slog.Error("error committing transaction", slog.Any("error", err))
		return fmt.Errorf("internal error committing changes: %w", err)
	}
	return nil
}

func requireTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	return nil
}

func requireTitlePtr(title *string) error {
	if title == nil {
		return nil
	}
	return requireTitle(*title)
}
