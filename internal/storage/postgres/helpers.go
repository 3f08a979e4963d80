package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool and pgx.Tx the repositories use, so a
// repository can run against either.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// mapPgError translates driver errors into storage errors.
func mapPgError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %s: %w", operation, pgErr.ConstraintName, storage.ErrForeignKey)
		case pgUniqueViolation:
			return fmt.Errorf("%s: %s: %w", operation, pgErr.ConstraintName, storage.ErrConflict)
		}
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// setBuilder accumulates the SET clause of a partial UPDATE.
type setBuilder struct {
	clauses []string
	args    []any
}

func (b *setBuilder) addString(column string, value *string) {
	if value == nil {
		return
	}
	b.args = append(b.args, *value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *setBuilder) empty() bool { return len(b.clauses) == 0 }

// build renders "UPDATE table SET ... WHERE cond1 = $n AND ... RETURNING cols".
func (b *setBuilder) build(table, returning string, where map[string]any, order []string) (string, []any) {
	args := append([]any{}, b.args...)
	conds := make([]string, 0, len(order))
	for _, column := range order {
		args = append(args, where[column])
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s RETURNING %s",
		table, strings.Join(b.clauses, ", "), strings.Join(conds, " AND "), returning)
	return query, args
}
