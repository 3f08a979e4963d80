package postgres

import (
	"context"
	"log/slog"

	"restaurant-api/internal/models"
	"restaurant-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const menuColumns = "id, title, description, created_at"

// MenuRepo implements the storage.MenuRepository interface using PostgreSQL.
type MenuRepo struct {
	db Querier
}

// NewMenuRepo creates a new MenuRepo.
func NewMenuRepo(db *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{db: db}
}

// WithTx creates a new MenuRepo bound to the transaction.
func (r *MenuRepo) WithTx(tx pgx.Tx) storage.MenuRepository {
	return &MenuRepo{db: tx}
}

// Compile-time check to ensure MenuRepo implements MenuRepository
var _ storage.MenuRepository = (*MenuRepo)(nil)

// List returns one page of menus in insertion order.
func (r *MenuRepo) List(ctx context.Context, page storage.Page) ([]models.Menu, error) {
	query := `SELECT ` + menuColumns + ` FROM menu ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, page.Limit, page.Skip)
	if err != nil {
		return nil, mapPgError(err, "query menus")
	}
	menus, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Menu])
	if err != nil {
		return nil, mapPgError(err, "scan menus")
	}
	if menus == nil {
		menus = []models.Menu{}
	}
	return menus, nil
}

// GetByID retrieves a menu by its ID.
func (r *MenuRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Menu, error) {
	rows, err := r.db.Query(ctx, `SELECT `+menuColumns+` FROM menu WHERE id = $1`, id)
	if err != nil {
		return nil, mapPgError(err, "query menu")
	}
	menu, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Menu])
	if err != nil {
		return nil, mapPgError(err, "scan menu")
	}
	return &menu, nil
}

// Create inserts a menu with a server-generated id.
func (r *MenuRepo) Create(ctx context.Context, title string, description *string) (*models.Menu, error) {
	query := `INSERT INTO menu (id, title, description) VALUES ($1, $2, $3) RETURNING ` + menuColumns
	rows, err := r.db.Query(ctx, query, uuid.New(), title, description)
	if err != nil {
		return nil, mapPgError(err, "insert menu")
	}
	menu, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Menu])
	if err != nil {
		return nil, mapPgError(err, "insert menu")
	}
	slog.Debug("menu created", slog.String("menu_id", menu.ID.String()))
	return &menu, nil
}

// Update applies the non-nil fields of upd. An empty update returns the current row.
func (r *MenuRepo) Update(ctx context.Context, id uuid.UUID, upd storage.MenuUpdate) (*models.Menu, error) {
	var set setBuilder
	set.addString("title", upd.Title)
	set.addString("description", upd.Description)
	if set.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := set.build("menu", menuColumns, map[string]any{"id": id}, []string{"id"})
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "update menu")
	}
	menu, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Menu])
	if err != nil {
		return nil, mapPgError(err, "update menu")
	}
	return &menu, nil
}

// Delete removes a menu; its submenus and their dishes go with it through
// ON DELETE CASCADE in the same statement.
func (r *MenuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM menu WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err, "delete menu")
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	slog.Debug("menu deleted", slog.String("menu_id", id.String()))
	return nil
}
