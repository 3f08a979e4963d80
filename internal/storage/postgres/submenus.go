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

const submenuColumns = "id, title, description, menu_id, created_at"

// SubmenuRepo implements the storage.SubmenuRepository interface using PostgreSQL.
// Every lookup carries the owning menu id, so a submenu that lives under a
// different menu is reported as storage.ErrNotFound.
type SubmenuRepo struct {
	db Querier
}

// NewSubmenuRepo creates a new SubmenuRepo.
func NewSubmenuRepo(db *pgxpool.Pool) *SubmenuRepo {
	return &SubmenuRepo{db: db}
}

// WithTx creates a new SubmenuRepo bound to the transaction.
func (r *SubmenuRepo) WithTx(tx pgx.Tx) storage.SubmenuRepository {
	return &SubmenuRepo{db: tx}
}

var _ storage.SubmenuRepository = (*SubmenuRepo)(nil)

// ListByMenu returns every submenu of menuID. An unknown menu yields an empty slice.
func (r *SubmenuRepo) ListByMenu(ctx context.Context, menuID uuid.UUID) ([]models.Submenu, error) {
	query := `SELECT ` + submenuColumns + ` FROM submenu WHERE menu_id = $1 ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, query, menuID)
	if err != nil {
		return nil, mapPgError(err, "query submenus")
	}
	submenus, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Submenu])
	if err != nil {
		return nil, mapPgError(err, "scan submenus")
	}
	if submenus == nil {
		submenus = []models.Submenu{}
	}
	return submenus, nil
}

// GetByID retrieves a submenu owned by menuID.
func (r *SubmenuRepo) GetByID(ctx context.Context, menuID, id uuid.UUID) (*models.Submenu, error) {
	query := `SELECT ` + submenuColumns + ` FROM submenu WHERE id = $1 AND menu_id = $2`
	rows, err := r.db.Query(ctx, query, id, menuID)
	if err != nil {
		return nil, mapPgError(err, "query submenu")
	}
	submenu, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Submenu])
	if err != nil {
		return nil, mapPgError(err, "scan submenu")
	}
	return &submenu, nil
}

// Create inserts a submenu under menuID. The menu is not looked up first; a
// missing menu surfaces as storage.ErrForeignKey.
func (r *SubmenuRepo) Create(ctx context.Context, menuID uuid.UUID, title string, description *string) (*models.Submenu, error) {
	query := `INSERT INTO submenu (id, title, description, menu_id) VALUES ($1, $2, $3, $4) RETURNING ` + submenuColumns
	rows, err := r.db.Query(ctx, query, uuid.New(), title, description, menuID)
	if err != nil {
		return nil, mapPgError(err, "insert submenu")
	}
	submenu, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Submenu])
	if err != nil {
		return nil, mapPgError(err, "insert submenu")
	}
	slog.Debug("submenu created", slog.String("submenu_id", submenu.ID.String()), slog.String("menu_id", menuID.String()))
	return &submenu, nil
}

// Update applies the non-nil fields of upd to a submenu owned by menuID.
func (r *SubmenuRepo) Update(ctx context.Context, menuID, id uuid.UUID, upd storage.SubmenuUpdate) (*models.Submenu, error) {
	var set setBuilder
	set.addString("title", upd.Title)
	set.addString("description", upd.Description)
	if set.empty() {
		return r.GetByID(ctx, menuID, id)
	}

	query, args := set.build("submenu", submenuColumns,
		map[string]any{"id": id, "menu_id": menuID}, []string{"id", "menu_id"})
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "update submenu")
	}
	submenu, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Submenu])
	if err != nil {
		return nil, mapPgError(err, "update submenu")
	}
	return &submenu, nil
}

// Delete removes a submenu owned by menuID together with its dishes.
func (r *SubmenuRepo) Delete(ctx context.Context, menuID, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM submenu WHERE id = $1 AND menu_id = $2`, id, menuID)
	if err != nil {
		return mapPgError(err, "delete submenu")
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
