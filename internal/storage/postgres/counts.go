package postgres

import (
	"context"

	"restaurant-api/internal/models"
	"restaurant-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CountRepo computes submenu and dish counts with COUNT(*) over the live
// tables. Nothing is materialized, so the numbers always reflect the latest
// committed state visible to the caller's snapshot.
type CountRepo struct {
	db Querier
}

// NewCountRepo creates a new CountRepo.
func NewCountRepo(db *pgxpool.Pool) *CountRepo {
	return &CountRepo{db: db}
}

// WithTx creates a new CountRepo bound to the transaction.
func (r *CountRepo) WithTx(tx pgx.Tx) storage.CountRepository {
	return &CountRepo{db: tx}
}

var _ storage.CountRepository = (*CountRepo)(nil)

// CountMenu counts the submenus of menuID and every dish under those submenus.
func (r *CountRepo) CountMenu(ctx context.Context, menuID uuid.UUID) (models.MenuCounts, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM submenu WHERE menu_id = $1),
			(SELECT COUNT(*) FROM dish d JOIN submenu s ON s.id = d.submenu_id WHERE s.menu_id = $1)`

	var counts models.MenuCounts
	if err := r.db.QueryRow(ctx, query, menuID).Scan(&counts.Submenus, &counts.Dishes); err != nil {
		return models.MenuCounts{}, mapPgError(err, "count menu children")
	}
	return counts, nil
}

// CountSubmenuDishes counts the dishes of submenuID.
func (r *CountRepo) CountSubmenuDishes(ctx context.Context, submenuID uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM dish WHERE submenu_id = $1`, submenuID).Scan(&n); err != nil {
		return 0, mapPgError(err, "count submenu dishes")
	}
	return n, nil
}
