package postgres

import (
	"context"

	"restaurant-api/internal/models"
	"restaurant-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dishColumns = "id, title, description, price, submenu_id, created_at"

// DishRepo implements the storage.DishRepository interface using PostgreSQL.
type DishRepo struct {
	db Querier
}

// NewDishRepo creates a new DishRepo.
func NewDishRepo(db *pgxpool.Pool) *DishRepo {
	return &DishRepo{db: db}
}

// WithTx creates a new DishRepo bound to the transaction.
func (r *DishRepo) WithTx(tx pgx.Tx) storage.DishRepository {
	return &DishRepo{db: tx}
}

var _ storage.DishRepository = (*DishRepo)(nil)

// ListBySubmenu returns one page of the dishes of submenuID.
func (r *DishRepo) ListBySubmenu(ctx context.Context, submenuID uuid.UUID, page storage.Page) ([]models.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dish WHERE submenu_id = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, submenuID, page.Limit, page.Skip)
	if err != nil {
		return nil, mapPgError(err, "query dishes")
	}
	dishes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Dish])
	if err != nil {
		return nil, mapPgError(err, "scan dishes")
	}
	if dishes == nil {
		dishes = []models.Dish{}
	}
	return dishes, nil
}

// GetByID retrieves a dish by id regardless of its submenu.
func (r *DishRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	rows, err := r.db.Query(ctx, `SELECT `+dishColumns+` FROM dish WHERE id = $1`, id)
	if err != nil {
		return nil, mapPgError(err, "query dish")
	}
	dish, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Dish])
	if err != nil {
		return nil, mapPgError(err, "scan dish")
	}
	return &dish, nil
}

// Create inserts a dish under submenuID. Price is stored as submitted.
func (r *DishRepo) Create(ctx context.Context, submenuID uuid.UUID, title string, description *string, price string) (*models.Dish, error) {
	query := `INSERT INTO dish (id, title, description, price, submenu_id) VALUES ($1, $2, $3, $4, $5) RETURNING ` + dishColumns
	rows, err := r.db.Query(ctx, query, uuid.New(), title, description, price, submenuID)
	if err != nil {
		return nil, mapPgError(err, "insert dish")
	}
	dish, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Dish])
	if err != nil {
		return nil, mapPgError(err, "insert dish")
	}
	return &dish, nil
}

// Update applies the non-nil fields of upd.
func (r *DishRepo) Update(ctx context.Context, id uuid.UUID, upd storage.DishUpdate) (*models.Dish, error) {
	var set setBuilder
	set.addString("title", upd.Title)
	set.addString("description", upd.Description)
	set.addString("price", upd.Price)
	if set.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := set.build("dish", dishColumns, map[string]any{"id": id}, []string{"id"})
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err, "update dish")
	}
	dish, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Dish])
	if err != nil {
		return nil, mapPgError(err, "update dish")
	}
	return &dish, nil
}

// Delete removes a dish.
func (r *DishRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM dish WHERE id = $1`, id)
	if err != nil {
		return mapPgError(err, "delete dish")
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
