package storage

import (
	"context"

	"restaurant-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TxBeginner starts store transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// Page bounds a list query.
type Page struct {
	Skip  int
	Limit int
}

// MenuUpdate carries the fields of a partial menu update. Nil fields are left untouched.
type MenuUpdate struct {
	Title       *string
	Description *string
}

// Empty reports whether the update changes nothing.
func (u MenuUpdate) Empty() bool { return u.Title == nil && u.Description == nil }

// SubmenuUpdate carries the fields of a partial submenu update.
type SubmenuUpdate struct {
	Title       *string
	Description *string
}

// Empty reports whether the update changes nothing.
func (u SubmenuUpdate) Empty() bool { return u.Title == nil && u.Description == nil }

// DishUpdate carries the fields of a partial dish update.
type DishUpdate struct {
	Title       *string
	Description *string
	Price       *string
}

// Empty reports whether the update changes nothing.
func (u DishUpdate) Empty() bool { return u.Title == nil && u.Description == nil && u.Price == nil }

// MenuRepository defines the interface for menu data operations.
type MenuRepository interface {
	WithTx(tx pgx.Tx) MenuRepository
	List(ctx context.Context, page Page) ([]models.Menu, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Menu, error)
	Create(ctx context.Context, title string, description *string) (*models.Menu, error)
	Update(ctx context.Context, id uuid.UUID, upd MenuUpdate) (*models.Menu, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubmenuRepository defines the interface for submenu data operations.
// Lookups and mutations are scoped by the owning menu id.
type SubmenuRepository interface {
	WithTx(tx pgx.Tx) SubmenuRepository
	ListByMenu(ctx context.Context, menuID uuid.UUID) ([]models.Submenu, error)
	GetByID(ctx context.Context, menuID, id uuid.UUID) (*models.Submenu, error)
	Create(ctx context.Context, menuID uuid.UUID, title string, description *string) (*models.Submenu, error)
	Update(ctx context.Context, menuID, id uuid.UUID, upd SubmenuUpdate) (*models.Submenu, error)
	Delete(ctx context.Context, menuID, id uuid.UUID) error
}

// DishRepository defines the interface for dish data operations.
type DishRepository interface {
	WithTx(tx pgx.Tx) DishRepository
	ListBySubmenu(ctx context.Context, submenuID uuid.UUID, page Page) ([]models.Dish, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error)
	Create(ctx context.Context, submenuID uuid.UUID, title string, description *string, price string) (*models.Dish, error)
	Update(ctx context.Context, id uuid.UUID, upd DishUpdate) (*models.Dish, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CountRepository computes derived aggregates from live store state.
type CountRepository interface {
	WithTx(tx pgx.Tx) CountRepository
	CountMenu(ctx context.Context, menuID uuid.UUID) (models.MenuCounts, error)
	CountSubmenuDishes(ctx context.Context, submenuID uuid.UUID) (int64, error)
}
