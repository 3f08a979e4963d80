package models

import (
	"time"

	"github.com/google/uuid"
)

// Menu is the root of the hierarchy. It owns zero or more submenus.
type Menu struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Submenu belongs to exactly one Menu and owns zero or more dishes.
type Submenu struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	MenuID      uuid.UUID `db:"menu_id"`
	CreatedAt   time.Time `db:"created_at"`
}

// Dish belongs to exactly one Submenu. Price holds the value as it was
// submitted; use FormatPrice before returning it to a client.
type Dish struct {
	ID          uuid.UUID `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Price       string    `db:"price"`
	SubmenuID   uuid.UUID `db:"submenu_id"`
	CreatedAt   time.Time `db:"created_at"`
}

// MenuCounts are the derived aggregates of a single menu.
type MenuCounts struct {
	Submenus int64
	Dishes   int64
}

// MenuWithCounts is a Menu enriched at read time.
type MenuWithCounts struct {
	Menu
	MenuCounts
}

// SubmenuWithCounts is a Submenu enriched at read time.
type SubmenuWithCounts struct {
	Submenu
	DishesCount int64
}
