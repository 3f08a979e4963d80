package dto

import "github.com/google/uuid"

// ListDishesRequest selects one page of the dishes of a submenu.
type ListDishesRequest struct {
	SubmenuID uuid.UUID `form:"-"`
	Skip      int       `form:"skip,default=0" validate:"gte=0"`
	Limit     int       `form:"limit,default=100" validate:"gte=0"`
}

// CreateDishRequest defines the structure for creating a dish under a submenu.
type CreateDishRequest struct {
	SubmenuID   uuid.UUID `json:"-"` // From URL path
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description" validate:"omitnil,max=255"`
	Price       string    `json:"price" validate:"required,max=255,decimal"`
}

// GetDishRequest identifies a dish. Dishes are addressed by id alone; the
// menu and submenu segments of the path do not take part in the lookup.
type GetDishRequest struct {
	ID uuid.UUID `json:"-"`
}

// UpdateDishRequest carries a partial dish update.
type UpdateDishRequest struct {
	ID          uuid.UUID `json:"-"`
	Title       *string   `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string   `json:"description" validate:"omitnil,max=255"`
	Price       *string   `json:"price" validate:"omitnil,max=255,decimal"`
}

// DeleteDishRequest identifies the dish to delete.
type DeleteDishRequest struct {
	ID uuid.UUID `json:"-"`
}

// DishResponse defines the dish data returned to the client. Price is always
// rounded to two decimals.
type DishResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Price       string    `json:"price"`
	SubmenuID   uuid.UUID `json:"submenu_id"`
}
