package dto

import "github.com/google/uuid"

// --- Menu Request DTOs ---

// ListMenusRequest defines the paging parameters for listing menus.
type ListMenusRequest struct {
	Skip  int `form:"skip,default=0" validate:"gte=0"`
	Limit int `form:"limit,default=100" validate:"gte=0"`
}

// CreateMenuRequest defines the structure for creating a new menu.
type CreateMenuRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitnil,max=255"`
}

// GetMenuRequest identifies a single menu.
type GetMenuRequest struct {
	ID uuid.UUID `json:"-"` // From URL path
}

// UpdateMenuRequest carries a partial update; absent or null fields are left untouched.
type UpdateMenuRequest struct {
	ID          uuid.UUID `json:"-"` // From URL path
	Title       *string   `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string   `json:"description" validate:"omitnil,max=255"`
}

// DeleteMenuRequest identifies the menu to delete.
type DeleteMenuRequest struct {
	ID uuid.UUID `json:"-"`
}

// MenuResponse defines the menu data returned to the client. The counts are
// only filled in by the get-by-id endpoint and are null everywhere else.
type MenuResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	SubmenusCount *int64    `json:"submenus_count"`
	DishesCount   *int64    `json:"dishes_count"`
}
