package dto

import "github.com/google/uuid"

// ListSubmenusRequest selects the submenus of one menu.
type ListSubmenusRequest struct {
	MenuID uuid.UUID `json:"-"`
}

// CreateSubmenuRequest defines the structure for creating a submenu under a menu.
type CreateSubmenuRequest struct {
	MenuID      uuid.UUID `json:"-"` // From URL path
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description" validate:"omitnil,max=255"`
}

// GetSubmenuRequest identifies a submenu through its owning menu.
type GetSubmenuRequest struct {
	MenuID uuid.UUID `json:"-"`
	ID     uuid.UUID `json:"-"`
}

// UpdateSubmenuRequest carries a partial update of a submenu owned by MenuID.
type UpdateSubmenuRequest struct {
	MenuID      uuid.UUID `json:"-"`
	ID          uuid.UUID `json:"-"`
	Title       *string   `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string   `json:"description" validate:"omitnil,max=255"`
}

// DeleteSubmenuRequest identifies the submenu to delete.
type DeleteSubmenuRequest struct {
	MenuID uuid.UUID `json:"-"`
	ID     uuid.UUID `json:"-"`
}

// SubmenuResponse defines the submenu data returned to the client.
type SubmenuResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	MenuID      uuid.UUID `json:"menu_id"`
	DishesCount *int64    `json:"dishes_count"`
}
