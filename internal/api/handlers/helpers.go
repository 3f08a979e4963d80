package handlers

import (
	"log/slog"

	"restaurant-api/internal/models"
	"restaurant-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Path parameter names shared with the route definitions.
const (
	ParamMenuID    = "target_menu_id"
	ParamSubmenuID = "target_submenu_id"
	ParamDishID    = "target_dish_id"
)

// parseUUIDParam reads a UUID path parameter. On failure it writes a 422 and
// returns false.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondValidation(c, dto.ValidationErrorItem{
			Loc:  []string{locPath, name},
			Msg:  "value is not a valid uuid",
			Type: "type_error.uuid",
		})
		return uuid.Nil, false
	}
	return id, true
}

// MapMenuModelToMenuResponse converts a models.Menu to a dto.MenuResponse without counts.
func MapMenuModelToMenuResponse(menu *models.Menu) dto.MenuResponse {
	return dto.MenuResponse{
		ID:          menu.ID,
		Title:       menu.Title,
		Description: menu.Description,
	}
}

// MapMenuWithCountsToMenuResponse fills in the derived counts.
func MapMenuWithCountsToMenuResponse(menu *models.MenuWithCounts) dto.MenuResponse {
	resp := MapMenuModelToMenuResponse(&menu.Menu)
	submenus, dishes := menu.Submenus, menu.Dishes
	resp.SubmenusCount = &submenus
	resp.DishesCount = &dishes
	return resp
}

// MapSubmenuModelToSubmenuResponse converts a models.Submenu to a dto.SubmenuResponse.
func MapSubmenuModelToSubmenuResponse(submenu *models.Submenu) dto.SubmenuResponse {
	return dto.SubmenuResponse{
		ID:          submenu.ID,
		Title:       submenu.Title,
		Description: submenu.Description,
		MenuID:      submenu.MenuID,
	}
}

func MapSubmenuWithCountsToSubmenuResponse(submenu *models.SubmenuWithCounts) dto.SubmenuResponse {
	resp := MapSubmenuModelToSubmenuResponse(&submenu.Submenu)
	n := submenu.DishesCount
	resp.DishesCount = &n
	return resp
}

// MapDishModelToDishResponse converts a models.Dish to a dto.DishResponse with
// the price rounded for display.
func MapDishModelToDishResponse(dish *models.Dish) dto.DishResponse {
	price, err := models.FormatPrice(dish.Price)
	if err != nil {
		// Stored prices are validated on write; keep the raw value rather than fail the read.
		slog.Warn("stored dish price is not a number",
			slog.String("dish_id", dish.ID.String()),
			slog.String("price", dish.Price))
		price = dish.Price
	}
	return dto.DishResponse{
		ID:          dish.ID,
		Title:       dish.Title,
		Description: dish.Description,
		Price:       price,
		SubmenuID:   dish.SubmenuID,
	}
}
