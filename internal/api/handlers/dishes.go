package handlers

import (
	"net/http"

	"restaurant-api/internal/services"
	"restaurant-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DishHandler holds dependencies for dish operations.
type DishHandler struct {
	service   services.DishService
	validator *validator.Validate
}

// NewDishHandler creates a new DishHandler.
func NewDishHandler(service services.DishService, validate *validator.Validate) *DishHandler {
	return &DishHandler{service: service, validator: validate}
}

// ancestors checks that the menu and submenu path segments are well formed.
// Their values do not take part in dish lookups.
func ancestors(c *gin.Context) bool {
	if _, ok := parseUUIDParam(c, ParamMenuID); !ok {
		return false
	}
	_, ok := parseUUIDParam(c, ParamSubmenuID)
	return ok
}

// ListDishes godoc
// @Summary      List dishes of a submenu
// @Tags         dishes
// @Produce      json
// @Param        target_menu_id    path  string true  "Menu ID" Format(uuid)
// @Param        target_submenu_id path  string true  "Submenu ID" Format(uuid)
// @Param        skip              query int    false "Number of dishes to skip" default(0)
// @Param        limit             query int    false "Maximum number of dishes" default(100)
// @Success      200 {array}   dto.DishResponse
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id}/submenus/{target_submenu_id}/dishes [get]
func (h *DishHandler) ListDishes(c *gin.Context) {
	if _, ok := parseUUIDParam(c, ParamMenuID); !ok {
		return
	}
	submenuID, ok := parseUUIDParam(c, ParamSubmenuID)
	if !ok {
		return
	}

	var req dto.ListDishesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locQuery)...)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locQuery)...)
		return
	}
	req.SubmenuID = submenuID

	dishes, err := h.service.ListDishes(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.DishResponse, 0, len(dishes))
	for i := range dishes {
		resp = append(resp, MapDishModelToDishResponse(&dishes[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateDish godoc
// @Summary      Create a dish
// @Description  The price must be a decimal number; it is returned rounded to two places.
// @Tags         dishes
// @Accept       json
// @Produce      json
// @Param        target_menu_id    path string                true "Menu ID" Format(uuid)
// @Param        target_submenu_id path string                true "Submenu ID" Format(uuid)
// @Param        dish              body dto.CreateDishRequest true "Dish details"
// @Success      201 {object}  dto.DishResponse
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id}/submenus/{target_submenu_id}/dishes [post]
func (h *DishHandler) CreateDish(c *gin.Context) {
	if _, ok := parseUUIDParam(c, ParamMenuID); !ok {
		return
	}
	submenuID, ok := parseUUIDParam(c, ParamSubmenuID)
	if !ok {
		return
	}

	var req dto.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	req.SubmenuID = submenuID

	dish, err := h.service.CreateDish(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapDishModelToDishResponse(dish))
}

// GetDish godoc
// @Summary      Get a dish
// @Description  Dishes resolve by id; the menu and submenu in the path are not checked against the dish.
// @Tags         dishes
// @Produce      json
// @Param        target_menu_id    path string true "Menu ID" Format(uuid)
// @Param        target_submenu_id path string true "Submenu ID" Format(uuid)
// @Param        target_dish_id    path string true "Dish ID" Format(uuid)
// @Success      200 {object}  dto.DishResponse
// @Failure      404 {object}  dto.NotFoundResponse "dish not found"
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id}/submenus/{target_submenu_id}/dishes/{target_dish_id} [get]
func (h *DishHandler) GetDish(c *gin.Context) {
	if !ancestors(c) {
		return
	}
	id, ok := parseUUIDParam(c, ParamDishID)
	if !ok {
		return
	}

	dish, err := h.service.GetDish(c.Request.Context(), &dto.GetDishRequest{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapDishModelToDishResponse(dish))
}

// UpdateDish godoc
// @Summary      Update a dish
// @Tags         dishes
// @Accept       json
// @Produce      json
// @Param        target_menu_id    path string                true "Menu ID" Format(uuid)
// @Param        target_submenu_id path string                true "Submenu ID" Format(uuid)
// @Param        target_dish_id    path string                true "Dish ID" Format(uuid)
// @Param        dish              body dto.UpdateDishRequest true "Fields to change"
// @Success      200 {object}  dto.DishResponse
// @Failure      404 {object}  dto.NotFoundResponse "dish not found"
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id}/submenus/{target_submenu_id}/dishes/{target_dish_id} [patch]
func (h *DishHandler) UpdateDish(c *gin.Context) {
	if !ancestors(c) {
		return
	}
	id, ok := parseUUIDParam(c, ParamDishID)
	if !ok {
		return
	}

	var req dto.UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	req.ID = id

	dish, err := h.service.UpdateDish(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapDishModelToDishResponse(dish))
}

// DeleteDish godoc
// @Summary      Delete a dish
// @Tags         dishes
// @Produce      json
// @Param        target_menu_id    path string true "Menu ID" Format(uuid)
// @Param        target_submenu_id path string true "Submenu ID" Format(uuid)
// @Param        target_dish_id    path string true "Dish ID" Format(uuid)
// @Success      200 {object}  dto.MessageResponse
// @Failure      404 {object}  dto.NotFoundResponse "dish not found"
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id}/submenus/{target_submenu_id}/dishes/{target_dish_id} [delete]
func (h *DishHandler) DeleteDish(c *gin.Context) {
	if !ancestors(c) {
		return
	}
	id, ok := parseUUIDParam(c, ParamDishID)
	if !ok {
		return
	}

	if err := h.service.DeleteDish(c.Request.Context(), &dto.DeleteDishRequest{ID: id}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Dish deleted successfully"})
}
