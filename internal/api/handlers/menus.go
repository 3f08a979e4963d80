package handlers

import (
	"net/http"

	"restaurant-api/internal/services"
	"restaurant-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MenuHandler holds dependencies for menu operations.
type MenuHandler struct {
	service   services.MenuService
	validator *validator.Validate
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service services.MenuService, validate *validator.Validate) *MenuHandler {
	return &MenuHandler{service: service, validator: validate}
}

// ListMenus godoc
// @Summary      List menus
// @Description  Returns one page of menus in insertion order. Counts are not included.
// @Tags         menus
// @Produce      json
// @Param        skip  query int false "Number of menus to skip" default(0)
// @Param        limit query int false "Maximum number of menus" default(100)
// @Success      200 {array}   dto.MenuResponse
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus [get]
func (h *MenuHandler) ListMenus(c *gin.Context) {
	var req dto.ListMenusRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locQuery)...)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locQuery)...)
		return
	}

	menus, err := h.service.ListMenus(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.MenuResponse, 0, len(menus))
	for i := range menus {
		resp = append(resp, MapMenuModelToMenuResponse(&menus[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateMenu godoc
// @Summary      Create a menu
// @Tags         menus
// @Accept       json
// @Produce      json
// @Param        menu body      dto.CreateMenuRequest true "Menu details"
// @Success      201  {object}  dto.MenuResponse
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Failure      500  {object}  dto.NotFoundResponse
// @Router       /menus [post]
func (h *MenuHandler) CreateMenu(c *gin.Context) {
	var req dto.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}

	menu, err := h.service.CreateMenu(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapMenuModelToMenuResponse(menu))
}

// GetMenu godoc
// @Summary      Get a menu
// @Description  Returns the menu with the number of its submenus and of all dishes under them.
// @Tags         menus
// @Produce      json
// @Param        target_menu_id path string true "Menu ID" Format(uuid)
// @Success      200 {object}  dto.MenuResponse
// @Failure      404 {object}  dto.NotFoundResponse "menu not found"
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id} [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	id, ok := parseUUIDParam(c, ParamMenuID)
	if !ok {
		return
	}

	menu, err := h.service.GetMenu(c.Request.Context(), &dto.GetMenuRequest{ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapMenuWithCountsToMenuResponse(menu))
}

// UpdateMenu godoc
// @Summary      Update a menu
// @Description  Applies the supplied fields only. An empty body leaves the menu unchanged.
// @Tags         menus
// @Accept       json
// @Produce      json
// @Param        target_menu_id path string                true "Menu ID" Format(uuid)
// @Param        menu           body dto.UpdateMenuRequest true "Fields to change"
// @Success      200 {object}  dto.MenuResponse
// @Failure      404 {object}  dto.NotFoundResponse "menu not found"
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id} [patch]
func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	id, ok := parseUUIDParam(c, ParamMenuID)
	if !ok {
		return
	}

	var req dto.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	req.ID = id

	menu, err := h.service.UpdateMenu(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapMenuModelToMenuResponse(menu))
}

// DeleteMenu godoc
// @Summary      Delete a menu
// @Description  Deletes the menu together with its submenus and their dishes.
// @Tags         menus
// @Produce      json
// @Param        target_menu_id path string true "Menu ID" Format(uuid)
// @Success      200 {object}  dto.MessageResponse
// @Failure      404 {object}  dto.NotFoundResponse "menu not found"
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id} [delete]
func (h *MenuHandler) DeleteMenu(c *gin.Context) {
	id, ok := parseUUIDParam(c, ParamMenuID)
	if !ok {
		return
	}

	if err := h.service.DeleteMenu(c.Request.Context(), &dto.DeleteMenuRequest{ID: id}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "menu deleted successfully"})
}
