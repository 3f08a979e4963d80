package handlers

import (
	"net/http"

	"restaurant-api/internal/services"
	"restaurant-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SubmenuHandler holds dependencies for submenu operations.
type SubmenuHandler struct {
	service   services.SubmenuService
	validator *validator.Validate
}

// NewSubmenuHandler creates a new SubmenuHandler.
func NewSubmenuHandler(service services.SubmenuService, validate *validator.Validate) *SubmenuHandler {
	return &SubmenuHandler{service: service, validator: validate}
}

// ListSubmenus godoc
// @Summary      List submenus of a menu
// @Description  An unknown menu yields an empty list.
// @Tags         submenus
// @Produce      json
// @Param        target_menu_id path string true "Menu ID" Format(uuid)
// @Success      200 {array}   dto.SubmenuResponse
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id}/submenus [get]
func (h *SubmenuHandler) ListSubmenus(c *gin.Context) {
	menuID, ok := parseUUIDParam(c, ParamMenuID)
	if !ok {
		return
	}

	submenus, err := h.service.ListSubmenus(c.Request.Context(), &dto.ListSubmenusRequest{MenuID: menuID})
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.SubmenuResponse, 0, len(submenus))
	for i := range submenus {
		resp = append(resp, MapSubmenuModelToSubmenuResponse(&submenus[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateSubmenu godoc
// @Summary      Create a submenu
// @Tags         submenus
// @Accept       json
// @Produce      json
// @Param        target_menu_id path string                   true "Menu ID" Format(uuid)
// @Param        submenu        body dto.CreateSubmenuRequest true "Submenu details"
// @Success      201 {object}  dto.SubmenuResponse
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id}/submenus [post]
func (h *SubmenuHandler) CreateSubmenu(c *gin.Context) {
	menuID, ok := parseUUIDParam(c, ParamMenuID)
	if !ok {
		return
	}

	var req dto.CreateSubmenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	req.MenuID = menuID

	submenu, err := h.service.CreateSubmenu(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, MapSubmenuModelToSubmenuResponse(submenu))
}

// GetSubmenu godoc
// @Summary      Get a submenu
// @Description  Returns 404 when the submenu belongs to a different menu.
// @Tags         submenus
// @Produce      json
// @Param        target_menu_id    path string true "Menu ID" Format(uuid)
// @Param        target_submenu_id path string true "Submenu ID" Format(uuid)
// @Success      200 {object}  dto.SubmenuResponse
// @Failure      404 {object}  dto.NotFoundResponse "submenu not found"
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id}/submenus/{target_submenu_id} [get]
func (h *SubmenuHandler) GetSubmenu(c *gin.Context) {
	menuID, ok := parseUUIDParam(c, ParamMenuID)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, ParamSubmenuID)
	if !ok {
		return
	}

	submenu, err := h.service.GetSubmenu(c.Request.Context(), &dto.GetSubmenuRequest{MenuID: menuID, ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapSubmenuWithCountsToSubmenuResponse(submenu))
}

// UpdateSubmenu godoc
// @Summary      Update a submenu
// @Tags         submenus
// @Accept       json
// @Produce      json
// @Param        target_menu_id    path string                   true "Menu ID" Format(uuid)
// @Param        target_submenu_id path string                   true "Submenu ID" Format(uuid)
// @Param        submenu           body dto.UpdateSubmenuRequest true "Fields to change"
// @Success      200 {object}  dto.SubmenuResponse
// @Failure      404 {object}  dto.NotFoundResponse "submenu not found"
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id}/submenus/{target_submenu_id} [patch]
func (h *SubmenuHandler) UpdateSubmenu(c *gin.Context) {
	menuID, ok := parseUUIDParam(c, ParamMenuID)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, ParamSubmenuID)
	if !ok {
		return
	}

	var req dto.UpdateSubmenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidation(c, FormatValidationErrors(err, locBody)...)
		return
	}
	req.MenuID, req.ID = menuID, id

	submenu, err := h.service.UpdateSubmenu(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapSubmenuModelToSubmenuResponse(submenu))
}

// DeleteSubmenu godoc
// @Summary      Delete a submenu
// @Description  Deletes the submenu and all of its dishes.
// @Tags         submenus
// @Produce      json
// @Param        target_menu_id    path string true "Menu ID" Format(uuid)
// @Param        target_submenu_id path string true "Submenu ID" Format(uuid)
// @Success      200 {object}  dto.MessageResponse
// @Failure      404 {object}  dto.NotFoundResponse "submenu not found"
// @Failure      422 {object}  dto.ValidationErrorResponse
// @Failure      500 {object}  dto.NotFoundResponse
// @Router       /menus/{target_menu_id}/submenus/{target_submenu_id} [delete]
func (h *SubmenuHandler) DeleteSubmenu(c *gin.Context) {
	menuID, ok := parseUUIDParam(c, ParamMenuID)
	if !ok {
		return
	}
	id, ok := parseUUIDParam(c, ParamSubmenuID)
	if !ok {
		return
	}

	if err := h.service.DeleteSubmenu(c.Request.Context(), &dto.DeleteSubmenuRequest{MenuID: menuID, ID: id}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Submenu and all associated dishes deleted successfully"})
}
