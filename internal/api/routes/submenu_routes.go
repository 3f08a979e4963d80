package routes

import (
	"restaurant-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSubmenuRoutes registers the submenu routes nested under a menu.
func RegisterSubmenuRoutes(rg *gin.RouterGroup, h handlers.SubmenuHandlerInterface, readCache gin.HandlerFunc) {
	submenus := rg.Group("/menus/:" + handlers.ParamMenuID + "/submenus")
	{
		submenus.GET("", withCache(readCache, h.ListSubmenus)...)
		submenus.POST("", h.CreateSubmenu)
		submenus.GET("/:"+handlers.ParamSubmenuID, withCache(readCache, h.GetSubmenu)...)
		submenus.PATCH("/:"+handlers.ParamSubmenuID, h.UpdateSubmenu)
		submenus.DELETE("/:"+handlers.ParamSubmenuID, h.DeleteSubmenu)
	}
}
