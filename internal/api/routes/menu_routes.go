package routes

import (
	"restaurant-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterMenuRoutes registers all routes related to menus. Reads go through
// readCache when it is non-nil.
func RegisterMenuRoutes(rg *gin.RouterGroup, h handlers.MenuHandlerInterface, readCache gin.HandlerFunc) {
	menus := rg.Group("/menus")
	{
		menus.GET("", withCache(readCache, h.ListMenus)...)
		menus.POST("", h.CreateMenu)
		menus.GET("/:"+handlers.ParamMenuID, withCache(readCache, h.GetMenu)...)
		menus.PATCH("/:"+handlers.ParamMenuID, h.UpdateMenu)
		menus.DELETE("/:"+handlers.ParamMenuID, h.DeleteMenu)
	}
}
