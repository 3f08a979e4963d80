package routes

import (
	"restaurant-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterDishRoutes registers the dish routes nested under a submenu.
func RegisterDishRoutes(rg *gin.RouterGroup, h handlers.DishHandlerInterface, readCache gin.HandlerFunc) {
	dishes := rg.Group("/menus/:" + handlers.ParamMenuID + "/submenus/:" + handlers.ParamSubmenuID + "/dishes")
	{
		dishes.GET("", withCache(readCache, h.ListDishes)...)
		dishes.POST("", h.CreateDish)
		dishes.GET("/:"+handlers.ParamDishID, withCache(readCache, h.GetDish)...)
		dishes.PATCH("/:"+handlers.ParamDishID, h.UpdateDish)
		dishes.DELETE("/:"+handlers.ParamDishID, h.DeleteDish)
	}
}
