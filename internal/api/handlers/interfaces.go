package handlers

import "github.com/gin-gonic/gin"

// MenuHandlerInterface defines the methods needed by the menu routes.
type MenuHandlerInterface interface {
	ListMenus(c *gin.Context)
	CreateMenu(c *gin.Context)
	GetMenu(c *gin.Context)
	UpdateMenu(c *gin.Context)
	DeleteMenu(c *gin.Context)
}

// SubmenuHandlerInterface defines the methods needed by the submenu routes.
type SubmenuHandlerInterface interface {
	ListSubmenus(c *gin.Context)
	CreateSubmenu(c *gin.Context)
	GetSubmenu(c *gin.Context)
	UpdateSubmenu(c *gin.Context)
	DeleteSubmenu(c *gin.Context)
}

// DishHandlerInterface defines the methods needed by the dish routes.
type DishHandlerInterface interface {
	ListDishes(c *gin.Context)
	CreateDish(c *gin.Context)
	GetDish(c *gin.Context)
	UpdateDish(c *gin.Context)
	DeleteDish(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ MenuHandlerInterface    = (*MenuHandler)(nil)
	_ SubmenuHandlerInterface = (*SubmenuHandler)(nil)
	_ DishHandlerInterface    = (*DishHandler)(nil)
)
