package services

import (
	"context"

	"restaurant-api/internal/models"
	"restaurant-api/internal/transport/dto"
)

// MenuService defines the menu use cases.
type MenuService interface {
	ListMenus(ctx context.Context, req *dto.ListMenusRequest) ([]models.Menu, error)
	CreateMenu(ctx context.Context, req *dto.CreateMenuRequest) (*models.Menu, error)
	GetMenu(ctx context.Context, req *dto.GetMenuRequest) (*models.MenuWithCounts, error)
	UpdateMenu(ctx context.Context, req *dto.UpdateMenuRequest) (*models.Menu, error)
	DeleteMenu(ctx context.Context, req *dto.DeleteMenuRequest) error
}

// SubmenuService defines the submenu use cases. Every operation is scoped by
// the owning menu.
type SubmenuService interface {
	ListSubmenus(ctx context.Context, req *dto.ListSubmenusRequest) ([]models.Submenu, error)
	CreateSubmenu(ctx context.Context, req *dto.CreateSubmenuRequest) (*models.Submenu, error)
	GetSubmenu(ctx context.Context, req *dto.GetSubmenuRequest) (*models.SubmenuWithCounts, error)
	UpdateSubmenu(ctx context.Context, req *dto.UpdateSubmenuRequest) (*models.Submenu, error)
	DeleteSubmenu(ctx context.Context, req *dto.DeleteSubmenuRequest) error
}

// DishService defines the dish use cases.
type DishService interface {
	ListDishes(ctx context.Context, req *dto.ListDishesRequest) ([]models.Dish, error)
	CreateDish(ctx context.Context, req *dto.CreateDishRequest) (*models.Dish, error)
	GetDish(ctx context.Context, req *dto.GetDishRequest) (*models.Dish, error)
	UpdateDish(ctx context.Context, req *dto.UpdateDishRequest) (*models.Dish, error)
	DeleteDish(ctx context.Context, req *dto.DeleteDishRequest) error
}
