package handlers_test

import (
	"context"

	"restaurant-api/internal/models"
	"restaurant-api/internal/transport/dto"

	"github.com/stretchr/testify/mock"
)

type MockMenuService struct{ mock.Mock }

func (m *MockMenuService) ListMenus(ctx context.Context, req *dto.ListMenusRequest) ([]models.Menu, error) {
	args := m.Called(ctx, req)
	menus, _ := args.Get(0).([]models.Menu)
	return menus, args.Error(1)
}

func (m *MockMenuService) CreateMenu(ctx context.Context, req *dto.CreateMenuRequest) (*models.Menu, error) {
	args := m.Called(ctx, req)
	menu, _ := args.Get(0).(*models.Menu)
	return menu, args.Error(1)
}

func (m *MockMenuService) GetMenu(ctx context.Context, req *dto.GetMenuRequest) (*models.MenuWithCounts, error) {
	args := m.Called(ctx, req)
	menu, _ := args.Get(0).(*models.MenuWithCounts)
	return menu, args.Error(1)
}

func (m *MockMenuService) UpdateMenu(ctx context.Context, req *dto.UpdateMenuRequest) (*models.Menu, error) {
	args := m.Called(ctx, req)
	menu, _ := args.Get(0).(*models.Menu)
	return menu, args.Error(1)
}

func (m *MockMenuService) DeleteMenu(ctx context.Context, req *dto.DeleteMenuRequest) error {
	return m.Called(ctx, req).Error(0)
}

type MockSubmenuService struct{ mock.Mock }

func (m *MockSubmenuService) ListSubmenus(ctx context.Context, req *dto.ListSubmenusRequest) ([]models.Submenu, error) {
	args := m.Called(ctx, req)
	submenus, _ := args.Get(0).([]models.Submenu)
	return submenus, args.Error(1)
}

func (m *MockSubmenuService) CreateSubmenu(ctx context.Context, req *dto.CreateSubmenuRequest) (*models.Submenu, error) {
	args := m.Called(ctx, req)
	submenu, _ := args.Get(0).(*models.Submenu)
	return submenu, args.Error(1)
}

func (m *MockSubmenuService) GetSubmenu(ctx context.Context, req *dto.GetSubmenuRequest) (*models.SubmenuWithCounts, error) {
	args := m.Called(ctx, req)
	submenu, _ := args.Get(0).(*models.SubmenuWithCounts)
	return submenu, args.Error(1)
}

func (m *MockSubmenuService) UpdateSubmenu(ctx context.Context, req *dto.UpdateSubmenuRequest) (*models.Submenu, error) {
	args := m.Called(ctx, req)
	submenu, _ := args.Get(0).(*models.Submenu)
	return submenu, args.Error(1)
}

func (m *MockSubmenuService) DeleteSubmenu(ctx context.Context, req *dto.DeleteSubmenuRequest) error {
	return m.Called(ctx, req).Error(0)
}

type MockDishService struct{ mock.Mock }

func (m *MockDishService) ListDishes(ctx context.Context, req *dto.ListDishesRequest) ([]models.Dish, error) {
	args := m.Called(ctx, req)
	dishes, _ := args.Get(0).([]models.Dish)
	return dishes, args.Error(1)
}

func (m *MockDishService) CreateDish(ctx context.Context, req *dto.CreateDishRequest) (*models.Dish, error) {
	args := m.Called(ctx, req)
	dish, _ := args.Get(0).(*models.Dish)
	return dish, args.Error(1)
}

func (m *MockDishService) GetDish(ctx context.Context, req *dto.GetDishRequest) (*models.Dish, error) {
	args := m.Called(ctx, req)
	dish, _ := args.Get(0).(*models.Dish)
	return dish, args.Error(1)
}

func (m *MockDishService) UpdateDish(ctx context.Context, req *dto.UpdateDishRequest) (*models.Dish, error) {
	args := m.Called(ctx, req)
	dish, _ := args.Get(0).(*models.Dish)
	return dish, args.Error(1)
}

func (m *MockDishService) DeleteDish(ctx context.Context, req *dto.DeleteDishRequest) error {
	return m.Called(ctx, req).Error(0)
}
