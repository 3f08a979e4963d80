package services

import (
	"context"
	"fmt"
	"log/slog"

	"restaurant-api/internal/models"
	"restaurant-api/internal/storage"
	"restaurant-api/internal/transport/dto"
)

type dishService struct {
	dishes storage.DishRepository
}

// NewDishService creates a new instance of DishService.
func NewDishService(dishes storage.DishRepository) DishService {
	return &dishService{dishes: dishes}
}

func (s *dishService) ListDishes(ctx context.Context, req *dto.ListDishesRequest) ([]models.Dish, error) {
	dishes, err := s.dishes.ListBySubmenu(ctx, req.SubmenuID, storage.Page{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return nil, mapRepoError(err, "listing dishes", ErrDishNotFound)
	}
	return dishes, nil
}

func (s *dishService) CreateDish(ctx context.Context, req *dto.CreateDishRequest) (*models.Dish, error) {
	if err := requireTitle(req.Title); err != nil {
		return nil, err
	}
	if !models.ValidPrice(req.Price) {
		return nil, fmt.Errorf("%w: price %q is not a decimal number", ErrValidation, req.Price)
	}
	dish, err := s.dishes.Create(ctx, req.SubmenuID, req.Title, req.Description, req.Price)
	if err != nil {
		return nil, mapRepoError(err, "creating dish", ErrDishNotFound)
	}
	slog.Info("dish created",
		slog.String("submenu_id", req.SubmenuID.String()),
		slog.String("dish_id", dish.ID.String()))
	return dish, nil
}

func (s *dishService) GetDish(ctx context.Context, req *dto.GetDishRequest) (*models.Dish, error) {
	dish, err := s.dishes.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "getting dish", ErrDishNotFound)
	}
	return dish, nil
}

func (s *dishService) UpdateDish(ctx context.Context, req *dto.UpdateDishRequest) (*models.Dish, error) {
	if err := requireTitlePtr(req.Title); err != nil {
		return nil, err
	}
	if req.Price != nil && !models.ValidPrice(*req.Price) {
		return nil, fmt.Errorf("%w: price %q is not a decimal number", ErrValidation, *req.Price)
	}
	upd := storage.DishUpdate{Title: req.Title, Description: req.Description, Price: req.Price}
	dish, err := s.dishes.Update(ctx, req.ID, upd)
	if err != nil {
		return nil, mapRepoError(err, "updating dish", ErrDishNotFound)
	}
	return dish, nil
}

func (s *dishService) DeleteDish(ctx context.Context, req *dto.DeleteDishRequest) error {
	if err := s.dishes.Delete(ctx, req.ID); err != nil {
		return mapRepoError(err, "deleting dish", ErrDishNotFound)
	}
	slog.Info("dish deleted", slog.String("dish_id", req.ID.String()))
	return nil
}
