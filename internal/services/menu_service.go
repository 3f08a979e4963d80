package services

import (
	"context"
	"log/slog"

	"restaurant-api/internal/models"
	"restaurant-api/internal/storage"
	"restaurant-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
)

type menuService struct {
	db     storage.TxBeginner
	menus  storage.MenuRepository
	counts storage.CountRepository
}

// NewMenuService creates a new instance of MenuService.
func NewMenuService(db storage.TxBeginner, menus storage.MenuRepository, counts storage.CountRepository) MenuService {
	return &menuService{db: db, menus: menus, counts: counts}
}

func (s *menuService) ListMenus(ctx context.Context, req *dto.ListMenusRequest) ([]models.Menu, error) {
	menus, err := s.menus.List(ctx, storage.Page{Skip: req.Skip, Limit: req.Limit})
	if err != nil {
		return nil, mapRepoError(err, "listing menus", ErrMenuNotFound)
	}
	return menus, nil
}

func (s *menuService) CreateMenu(ctx context.Context, req *dto.CreateMenuRequest) (*models.Menu, error) {
	if err := requireTitle(req.Title); err != nil {
		return nil, err
	}
	menu, err := s.menus.Create(ctx, req.Title, req.Description)
	if err != nil {
		return nil, mapRepoError(err, "creating menu", ErrMenuNotFound)
	}
	slog.Info("menu created", slog.String("menu_id", menu.ID.String()))
	return menu, nil
}

// GetMenu reads the menu and its counts from one snapshot so the numbers
// agree with each other even under concurrent writes.
func (s *menuService) GetMenu(ctx context.Context, req *dto.GetMenuRequest) (*models.MenuWithCounts, error) {
	var result *models.MenuWithCounts
	err := inTx(ctx, s.db, readOnlySnapshot, func(tx pgx.Tx) error {
		menu, err := s.menus.WithTx(tx).GetByID(ctx, req.ID)
		if err != nil {
			return mapRepoError(err, "getting menu", ErrMenuNotFound)
		}
		counts, err := s.counts.WithTx(tx).CountMenu(ctx, req.ID)
		if err != nil {
			return mapRepoError(err, "counting menu children", ErrMenuNotFound)
		}
		result = &models.MenuWithCounts{Menu: *menu, MenuCounts: counts}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *menuService) UpdateMenu(ctx context.Context, req *dto.UpdateMenuRequest) (*models.Menu, error) {
	if err := requireTitlePtr(req.Title); err != nil {
		return nil, err
	}
	menu, err := s.menus.Update(ctx, req.ID, storage.MenuUpdate{Title: req.Title, Description: req.Description})
	if err != nil {
		return nil, mapRepoError(err, "updating menu", ErrMenuNotFound)
	}
	return menu, nil
}

func (s *menuService) DeleteMenu(ctx context.Context, req *dto.DeleteMenuRequest) error {
	if err := s.menus.Delete(ctx, req.ID); err != nil {
		return mapRepoError(err, "deleting menu", ErrMenuNotFound)
	}
	slog.Info("menu deleted", slog.String("menu_id", req.ID.String()))
	return nil
}
