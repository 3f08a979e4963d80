package services

import (
	"context"
	"log/slog"

	"restaurant-api/internal/models"
	"restaurant-api/internal/storage"
	"restaurant-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
)

type submenuService struct {
	db       storage.TxBeginner
	submenus storage.SubmenuRepository
	counts   storage.CountRepository
}

// NewSubmenuService creates a new instance of SubmenuService.
func NewSubmenuService(db storage.TxBeginner, submenus storage.SubmenuRepository, counts storage.CountRepository) SubmenuService {
	return &submenuService{db: db, submenus: submenus, counts: counts}
}

func (s *submenuService) ListSubmenus(ctx context.Context, req *dto.ListSubmenusRequest) ([]models.Submenu, error) {
	submenus, err := s.submenus.ListByMenu(ctx, req.MenuID)
	if err != nil {
		return nil, mapRepoError(err, "listing submenus", ErrSubmenuNotFound)
	}
	return submenus, nil
}

// CreateSubmenu inserts a submenu under req.MenuID. A missing menu surfaces
// as a foreign key violation, which is reported as an internal error.
func (s *submenuService) CreateSubmenu(ctx context.Context, req *dto.CreateSubmenuRequest) (*models.Submenu, error) {
	if err := requireTitle(req.Title); err != nil {
		return nil, err
	}
	submenu, err := s.submenus.Create(ctx, req.MenuID, req.Title, req.Description)
	if err != nil {
		return nil, mapRepoError(err, "creating submenu", ErrSubmenuNotFound)
	}
	slog.Info("submenu created",
		slog.String("menu_id", req.MenuID.String()),
		slog.String("submenu_id", submenu.ID.String()))
	return submenu, nil
}

func (s *submenuService) GetSubmenu(ctx context.Context, req *dto.GetSubmenuRequest) (*models.SubmenuWithCounts, error) {
	var result *models.SubmenuWithCounts
	err := inTx(ctx, s.db, readOnlySnapshot, func(tx pgx.Tx) error {
		submenu, err := s.submenus.WithTx(tx).GetByID(ctx, req.MenuID, req.ID)
		if err != nil {
			return mapRepoError(err, "getting submenu", ErrSubmenuNotFound)
		}
		n, err := s.counts.WithTx(tx).CountSubmenuDishes(ctx, req.ID)
		if err != nil {
			return mapRepoError(err, "counting submenu dishes", ErrSubmenuNotFound)
		}
		result = &models.SubmenuWithCounts{Submenu: *submenu, DishesCount: n}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *submenuService) UpdateSubmenu(ctx context.Context, req *dto.UpdateSubmenuRequest) (*models.Submenu, error) {
	if err := requireTitlePtr(req.Title); err != nil {
		return nil, err
	}
	upd := storage.SubmenuUpdate{Title: req.Title, Description: req.Description}
	submenu, err := s.submenus.Update(ctx, req.MenuID, req.ID, upd)
	if err != nil {
		return nil, mapRepoError(err, "updating submenu", ErrSubmenuNotFound)
	}
	return submenu, nil
}

func (s *submenuService) DeleteSubmenu(ctx context.Context, req *dto.DeleteSubmenuRequest) error {
	if err := s.submenus.Delete(ctx, req.MenuID, req.ID); err != nil {
		return mapRepoError(err, "deleting submenu", ErrSubmenuNotFound)
	}
	slog.Info("submenu deleted",
		slog.String("menu_id", req.MenuID.String()),
		slog.String("submenu_id", req.ID.String()))
	return nil
}
