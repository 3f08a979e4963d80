package services_test

import (
	"context"
	"fmt"
	"testing"

	"restaurant-api/internal/models"
	"restaurant-api/internal/services"
	"restaurant-api/internal/storage"
	"restaurant-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSubmenuServiceTest(t *testing.T) (context.Context, services.SubmenuService, *MockTxBeginner, *MockSubmenuRepository, *MockCountRepository) {
	t.Helper()
	db, submenus, counts := new(MockTxBeginner), new(MockSubmenuRepository), new(MockCountRepository)
	t.Cleanup(func() {
		db.AssertExpectations(t)
		submenus.AssertExpectations(t)
		counts.AssertExpectations(t)
	})
	return context.Background(), services.NewSubmenuService(db, submenus, counts), db, submenus, counts
}

func TestSubmenuService_ListSubmenus(t *testing.T) {
	ctx, svc, _, submenus, _ := setupSubmenuServiceTest(t)
	menuID := uuid.New()
	want := []models.Submenu{{ID: uuid.New(), MenuID: menuID, Title: "Soups"}}
	submenus.On("ListByMenu", ctx, menuID).Return(want, nil).Once()

	got, err := svc.ListSubmenus(ctx, &dto.ListSubmenusRequest{MenuID: menuID})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSubmenuService_CreateSubmenu_MissingMenu(t *testing.T) {
	ctx, svc, _, submenus, _ := setupSubmenuServiceTest(t)
	menuID := uuid.New()
	fkErr := fmt.Errorf("insert submenu: %w", storage.ErrForeignKey)
	submenus.On("Create", ctx, menuID, "Soups", (*string)(nil)).Return(nil, fkErr).Once()

	_, err := svc.CreateSubmenu(ctx, &dto.CreateSubmenuRequest{MenuID: menuID, Title: "Soups"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrNotFound, "a missing parent menu is an internal error")
	assert.ErrorIs(t, err, storage.ErrForeignKey)
}

func TestSubmenuService_GetSubmenu_WithDishCount(t *testing.T) {
	ctx, svc, db, submenus, counts := setupSubmenuServiceTest(t)
	menuID, id := uuid.New(), uuid.New()
	tx := &fakeTx{}
	db.On("BeginTx", ctx, mock.Anything).Return(tx, nil).Once()
	submenus.On("GetByID", ctx, menuID, id).Return(&models.Submenu{ID: id, MenuID: menuID, Title: "Soups"}, nil).Once()
	counts.On("CountSubmenuDishes", ctx, id).Return(int64(3), nil).Once()

	got, err := svc.GetSubmenu(ctx, &dto.GetSubmenuRequest{MenuID: menuID, ID: id})

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.DishesCount)
	assert.Equal(t, menuID, got.MenuID)
	assert.True(t, tx.committed)
}

func TestSubmenuService_GetSubmenu_WrongMenu(t *testing.T) {
	ctx, svc, db, submenus, _ := setupSubmenuServiceTest(t)
	otherMenu, id := uuid.New(), uuid.New()
	db.On("BeginTx", ctx, mock.Anything).Return(&fakeTx{}, nil).Once()
	submenus.On("GetByID", ctx, otherMenu, id).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.GetSubmenu(ctx, &dto.GetSubmenuRequest{MenuID: otherMenu, ID: id})

	assert.ErrorIs(t, err, services.ErrSubmenuNotFound)
}

func TestSubmenuService_UpdateSubmenu(t *testing.T) {
	ctx, svc, _, submenus, _ := setupSubmenuServiceTest(t)
	menuID, id := uuid.New(), uuid.New()
	desc := ptrString("hot")
	submenus.On("Update", ctx, menuID, id, storage.SubmenuUpdate{Description: desc}).
		Return(&models.Submenu{ID: id, MenuID: menuID, Title: "Soups", Description: desc}, nil).Once()

	got, err := svc.UpdateSubmenu(ctx, &dto.UpdateSubmenuRequest{MenuID: menuID, ID: id, Description: desc})

	require.NoError(t, err)
	assert.Equal(t, "hot", *got.Description)
}

func TestSubmenuService_DeleteSubmenu_NotFound(t *testing.T) {
	ctx, svc, _, submenus, _ := setupSubmenuServiceTest(t)
	menuID, id := uuid.New(), uuid.New()
	submenus.On("Delete", ctx, menuID, id).Return(storage.ErrNotFound).Once()

	err := svc.DeleteSubmenu(ctx, &dto.DeleteSubmenuRequest{MenuID: menuID, ID: id})

	assert.ErrorIs(t, err, services.ErrSubmenuNotFound)
}
