package services_test

import (
	"context"

	"restaurant-api/internal/models"
	"restaurant-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTx records how a transaction ended. Methods not overridden panic.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type MockTxBeginner struct{ mock.Mock }

func (m *MockTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockTxBeginner) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	args := m.Called(ctx, opts)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) WithTx(pgx.Tx) storage.MenuRepository { return m }

func (m *MockMenuRepository) List(ctx context.Context, page storage.Page) ([]models.Menu, error) {
	args := m.Called(ctx, page)
	menus, _ := args.Get(0).([]models.Menu)
	return menus, args.Error(1)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Menu, error) {
	args := m.Called(ctx, id)
	menu, _ := args.Get(0).(*models.Menu)
	return menu, args.Error(1)
}

func (m *MockMenuRepository) Create(ctx context.Context, title string, description *string) (*models.Menu, error) {
	args := m.Called(ctx, title, description)
	menu, _ := args.Get(0).(*models.Menu)
	return menu, args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, id uuid.UUID, upd storage.MenuUpdate) (*models.Menu, error) {
	args := m.Called(ctx, id, upd)
	menu, _ := args.Get(0).(*models.Menu)
	return menu, args.Error(1)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSubmenuRepository struct{ mock.Mock }

func (m *MockSubmenuRepository) WithTx(pgx.Tx) storage.SubmenuRepository { return m }

func (m *MockSubmenuRepository) ListByMenu(ctx context.Context, menuID uuid.UUID) ([]models.Submenu, error) {
	args := m.Called(ctx, menuID)
	submenus, _ := args.Get(0).([]models.Submenu)
	return submenus, args.Error(1)
}

func (m *MockSubmenuRepository) GetByID(ctx context.Context, menuID, id uuid.UUID) (*models.Submenu, error) {
	args := m.Called(ctx, menuID, id)
	submenu, _ := args.Get(0).(*models.Submenu)
	return submenu, args.Error(1)
}

func (m *MockSubmenuRepository) Create(ctx context.Context, menuID uuid.UUID, title string, description *string) (*models.Submenu, error) {
	args := m.Called(ctx, menuID, title, description)
	submenu, _ := args.Get(0).(*models.Submenu)
	return submenu, args.Error(1)
}

func (m *MockSubmenuRepository) Update(ctx context.Context, menuID, id uuid.UUID, upd storage.SubmenuUpdate) (*models.Submenu, error) {
	args := m.Called(ctx, menuID, id, upd)
	submenu, _ := args.Get(0).(*models.Submenu)
	return submenu, args.Error(1)
}

func (m *MockSubmenuRepository) Delete(ctx context.Context, menuID, id uuid.UUID) error {
	return m.Called(ctx, menuID, id).Error(0)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) WithTx(pgx.Tx) storage.DishRepository { return m }

func (m *MockDishRepository) ListBySubmenu(ctx context.Context, submenuID uuid.UUID, page storage.Page) ([]models.Dish, error) {
	args := m.Called(ctx, submenuID, page)
	dishes, _ := args.Get(0).([]models.Dish)
	return dishes, args.Error(1)
}

func (m *MockDishRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Dish, error) {
	args := m.Called(ctx, id)
	dish, _ := args.Get(0).(*models.Dish)
	return dish, args.Error(1)
}

func (m *MockDishRepository) Create(ctx context.Context, submenuID uuid.UUID, title string, description *string, price string) (*models.Dish, error) {
	args := m.Called(ctx, submenuID, title, description, price)
	dish, _ := args.Get(0).(*models.Dish)
	return dish, args.Error(1)
}

func (m *MockDishRepository) Update(ctx context.Context, id uuid.UUID, upd storage.DishUpdate) (*models.Dish, error) {
	args := m.Called(ctx, id, upd)
	dish, _ := args.Get(0).(*models.Dish)
	return dish, args.Error(1)
}

func (m *MockDishRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCountRepository struct{ mock.Mock }

func (m *MockCountRepository) WithTx(pgx.Tx) storage.CountRepository { return m }

func (m *MockCountRepository) CountMenu(ctx context.Context, menuID uuid.UUID) (models.MenuCounts, error) {
	args := m.Called(ctx, menuID)
	counts, _ := args.Get(0).(models.MenuCounts)
	return counts, args.Error(1)
}

func (m *MockCountRepository) CountSubmenuDishes(ctx context.Context, submenuID uuid.UUID) (int64, error) {
	args := m.Called(ctx, submenuID)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func ptrString(s string) *string { return &s }
