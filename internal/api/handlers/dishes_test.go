package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-api/internal/models"
	"restaurant-api/internal/services"
	"restaurant-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dishURL(menuID, submenuID uuid.UUID, rest ...string) string {
	u := fmt.Sprintf("/api/v1/menus/%s/submenus/%s/dishes", menuID, submenuID)
	for _, r := range rest {
		u += "/" + r
	}
	return u
}

func TestListDishes_NormalizesPrices(t *testing.T) {
	tr := setupRouter(t)
	menuID, submenuID := uuid.New(), uuid.New()
	tr.dishes.On("ListDishes", mock.Anything, &dto.ListDishesRequest{SubmenuID: submenuID, Skip: 0, Limit: 5}).
		Return([]models.Dish{
			{ID: uuid.New(), SubmenuID: submenuID, Title: "Borscht", Price: "10.990"},
			{ID: uuid.New(), SubmenuID: submenuID, Title: "Pelmeni", Price: "10.999"},
		}, nil).Once()

	w := tr.do(http.MethodGet, dishURL(menuID, submenuID)+"?limit=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode[[]dto.DishResponse](t, w)
	require.Len(t, body, 2)
	assert.Equal(t, "10.99", body[0].Price)
	assert.Equal(t, "11.0", body[1].Price)
}

func TestCreateDish(t *testing.T) {
	tr := setupRouter(t)
	menuID, submenuID, id := uuid.New(), uuid.New(), uuid.New()
	tr.dishes.On("CreateDish", mock.Anything, &dto.CreateDishRequest{SubmenuID: submenuID, Title: "Borscht", Price: "15.99"}).
		Return(&models.Dish{ID: id, SubmenuID: submenuID, Title: "Borscht", Price: "15.99"}, nil).Once()

	w := tr.do(http.MethodPost, dishURL(menuID, submenuID), map[string]any{"title": "Borscht", "price": "15.99"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"`+id.String()+`","title":"Borscht","description":null,"price":"15.99","submenu_id":"`+submenuID.String()+`"}`, w.Body.String())
}

func TestCreateDish_InvalidPrice(t *testing.T) {
	tr := setupRouter(t)

	w := tr.do(http.MethodPost, dishURL(uuid.New(), uuid.New()), map[string]any{"title": "Borscht", "price": "cheap"})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[dto.ValidationErrorResponse](t, w)
	require.Len(t, body.Detail, 1)
	assert.Equal(t, []string{"body", "price"}, body.Detail[0].Loc)
	assert.Equal(t, "type_error.decimal", body.Detail[0].Type)
}

func TestCreateDish_MissingPrice(t *testing.T) {
	tr := setupRouter(t)

	w := tr.do(http.MethodPost, dishURL(uuid.New(), uuid.New()), map[string]any{"title": "Borscht"})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[dto.ValidationErrorResponse](t, w)
	assert.Equal(t, []string{"body", "price"}, body.Detail[0].Loc)
}

func TestGetDish_IgnoresAncestry(t *testing.T) {
	tr := setupRouter(t)
	id := uuid.New()
	tr.dishes.On("GetDish", mock.Anything, &dto.GetDishRequest{ID: id}).
		Return(&models.Dish{ID: id, SubmenuID: uuid.New(), Title: "Borscht", Price: "15.995"}, nil).Once()

	w := tr.do(http.MethodGet, dishURL(uuid.New(), uuid.New(), id.String()), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "15.99", decode[dto.DishResponse](t, w).Price)
}

func TestGetDish_InvalidAncestor(t *testing.T) {
	tr := setupRouter(t)

	w := tr.do(http.MethodGet, "/api/v1/menus/x/submenus/"+uuid.NewString()+"/dishes/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[dto.ValidationErrorResponse](t, w)
	assert.Equal(t, []string{"path", "target_menu_id"}, body.Detail[0].Loc)
}

func TestUpdateDish(t *testing.T) {
	tr := setupRouter(t)
	id := uuid.New()
	tr.dishes.On("UpdateDish", mock.Anything, &dto.UpdateDishRequest{ID: id, Price: ptrString("20.5")}).
		Return(&models.Dish{ID: id, Title: "Borscht", Price: "20.5"}, nil).Once()

	w := tr.do(http.MethodPatch, dishURL(uuid.New(), uuid.New(), id.String()), map[string]any{"price": "20.5"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "20.5", decode[dto.DishResponse](t, w).Price)
}

func TestDeleteDish_ThenNotFound(t *testing.T) {
	tr := setupRouter(t)
	menuID, submenuID, id := uuid.New(), uuid.New(), uuid.New()
	tr.dishes.On("DeleteDish", mock.Anything, &dto.DeleteDishRequest{ID: id}).Return(nil).Once()
	tr.dishes.On("DeleteDish", mock.Anything, &dto.DeleteDishRequest{ID: id}).
		Return(fmt.Errorf("deleting dish: %w", services.ErrDishNotFound)).Once()

	w := tr.do(http.MethodDelete, dishURL(menuID, submenuID, id.String()), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Dish deleted successfully"}`, w.Body.String())

	w = tr.do(http.MethodDelete, dishURL(menuID, submenuID, id.String()), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"dish not found"}`, w.Body.String())
}
