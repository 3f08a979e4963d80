package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"restaurant-api/internal/api/handlers"
	"restaurant-api/internal/api/routes"
	"restaurant-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testRouter struct {
	engine   *gin.Engine
	menus    *MockMenuService
	submenus *MockSubmenuService
	dishes   *MockDishService
}

func setupRouter(t *testing.T) *testRouter {
	t.Helper()
	gin.SetMode(gin.TestMode)

	v, err := dto.NewValidator()
	require.NoError(t, err)

	tr := &testRouter{
		engine:   gin.New(),
		menus:    new(MockMenuService),
		submenus: new(MockSubmenuService),
		dishes:   new(MockDishService),
	}
	api := tr.engine.Group("/api/v1")
	routes.RegisterMenuRoutes(api, handlers.NewMenuHandler(tr.menus, v), nil)
	routes.RegisterSubmenuRoutes(api, handlers.NewSubmenuHandler(tr.submenus, v), nil)
	routes.RegisterDishRoutes(api, handlers.NewDishHandler(tr.dishes, v), nil)

	t.Cleanup(func() {
		tr.menus.AssertExpectations(t)
		tr.submenus.AssertExpectations(t)
		tr.dishes.AssertExpectations(t)
	})
	return tr
}

func (tr *testRouter) do(method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	tr.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func ptrString(s string) *string { return &s }
