package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCarts struct {
	mock.Mock
}

func (m *mockCarts) Get(ctx context.Context, owner models.Owner) (services.CartView, error) {
	args := m.Called(owner)
	return args.Get(0).(services.CartView), args.Error(1)
}

func (m *mockCarts) Add(ctx context.Context, owner models.Owner, productID string, quantity int) (models.CartItem, string, error) {
	args := m.Called(owner, productID, quantity)
	return args.Get(0).(models.CartItem), args.String(1), args.Error(2)
}

func (m *mockCarts) Reduce(ctx context.Context, owner models.Owner, itemID string, reduceBy int) (*models.CartItem, error) {
	args := m.Called(owner, itemID, reduceBy)
	item, _ := args.Get(0).(*models.CartItem)
	return item, args.Error(1)
}

func (m *mockCarts) Remove(ctx context.Context, owner models.Owner, itemID string) error {
	return m.Called(owner, itemID).Error(0)
}

type mockShoppers struct {
	mock.Mock
}

func (m *mockShoppers) ResolveShopper(ctx context.Context, id string) (models.Owner, error) {
	args := m.Called(id)
	return args.Get(0).(models.Owner), args.Error(1)
}

func setupShopRouter(ctl *ShopController, as models.Owner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("claims", &services.Claims{ID: as.ID, Role: as.Role})
		c.Next()
	})
	g := r.Group("/shoppers/:ownerId")
	g.GET("/cart", ctl.GetCart)
	g.POST("/cart", ctl.AddToCart)
	g.PATCH("/cart/:itemId", ctl.ReduceCartItem)
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, response.Envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env response.Envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestAddToCartStatus(t *testing.T) {
	owner := models.ParentOwner("p-1")
	tests := []struct {
		name string
		kind string
		want int
	}{
		{"new item", services.CartItemAdded, http.StatusCreated},
		{"merged item", services.CartItemUpdated, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := new(mockCarts)
			carts.On("Add", owner, "prod-1", 2).Return(models.CartItem{ID: "item-1", Quantity: 2}, tt.kind, nil)
			r := setupShopRouter(NewShopController(new(mockShoppers), carts, nil, nil, nil, zap.NewNop()), owner)

			w, env := doJSON(r, http.MethodPost, "/shoppers/p-1/cart", gin.H{"productId": "prod-1", "quantity": 2})
			assert.Equal(t, tt.want, w.Code)
			assert.True(t, env.Success)
			data, ok := env.Data.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, tt.kind, data["type"])
		})
	}
}

func TestAddToCartValidation(t *testing.T) {
	owner := models.ParentOwner("p-1")
	carts := new(mockCarts)
	r := setupShopRouter(NewShopController(new(mockShoppers), carts, nil, nil, nil, zap.NewNop()), owner)

	w, env := doJSON(r, http.MethodPost, "/shoppers/p-1/cart", gin.H{"productId": "prod-1", "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	carts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestShopperForOtherAccount(t *testing.T) {
	t.Run("non admin is forbidden", func(t *testing.T) {
		carts := new(mockCarts)
		r := setupShopRouter(NewShopController(new(mockShoppers), carts, nil, nil, nil, zap.NewNop()), models.ParentOwner("p-1"))

		w, _ := doJSON(r, http.MethodGet, "/shoppers/p-2/cart", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		carts.AssertNotCalled(t, "Get", mock.Anything)
	})

	t.Run("admin acts for relative", func(t *testing.T) {
		carts := new(mockCarts)
		shoppers := new(mockShoppers)
		relative := models.RelativeOwner("r-1")
		shoppers.On("ResolveShopper", "r-1").Return(relative, nil)
		carts.On("Get", relative).Return(services.CartView{TotalItems: 3}, nil)
		r := setupShopRouter(NewShopController(shoppers, carts, nil, nil, nil, zap.NewNop()), models.AdminOwner("a-1"))

		w, env := doJSON(r, http.MethodGet, "/shoppers/r-1/cart", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Cart fetched successfully", env.Message)
		carts.AssertExpectations(t)
	})
}

func TestReduceCartItemErrors(t *testing.T) {
	owner := models.RelativeOwner("r-1")
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", services.NotFound("Cart item not found"), http.StatusNotFound},
		{"invalid", services.Invalid("Reduce amount must be positive"), http.StatusBadRequest},
		{"unclassified", errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := new(mockCarts)
			shoppers := new(mockShoppers)
			shoppers.On("ResolveShopper", "r-1").Return(owner, nil)
			carts.On("Reduce", owner, "item-1", 2).Return(nil, tt.err)
			r := setupShopRouter(NewShopController(shoppers, carts, nil, nil, nil, zap.NewNop()), owner)

			w, _ := doJSON(r, http.MethodPatch, "/shoppers/r-1/cart/item-1", gin.H{"reduceBy": 2})
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRemovedRelativeLosesShopAccess(t *testing.T) {
	relative := models.RelativeOwner("r-1")

	t.Run("soft-deleted relation is forbidden", func(t *testing.T) {
		carts := new(mockCarts)
		shoppers := new(mockShoppers)
		shoppers.On("ResolveShopper", "r-1").Return(models.Owner{}, services.NotFound("User not found"))
		r := setupShopRouter(NewShopController(shoppers, carts, nil, nil, nil, zap.NewNop()), relative)

		w, env := doJSON(r, http.MethodGet, "/shoppers/r-1/cart", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Your access has been revoked", env.Message)
		carts.AssertNotCalled(t, "Get", mock.Anything)
	})

	t.Run("live relation shops for itself", func(t *testing.T) {
		carts := new(mockCarts)
		shoppers := new(mockShoppers)
		shoppers.On("ResolveShopper", "r-1").Return(relative, nil)
		carts.On("Get", relative).Return(services.CartView{TotalItems: 1}, nil)
		r := setupShopRouter(NewShopController(shoppers, carts, nil, nil, nil, zap.NewNop()), relative)

		w, _ := doJSON(r, http.MethodGet, "/shoppers/r-1/cart", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		carts.AssertExpectations(t)
	})

	t.Run("parents skip the lookup", func(t *testing.T) {
		carts := new(mockCarts)
		shoppers := new(mockShoppers)
		parent := models.ParentOwner("p-1")
		carts.On("Get", parent).Return(services.CartView{}, nil)
		r := setupShopRouter(NewShopController(shoppers, carts, nil, nil, nil, zap.NewNop()), parent)

		w, _ := doJSON(r, http.MethodGet, "/shoppers/p-1/cart", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		shoppers.AssertNotCalled(t, "ResolveShopper", mock.Anything)
	})
}
