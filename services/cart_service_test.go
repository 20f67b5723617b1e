package services

import (
	"context"
	"testing"

	"BabyNest/models"
	"BabyNest/repositories/mocks"
	"BabyNest/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddToCartMergesQuantities(t *testing.T) {
	carts := new(mocks.CartRepository)
	products := new(mocks.ProductRepository)
	svc := NewCartService(carts, products)
	owner := models.ParentOwner("p-1")

	products.On("FindActive", "prod-1").Return(models.Product{ID: "prod-1", Price: 15, SalePrice: 12.5}, nil)
	carts.On("FindOrCreate", owner).Return(models.Cart{ID: "cart-1"}, nil)
	carts.On("FindItem", "cart-1", "prod-1").Return(&models.CartItem{ID: "item-1", CartID: "cart-1", ProductID: "prod-1", Quantity: 2, Price: 25}, nil)
	carts.On("SaveItem", mock.AnythingOfType("*models.CartItem")).Return(nil)

	item, kind, err := svc.Add(context.Background(), owner, "prod-1", 3)
	require.NoError(t, err)
	assert.Equal(t, CartItemUpdated, kind)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, 62.5, item.Price)
}

func TestAddToCartNewItem(t *testing.T) {
	carts := new(mocks.CartRepository)
	products := new(mocks.ProductRepository)
	svc := NewCartService(carts, products)
	owner := models.RelativeOwner("r-1")

	products.On("FindActive", "prod-1").Return(models.Product{ID: "prod-1", SalePrice: 9.99}, nil)
	carts.On("FindOrCreate", owner).Return(models.Cart{ID: "cart-2"}, nil)
	carts.On("FindItem", "cart-2", "prod-1").Return(nil, nil)
	carts.On("SaveItem", mock.AnythingOfType("*models.CartItem")).Return(nil)

	item, kind, err := svc.Add(context.Background(), owner, "prod-1", 2)
	require.NoError(t, err)
	assert.Equal(t, CartItemAdded, kind)
	assert.Equal(t, 19.98, item.Price)
}

func TestAddToCartRejectsSellers(t *testing.T) {
	svc := NewCartService(new(mocks.CartRepository), new(mocks.ProductRepository))

	_, _, err := svc.Add(context.Background(), models.Owner{Role: models.RoleArtist, ID: "a-1"}, "prod-1", 1)
	assert.True(t, IsKind(err, response.KindForbidden))
}

func TestReduceCartItem(t *testing.T) {
	owner := models.ParentOwner("p-1")
	product := &models.Product{ID: "prod-1", SalePrice: 4}

	t.Run("non-positive amount", func(t *testing.T) {
		svc := NewCartService(new(mocks.CartRepository), new(mocks.ProductRepository))
		for _, n := range []int{0, -2} {
			_, err := svc.Reduce(context.Background(), owner, "item-1", n)
			assert.True(t, IsKind(err, response.KindValidation))
		}
	})

	t.Run("partial", func(t *testing.T) {
		carts := new(mocks.CartRepository)
		svc := NewCartService(carts, new(mocks.ProductRepository))
		carts.On("FindOwnedItem", owner, "item-1").Return(models.CartItem{ID: "item-1", Quantity: 5, Price: 20, Product: product}, nil)
		carts.On("SaveItem", mock.AnythingOfType("*models.CartItem")).Return(nil)

		item, err := svc.Reduce(context.Background(), owner, "item-1", 2)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 3, item.Quantity)
		assert.Equal(t, 12.0, item.Price)
	})

	t.Run("to zero removes", func(t *testing.T) {
		carts := new(mocks.CartRepository)
		svc := NewCartService(carts, new(mocks.ProductRepository))
		carts.On("FindOwnedItem", owner, "item-1").Return(models.CartItem{ID: "item-1", Quantity: 2, Price: 8, Product: product}, nil)
		carts.On("DeleteItem", "item-1").Return(nil)

		item, err := svc.Reduce(context.Background(), owner, "item-1", 5)
		require.NoError(t, err)
		assert.Nil(t, item)
		carts.AssertExpectations(t)
	})
}

func TestGetCartTotals(t *testing.T) {
	carts := new(mocks.CartRepository)
	svc := NewCartService(carts, new(mocks.ProductRepository))
	owner := models.ParentOwner("p-1")

	carts.On("ListItems", owner).Return([]models.CartItem{
		{Quantity: 2, Price: 10.1},
		{Quantity: 1, Price: 0.2},
	}, nil)

	view, err := svc.Get(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 3, view.TotalItems)
	assert.Equal(t, 10.3, view.TotalPrice)
}
