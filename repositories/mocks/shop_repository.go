package mocks

import (
	"context"

	"BabyNest/models"
	"BabyNest/repositories"

	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) FindOrCreate(ctx context.Context, owner models.Owner) (models.Cart, error) {
	args := m.Called(owner)
	return args.Get(0).(models.Cart), args.Error(1)
}

func (m *CartRepository) FindItem(ctx context.Context, cartID, productID string) (*models.CartItem, error) {
	args := m.Called(cartID, productID)
	item, _ := args.Get(0).(*models.CartItem)
	return item, args.Error(1)
}

func (m *CartRepository) FindOwnedItem(ctx context.Context, owner models.Owner, itemID string) (models.CartItem, error) {
	args := m.Called(owner, itemID)
	return args.Get(0).(models.CartItem), args.Error(1)
}

func (m *CartRepository) SaveItem(ctx context.Context, item *models.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *CartRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(itemID)
	return args.Error(0)
}

func (m *CartRepository) ListItems(ctx context.Context, owner models.Owner) ([]models.CartItem, error) {
	args := m.Called(owner)
	return args.Get(0).([]models.CartItem), args.Error(1)
}

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *ProductRepository) FindActive(ctx context.Context, id string) (models.Product, error) {
	args := m.Called(id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *ProductRepository) List(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Error(1)
}
