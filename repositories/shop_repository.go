package repositories

import (
	"context"

	"BabyNest/models"
)

type CartRepository interface {
	FindOrCreate(ctx context.Context, owner models.Owner) (models.Cart, error)
	FindItem(ctx context.Context, cartID, productID string) (*models.CartItem, error)
	FindOwnedItem(ctx context.Context, owner models.Owner, itemID string) (models.CartItem, error)
	SaveItem(ctx context.Context, item *models.CartItem) error
	DeleteItem(ctx context.Context, itemID string) error
	ListItems(ctx context.Context, owner models.Owner) ([]models.CartItem, error)
}

type OrderRepository interface {
	// Create inserts the order with its items and empties the owner's cart.
	Create(ctx context.Context, order *models.Order) error
	ListForOwner(ctx context.Context, owner models.Owner) ([]models.Order, error)
	List(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error
}

type FavoriteRepository interface {
	// ToggleProduct removes an existing favorite or adds a new one and reports which.
	ToggleProduct(ctx context.Context, owner models.Owner, productID string) (*models.ProductFavorite, bool, error)
	ListProducts(ctx context.Context, owner models.Owner) ([]models.ProductFavorite, error)
	ToggleMusic(ctx context.Context, owner models.Owner, musicID string) (*models.MusicFavorite, bool, error)
	ListMusic(ctx context.Context, owner models.Owner) ([]models.MusicFavorite, error)
}

type PurchaseRepository interface {
	Exists(ctx context.Context, owner models.Owner, musicID string) (bool, error)
	Create(ctx context.Context, purchase *models.PurchasedMusic) error
	List(ctx context.Context, owner models.Owner) ([]models.PurchasedMusic, error)
}
