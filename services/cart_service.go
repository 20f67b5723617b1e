package services

import (
	"context"

	"BabyNest/models"
	"BabyNest/repositories"
)

const (
	CartItemAdded   = "add"
	CartItemUpdated = "update"
)

type CartView struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

type CartService struct {
	Carts    repositories.CartRepository
	Products repositories.ProductRepository
}

func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository) *CartService {
	return &CartService{Carts: carts, Products: products}
}

func requireShopper(owner models.Owner) error {
	if !owner.IsShopper() {
		return Forbidden("Only parents and relatives can shop")
	}
	return nil
}

func (s *CartService) Get(ctx context.Context, owner models.Owner) (CartView, error) {
	if err := requireShopper(owner); err != nil {
		return CartView{}, err
	}
	items, err := s.Carts.ListItems(ctx, owner)
	if err != nil {
		return CartView{}, err
	}
	view := CartView{Items: items}
	for _, item := range items {
		view.TotalItems += item.Quantity
		view.TotalPrice += item.Price
	}
	view.TotalPrice = roundMoney(view.TotalPrice)
	return view, nil
}

// Add puts quantity units of a product in the cart. Adding a product already
// in the cart sums the quantities; the line price is always salePrice times
// quantity. The second return value is CartItemAdded or CartItemUpdated.
func (s *CartService) Add(ctx context.Context, owner models.Owner, productID string, quantity int) (models.CartItem, string, error) {
	if err := requireShopper(owner); err != nil {
		return models.CartItem{}, "", err
	}
	if quantity < 1 {
		return models.CartItem{}, "", Invalid("Quantity must be at least 1")
	}
	product, err := s.Products.FindActive(ctx, productID)
	if err != nil {
		return models.CartItem{}, "", notFoundOr(err, "Product not found")
	}
	cart, err := s.Carts.FindOrCreate(ctx, owner)
	if err != nil {
		return models.CartItem{}, "", err
	}
	existing, err := s.Carts.FindItem(ctx, cart.ID, product.ID)
	if err != nil {
		return models.CartItem{}, "", err
	}

	kind := CartItemAdded
	item := models.CartItem{CartID: cart.ID, ProductID: product.ID}
	if existing != nil {
		item = *existing
		kind = CartItemUpdated
	}
	item.Quantity += quantity
	item.Price = roundMoney(product.SalePrice * float64(item.Quantity))
	if err := s.Carts.SaveItem(ctx, &item); err != nil {
		return models.CartItem{}, "", err
	}
	item.Product = &product
	return item, kind, nil
}

// Reduce lowers an item's quantity, removing it once nothing is left. A nil
// item means it was removed.
func (s *CartService) Reduce(ctx context.Context, owner models.Owner, itemID string, reduceBy int) (*models.CartItem, error) {
	if reduceBy <= 0 {
		return nil, Invalid("Reduce amount must be positive")
	}
	if err := requireShopper(owner); err != nil {
		return nil, err
	}
	item, err := s.Carts.FindOwnedItem(ctx, owner, itemID)
	if err != nil {
		return nil, notFoundOr(err, "Cart item not found")
	}
	item.Quantity -= reduceBy
	if item.Quantity <= 0 {
		return nil, s.Carts.DeleteItem(ctx, item.ID)
	}
	unit := item.Price / float64(item.Quantity+reduceBy)
	if item.Product != nil {
		unit = item.Product.SalePrice
	}
	item.Price = roundMoney(unit * float64(item.Quantity))
	if err := s.Carts.SaveItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartService) Remove(ctx context.Context, owner models.Owner, itemID string) error {
	if err := requireShopper(owner); err != nil {
		return err
	}
	item, err := s.Carts.FindOwnedItem(ctx, owner, itemID)
	if err != nil {
		return notFoundOr(err, "Cart item not found")
	}
	return s.Carts.DeleteItem(ctx, item.ID)
}
