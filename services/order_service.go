package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"

	"go.uber.org/zap"
)

type OrderItemInput struct {
	ProductID string
	Quantity  int
	Price     float64
}

type OrderInput struct {
	ShippingAddress string
	TotalPrice      float64
	OrderStatus     models.OrderStatus
	PaymentStatus   models.PaymentStatus
	Items           []OrderItemInput
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// TrackingNumber is "ORD-" followed by the last six digits of the unix
// millisecond timestamp and four random digits.
func TrackingNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%06d%04d", now.UnixMilli()%1000000, n.Int64()), nil
}

type OrderService struct {
	Orders   repositories.OrderRepository
	Products repositories.ProductRepository
	Messages MessageCreator
	Clock    Clock
	log      *zap.Logger
}

func NewOrderService(orders repositories.OrderRepository, products repositories.ProductRepository, messages MessageCreator, clock Clock, log *zap.Logger) *OrderService {
	return &OrderService{Orders: orders, Products: products, Messages: messages, Clock: clock, log: log}
}

// Create stores the order with its items and empties the shopper's cart.
func (s *OrderService) Create(ctx context.Context, owner models.Owner, in OrderInput) (models.Order, error) {
	if err := requireShopper(owner); err != nil {
		return models.Order{}, err
	}
	if len(in.Items) == 0 {
		return models.Order{}, Invalid("Order must contain at least one item")
	}
	tracking, err := TrackingNumber(s.Clock())
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		TrackingNumber:  tracking,
		OwnerRefs:       models.NewOwnerRefs(owner),
		ShippingAddress: in.ShippingAddress,
		TotalPrice:      in.TotalPrice,
		OrderStatus:     in.OrderStatus,
		PaymentStatus:   in.PaymentStatus,
	}
	if order.OrderStatus == "" {
		order.OrderStatus = models.OrderPending
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentPending
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return models.Order{}, Invalid("Item quantity must be at least 1")
		}
		if _, err := s.Products.FindActive(ctx, it.ProductID); err != nil {
			return models.Order{}, notFoundOr(err, "Product not found")
		}
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	if err := s.Orders.Create(ctx, &order); err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

func (s *OrderService) ListForOwner(ctx context.Context, owner models.Owner) ([]models.Order, error) {
	if err := requireShopper(owner); err != nil {
		return nil, err
	}
	return s.Orders.ListForOwner(ctx, owner)
}

func (s *OrderService) List(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return s.Orders.List(ctx, status)
}

// UpdateStatus changes an order's status and tells its owner.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, error) {
	order, err := s.Orders.FindByID(ctx, orderID)
	if err != nil {
		return models.Order{}, notFoundOr(err, "Order not found")
	}
	if err := s.Orders.UpdateStatus(ctx, order.ID, status); err != nil {
		return models.Order{}, err
	}
	order.OrderStatus = status

	if owner, ok := order.OwnerRefs.Owner(); ok {
		description := fmt.Sprintf("Your order %s is now %s.", order.TrackingNumber, status)
		if _, err := s.Messages.CreateMessage(ctx, "Order Status Updated", description, owner); err != nil {
			s.log.Warn("order message not stored", zap.String("order", order.ID), zap.Error(err))
		}
	}
	return order, nil
}
