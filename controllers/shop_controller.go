package controllers

import (
	"context"

	"BabyNest/models"
	"BabyNest/response"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShopperResolver interface {
	ResolveShopper(ctx context.Context, id string) (models.Owner, error)
}

// ShopController serves carts, orders, favorites and music purchases of a shopper.
type ShopController struct {
	shoppers  ShopperResolver
	carts     CartUseCase
	orders    OrderUseCase
	favorites FavoriteUseCase
	purchases PurchaseUseCase
	log       *zap.Logger
}

func NewShopController(shoppers ShopperResolver, carts CartUseCase, orders OrderUseCase, favorites FavoriteUseCase, purchases PurchaseUseCase, log *zap.Logger) *ShopController {
	return &ShopController{shoppers: shoppers, carts: carts, orders: orders, favorites: favorites, purchases: purchases, log: log}
}

// shopper is the :ownerId of the path. Callers act for themselves; admins may
// act for anyone.
func (ctl *ShopController) shopper(c *gin.Context) (models.Owner, bool) {
	me := caller(c)
	id := c.Param("ownerId")
	if me.ID == id && me.Role == models.RoleRelative {
		// A removed relative's token stays valid until it expires.
		return ctl.liveRelative(c, me)
	}
	if me.ID == id {
		return me, true
	}
	if me.Role != models.RoleAdmin {
		response.Forbidden(c, "You do not have access to this resource")
		return models.Owner{}, false
	}
	owner, err := ctl.shoppers.ResolveShopper(c.Request.Context(), id)
	if err != nil {
		fail(c, ctl.log, err)
		return models.Owner{}, false
	}
	return owner, true
}

func (ctl *ShopController) liveRelative(c *gin.Context, me models.Owner) (models.Owner, bool) {
	owner, err := ctl.shoppers.ResolveShopper(c.Request.Context(), me.ID)
	switch {
	case services.IsKind(err, response.KindNotFound):
		response.Forbidden(c, "Your access has been revoked")
		return models.Owner{}, false
	case err != nil:
		fail(c, ctl.log, err)
		return models.Owner{}, false
	case owner != me:
		response.Forbidden(c, "You do not have access to this resource")
		return models.Owner{}, false
	}
	return me, true
}

func (ctl *ShopController) GetCart(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	cart, err := ctl.carts.Get(c.Request.Context(), owner)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Cart fetched successfully", cart)
}

func (ctl *ShopController) AddToCart(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
	}
	if !response.Bind(c, &input) {
		return
	}
	item, kind, err := ctl.carts.Add(c.Request.Context(), owner, input.ProductID, input.Quantity)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	if kind == services.CartItemUpdated {
		response.OK(c, "Cart item updated successfully", gin.H{"type": kind, "item": item})
		return
	}
	response.Created(c, "Product added to cart successfully", gin.H{"type": kind, "item": item})
}

func (ctl *ShopController) ReduceCartItem(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	var input struct {
		ReduceBy int `json:"reduceBy" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	item, err := ctl.carts.Reduce(c.Request.Context(), owner, c.Param("itemId"), input.ReduceBy)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	if item == nil {
		response.OK(c, "Cart item removed successfully", nil)
		return
	}
	response.OK(c, "Cart item updated successfully", item)
}

func (ctl *ShopController) RemoveCartItem(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	if err := ctl.carts.Remove(c.Request.Context(), owner, c.Param("itemId")); err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Cart item removed successfully", nil)
}

func (ctl *ShopController) CreateOrder(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	var input struct {
		ShippingAddress string               `json:"shippingAddress" binding:"required"`
		TotalPrice      float64              `json:"totalPrice" binding:"gte=0"`
		OrderStatus     models.OrderStatus   `json:"orderStatus" binding:"omitempty,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
		PaymentStatus   models.PaymentStatus `json:"paymentStatus" binding:"omitempty,oneof=PENDING PAID FAILED"`
		OrderItems      []struct {
			ProductID string  `json:"productId" binding:"required"`
			Quantity  int     `json:"quantity" binding:"required,min=1"`
			Price     float64 `json:"price" binding:"gte=0"`
		} `json:"orderItems" binding:"required,min=1,dive"`
	}
	if !response.Bind(c, &input) {
		return
	}

	in := services.OrderInput{
		ShippingAddress: input.ShippingAddress,
		TotalPrice:      input.TotalPrice,
		OrderStatus:     input.OrderStatus,
		PaymentStatus:   input.PaymentStatus,
	}
	for _, it := range input.OrderItems {
		in.Items = append(in.Items, services.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	order, err := ctl.orders.Create(c.Request.Context(), owner, in)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Order created successfully", order)
}

func (ctl *ShopController) ListOrders(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	orders, err := ctl.orders.ListForOwner(c.Request.Context(), owner)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Orders fetched successfully", orders)
}

func (ctl *ShopController) ToggleProductFavorite(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	var input struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	fav, added, err := ctl.favorites.ToggleProduct(c.Request.Context(), owner, input.ProductID)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	writeToggle(c, fav, added)
}

func (ctl *ShopController) ListProductFavorites(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	favs, err := ctl.favorites.ListProducts(c.Request.Context(), owner)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Favorites fetched successfully", favs)
}

func (ctl *ShopController) ToggleMusicFavorite(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	var input struct {
		MusicID string `json:"musicId" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	fav, added, err := ctl.favorites.ToggleMusic(c.Request.Context(), owner, input.MusicID)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	writeToggle(c, fav, added)
}

func (ctl *ShopController) ListMusicFavorites(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	favs, err := ctl.favorites.ListMusic(c.Request.Context(), owner)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Favorites fetched successfully", favs)
}

func writeToggle(c *gin.Context, fav interface{}, added bool) {
	if added {
		response.Created(c, "Added to favorites", fav)
		return
	}
	response.OK(c, "Removed from favorites", nil)
}

func (ctl *ShopController) PurchaseMusic(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	var input struct {
		MusicID string `json:"musicId" binding:"required"`
	}
	if !response.Bind(c, &input) {
		return
	}
	purchase, err := ctl.purchases.PurchaseMusic(c.Request.Context(), owner, input.MusicID)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.Created(c, "Music purchased successfully", purchase)
}

func (ctl *ShopController) ListPurchases(c *gin.Context) {
	owner, ok := ctl.shopper(c)
	if !ok {
		return
	}
	purchases, err := ctl.purchases.List(c.Request.Context(), owner)
	if err != nil {
		fail(c, ctl.log, err)
		return
	}
	response.OK(c, "Purchased music fetched successfully", purchases)
}
