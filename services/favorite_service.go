package services

import (
	"context"

	"BabyNest/models"
	"BabyNest/repositories"
)

type FavoriteService struct {
	Favorites repositories.FavoriteRepository
	Products  repositories.ProductRepository
	Music     repositories.MusicRepository
}

func NewFavoriteService(favorites repositories.FavoriteRepository, products repositories.ProductRepository, music repositories.MusicRepository) *FavoriteService {
	return &FavoriteService{Favorites: favorites, Products: products, Music: music}
}

// ToggleProduct adds the product to the owner's favorites or removes it when
// already there. It reports whether the product was added.
func (s *FavoriteService) ToggleProduct(ctx context.Context, owner models.Owner, productID string) (*models.ProductFavorite, bool, error) {
	if err := requireShopper(owner); err != nil {
		return nil, false, err
	}
	if _, err := s.Products.FindActive(ctx, productID); err != nil {
		return nil, false, notFoundOr(err, "Product not found")
	}
	return s.Favorites.ToggleProduct(ctx, owner, productID)
}

func (s *FavoriteService) ListProducts(ctx context.Context, owner models.Owner) ([]models.ProductFavorite, error) {
	return s.Favorites.ListProducts(ctx, owner)
}

func (s *FavoriteService) ToggleMusic(ctx context.Context, owner models.Owner, musicID string) (*models.MusicFavorite, bool, error) {
	if err := requireShopper(owner); err != nil {
		return nil, false, err
	}
	if _, err := s.Music.FindActive(ctx, musicID); err != nil {
		return nil, false, notFoundOr(err, "Music not found")
	}
	return s.Favorites.ToggleMusic(ctx, owner, musicID)
}

func (s *FavoriteService) ListMusic(ctx context.Context, owner models.Owner) ([]models.MusicFavorite, error) {
	return s.Favorites.ListMusic(ctx, owner)
}

type PurchaseService struct {
	Purchases repositories.PurchaseRepository
	Music     repositories.MusicRepository
	Clock     Clock
}

func NewPurchaseService(purchases repositories.PurchaseRepository, music repositories.MusicRepository, clock Clock) *PurchaseService {
	return &PurchaseService{Purchases: purchases, Music: music, Clock: clock}
}

// PurchaseMusic records a paid track for the owner. Free tracks need no
// purchase and count as already owned.
func (s *PurchaseService) PurchaseMusic(ctx context.Context, owner models.Owner, musicID string) (models.PurchasedMusic, error) {
	if err := requireShopper(owner); err != nil {
		return models.PurchasedMusic{}, err
	}
	music, err := s.Music.FindActive(ctx, musicID)
	if err != nil {
		return models.PurchasedMusic{}, notFoundOr(err, "Music not found")
	}
	if music.Type == models.MusicFree {
		return models.PurchasedMusic{}, Conflict("Music already purchased")
	}
	exists, err := s.Purchases.Exists(ctx, owner, musicID)
	if err != nil {
		return models.PurchasedMusic{}, err
	}
	if exists {
		return models.PurchasedMusic{}, Conflict("Music already purchased")
	}

	purchase := models.PurchasedMusic{
		OwnerRefs:   models.NewOwnerRefs(owner),
		MusicID:     musicID,
		PurchasedAt: s.Clock(),
	}
	if err := s.Purchases.Create(ctx, &purchase); err != nil {
		return models.PurchasedMusic{}, err
	}
	purchase.Music = &music
	return purchase, nil
}

func (s *PurchaseService) List(ctx context.Context, owner models.Owner) ([]models.PurchasedMusic, error) {
	return s.Purchases.List(ctx, owner)
}
