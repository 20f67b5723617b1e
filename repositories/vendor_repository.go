package repositories

import (
	"context"
	"time"

	"BabyNest/models"
)

// VendorRepository manages the supplier and artist accounts admins onboard.
// List methods match search case-insensitively against the name.
type VendorRepository interface {
	CreateSupplier(ctx context.Context, supplier *models.Supplier) error
	FindSupplier(ctx context.Context, id string) (models.Supplier, error)
	ListSuppliers(ctx context.Context, search string) ([]models.Supplier, error)
	SaveSupplier(ctx context.Context, supplier *models.Supplier) error
	// DeleteSupplier soft-deletes the supplier and every product it listed in one transaction.
	DeleteSupplier(ctx context.Context, id string, at time.Time) error

	CreateArtist(ctx context.Context, artist *models.Artist) error
	FindArtist(ctx context.Context, id string) (models.Artist, error)
	ListArtists(ctx context.Context, search string) ([]models.Artist, error)
	SaveArtist(ctx context.Context, artist *models.Artist) error
	// DeleteArtist soft-deletes the artist and every track it uploaded in one transaction.
	DeleteArtist(ctx context.Context, id string, at time.Time) error
}
