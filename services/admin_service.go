package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"BabyNest/models"
	"BabyNest/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const lowStockThreshold = 5

type UserStats struct {
	TotalParents  int64 `json:"totalParents"`
	TotalChildren int64 `json:"totalChildren"`
}

type ArtistStats struct {
	TotalArtists    int64                       `json:"totalArtists"`
	ActiveArtists   int64                       `json:"activeArtists"`
	TotalMusic      int64                       `json:"totalMusic"`
	TotalPaidMusic  int64                       `json:"totalPaidMusic"`
	TotalFreeMusic  int64                       `json:"totalFreeMusic"`
	TotalPurchases  int64                       `json:"totalPurchases"`
	TotalEarnings   float64                     `json:"totalEarnings"`
	RevenuePerMusic []repositories.MusicRevenue `json:"revenuePerMusic"`
}

type SupplierStats struct {
	TotalSuppliers   int64 `json:"totalSuppliers"`
	ActiveSuppliers  int64 `json:"activeSuppliers"`
	TotalProducts    int64 `json:"totalProducts"`
	LowStockProducts int64 `json:"lowStockProducts"`
}

type OrderStats struct {
	TotalOrders     int64                    `json:"totalOrders"`
	PendingOrders   int64                    `json:"pendingOrders"`
	CompletedOrders int64                    `json:"completedOrders"`
	CancelledOrders int64                    `json:"cancelledOrders"`
	MonthlyOrders   []repositories.DateCount `json:"monthlyOrders"`
}

type AdminDashboard struct {
	Users      UserStats     `json:"users"`
	Artists    ArtistStats   `json:"artists"`
	Suppliers  SupplierStats `json:"suppliers"`
	Orders     OrderStats    `json:"orders"`
	Milestones struct {
		TotalMilestones int64 `json:"totalMilestones"`
	} `json:"milestones"`
	Vaccinations struct {
		TotalVaccinations int64 `json:"totalVaccinations"`
	} `json:"vaccinations"`
}

type SupplierDashboard struct {
	TotalProducts     int64                         `json:"totalProducts"`
	TotalOrders       int64                         `json:"totalOrders"`
	TotalEarnings     float64                       `json:"totalEarnings"`
	AvgOrderValue     float64                       `json:"avgOrderValue"`
	PendingOrders     int64                         `json:"pendingOrders"`
	InProgressOrders  int64                         `json:"inProgressOrders"`
	CompletedOrders   int64                         `json:"completedOrders"`
	CancelledOrders   int64                         `json:"cancelledOrders"`
	PendingPayments   int64                         `json:"pendingPayments"`
	TotalQuantitySold int64                         `json:"totalQuantitySold"`
	RevenuePerProduct []repositories.ProductRevenue `json:"revenuePerProduct"`
	MonthlyOrders     []repositories.DateCount      `json:"monthlyOrders"`
	LowStockProducts  int64                         `json:"lowStockProducts"`
}

type ArtistDashboard struct {
	TotalMusic      int64                       `json:"totalMusic"`
	FreeMusicCount  int64                       `json:"freeMusicCount"`
	PaidMusicCount  int64                       `json:"paidMusicCount"`
	TotalPurchases  int64                       `json:"totalPurchases"`
	TotalFavorites  int64                       `json:"totalFavorites"`
	RevenuePerMusic []repositories.MusicRevenue `json:"revenuePerMusic"`
	MonthlyUploads  []repositories.DateCount    `json:"monthlyUploads"`
	TotalEarnings   float64                     `json:"totalEarnings"`
}

// VendorInput onboards a supplier or an artist. Every field but
// Subscription is required.
type VendorInput struct {
	Name          string
	CNIC          string
	Email         string
	Country       string
	State         string
	City          string
	Status        models.AccountStatus
	Subscription  *string
	CategoryID    string
	SubCategoryID string
}

type VendorUpdate struct {
	Name          *string
	CNIC          *string
	Email         *string
	Country       *string
	State         *string
	City          *string
	Status        *models.AccountStatus
	Subscription  *string
	CategoryID    *string
	SubCategoryID *string
}

// vendor points at the fields a supplier and an artist share.
type vendor struct {
	id      string
	role    models.OwnerRole
	name    *string
	email   *string
	status  *models.AccountStatus
	profile *models.VendorProfile
}

var vendorKinds = map[models.OwnerRole]models.CategoryKind{
	models.RoleSupplier: models.CategoryProduct,
	models.RoleArtist:   models.CategoryMusic,
}

var vendorLabels = map[models.OwnerRole]string{
	models.RoleSupplier: "Supplier",
	models.RoleArtist:   "Artist",
}

type AdminService struct {
	Stats        repositories.StatsRepository
	Vendors      repositories.VendorRepository
	Accounts     repositories.AccountRepository
	Categories   repositories.CategoryRepository
	Milestones   repositories.MilestoneRepository
	Vaccinations repositories.VaccinationRepository
	Orders       repositories.OrderRepository
	Email        EmailSender
	Clock        Clock
	log          *zap.Logger
}

func NewAdminService(
	stats repositories.StatsRepository,
	vendors repositories.VendorRepository,
	accounts repositories.AccountRepository,
	categories repositories.CategoryRepository,
	milestones repositories.MilestoneRepository,
	vaccinations repositories.VaccinationRepository,
	orders repositories.OrderRepository,
	email EmailSender,
	clock Clock,
	log *zap.Logger,
) *AdminService {
	return &AdminService{
		Stats:        stats,
		Vendors:      vendors,
		Accounts:     accounts,
		Categories:   categories,
		Milestones:   milestones,
		Vaccinations: vaccinations,
		Orders:       orders,
		Email:        email,
		Clock:        clock,
		log:          log,
	}
}

// Dashboard runs every count concurrently.
func (s *AdminService) Dashboard(ctx context.Context) (AdminDashboard, error) {
	var d AdminDashboard
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, table, where string, args ...interface{}) {
		g.Go(func() (err error) {
			*dst, err = s.Stats.Count(gctx, table, where, args...)
			return err
		})
	}
	live := "is_deleted = false"

	count(&d.Users.TotalParents, "parents", live)
	count(&d.Users.TotalChildren, "children", live)

	count(&d.Artists.TotalArtists, "artists", live)
	count(&d.Artists.ActiveArtists, "artists", live+" AND status = ?", models.StatusActive)
	count(&d.Artists.TotalMusic, "music", live)
	count(&d.Artists.TotalPaidMusic, "music", live+" AND type = ?", models.MusicPaid)
	count(&d.Artists.TotalFreeMusic, "music", live+" AND type = ?", models.MusicFree)
	g.Go(func() error {
		revenue, purchases, err := s.Stats.MusicRevenue(gctx, "")
		if err != nil {
			return err
		}
		d.Artists.RevenuePerMusic = revenue
		d.Artists.TotalPurchases = purchases
		for _, r := range revenue {
			d.Artists.TotalEarnings += r.Revenue
		}
		d.Artists.TotalEarnings = roundMoney(d.Artists.TotalEarnings)
		return nil
	})

	count(&d.Suppliers.TotalSuppliers, "suppliers", live)
	count(&d.Suppliers.ActiveSuppliers, "suppliers", live+" AND status = ?", models.StatusActive)
	count(&d.Suppliers.TotalProducts, "products", live)
	count(&d.Suppliers.LowStockProducts, "products", live+" AND quantity <= ?", lowStockThreshold)

	count(&d.Orders.TotalOrders, "orders", live)
	count(&d.Orders.PendingOrders, "orders", live+" AND order_status = ?", models.OrderPending)
	count(&d.Orders.CompletedOrders, "orders", live+" AND order_status = ?", models.OrderDelivered)
	count(&d.Orders.CancelledOrders, "orders", live+" AND order_status = ?", models.OrderCancelled)
	g.Go(func() (err error) {
		d.Orders.MonthlyOrders, err = s.Stats.CountPerDay(gctx, "orders", "created_at >= ? AND "+live, s.Clock().AddDate(0, -1, 0))
		return err
	})

	g.Go(func() (err error) {
		d.Milestones.TotalMilestones, err = s.Milestones.CountSubMilestones(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.Vaccinations.TotalVaccinations, err = s.Vaccinations.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return AdminDashboard{}, err
	}
	return d, nil
}

// ExportOrders returns the orders with the given status as an .xlsx file.
func (s *AdminService) ExportOrders(ctx context.Context, status models.OrderStatus) ([]byte, error) {
	orders, err := s.Orders.List(ctx, status)
	if err != nil {
		return nil, err
	}
	return ExportOrders(orders)
}

// SupplierDashboard summarises one supplier's catalogue and the order items
// placed against it.
func (s *AdminService) SupplierDashboard(ctx context.Context, supplierID string) (SupplierDashboard, error) {
	if _, err := s.Vendors.FindSupplier(ctx, supplierID); err != nil {
		return SupplierDashboard{}, notFoundOr(err, "Supplier not found")
	}

	var d SupplierDashboard
	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, table, where string, args ...interface{}) {
		g.Go(func() (err error) {
			*dst, err = s.Stats.Count(gctx, table, where, args...)
			return err
		})
	}

	items := "product_id IN (SELECT id FROM products WHERE supplier_id = ?)"
	onOrders := items + " AND order_id IN (SELECT id FROM orders WHERE is_deleted = false AND order_status IN ?)"
	count(&d.TotalProducts, "products", "supplier_id = ? AND is_deleted = false", supplierID)
	count(&d.LowStockProducts, "products", "supplier_id = ? AND is_deleted = false AND quantity <= ?", supplierID, lowStockThreshold)
	count(&d.TotalOrders, "order_items", items+" AND order_id IN (SELECT id FROM orders WHERE is_deleted = false)", supplierID)
	count(&d.PendingOrders, "order_items", onOrders, supplierID, []models.OrderStatus{models.OrderPending})
	count(&d.InProgressOrders, "order_items", onOrders, supplierID, []models.OrderStatus{models.OrderProcessing})
	count(&d.CompletedOrders, "order_items", onOrders, supplierID, []models.OrderStatus{models.OrderShipped, models.OrderDelivered})
	count(&d.CancelledOrders, "order_items", onOrders, supplierID, []models.OrderStatus{models.OrderCancelled})
	count(&d.PendingPayments, "order_items",
		items+" AND order_id IN (SELECT id FROM orders WHERE is_deleted = false AND payment_status = ?)", supplierID, models.PaymentPending)

	g.Go(func() error {
		rows, err := s.Stats.ProductRevenue(gctx, supplierID)
		if err != nil {
			return err
		}
		d.RevenuePerProduct = rows
		for _, r := range rows {
			d.TotalQuantitySold += r.QuantitySold
			d.TotalEarnings += r.Revenue
		}
		return nil
	})
	g.Go(func() (err error) {
		d.MonthlyOrders, err = s.Stats.CountPerDay(gctx, "order_items", items, supplierID)
		return err
	})

	if err := g.Wait(); err != nil {
		return SupplierDashboard{}, err
	}
	d.TotalEarnings = roundMoney(d.TotalEarnings)
	if d.TotalOrders > 0 {
		d.AvgOrderValue = roundMoney(d.TotalEarnings / float64(d.TotalOrders))
	}
	return d, nil
}

// ArtistDashboard summarises one artist's tracks, purchases and favorites.
func (s *AdminService) ArtistDashboard(ctx context.Context, artistID string) (ArtistDashboard, error) {
	if _, err := s.Vendors.FindArtist(ctx, artistID); err != nil {
		return ArtistDashboard{}, notFoundOr(err, "Artist not found")
	}

	var d ArtistDashboard
	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, table, where string, args ...interface{}) {
		g.Go(func() (err error) {
			*dst, err = s.Stats.Count(gctx, table, where, args...)
			return err
		})
	}

	tracks := "artist_id = ? AND is_deleted = false"
	count(&d.TotalMusic, "music", tracks, artistID)
	count(&d.FreeMusicCount, "music", tracks+" AND type = ?", artistID, models.MusicFree)
	count(&d.PaidMusicCount, "music", tracks+" AND type = ?", artistID, models.MusicPaid)
	count(&d.TotalFavorites, "music_favorites", "music_id IN (SELECT id FROM music WHERE "+tracks+")", artistID)

	g.Go(func() error {
		revenue, purchases, err := s.Stats.MusicRevenue(gctx, artistID)
		if err != nil {
			return err
		}
		d.RevenuePerMusic = revenue
		d.TotalPurchases = purchases
		for _, r := range revenue {
			d.TotalEarnings += r.Revenue
		}
		return nil
	})
	g.Go(func() (err error) {
		d.MonthlyUploads, err = s.Stats.CountPerDay(gctx, "music", tracks, artistID)
		return err
	})

	if err := g.Wait(); err != nil {
		return ArtistDashboard{}, err
	}
	d.TotalEarnings = roundMoney(d.TotalEarnings)
	return d, nil
}

func (s *AdminService) CreateSupplier(ctx context.Context, in VendorInput) (models.Supplier, error) {
	password, hash, err := s.prepareVendor(ctx, models.RoleSupplier, &in)
	if err != nil {
		return models.Supplier{}, err
	}
	supplier := models.Supplier{
		Name:          in.Name,
		Email:         in.Email,
		Password:      hash,
		Status:        in.Status,
		IsVerified:    true,
		VendorProfile: vendorProfile(in),
	}
	if err := s.Vendors.CreateSupplier(ctx, &supplier); err != nil {
		return models.Supplier{}, duplicateEmailOr(err, "create supplier")
	}
	s.sendCredentials(ctx, models.RoleSupplier, supplier.Name, supplier.Email, password)
	s.log.Info("supplier created", zap.String("supplier", supplier.ID))
	return supplier, nil
}

func (s *AdminService) ListSuppliers(ctx context.Context, search string) ([]models.Supplier, error) {
	return s.Vendors.ListSuppliers(ctx, search)
}

func (s *AdminService) UpdateSupplier(ctx context.Context, supplierID string, in VendorUpdate) (models.Supplier, error) {
	supplier, err := s.Vendors.FindSupplier(ctx, supplierID)
	if err != nil {
		return models.Supplier{}, notFoundOr(err, "Supplier not found")
	}
	err = s.applyVendorUpdate(ctx, vendor{
		id: supplier.ID, role: models.RoleSupplier,
		name: &supplier.Name, email: &supplier.Email, status: &supplier.Status, profile: &supplier.VendorProfile,
	}, in)
	if err != nil {
		return models.Supplier{}, err
	}
	if err := s.Vendors.SaveSupplier(ctx, &supplier); err != nil {
		return models.Supplier{}, duplicateEmailOr(err, "update supplier")
	}
	return supplier, nil
}

// DeleteSupplier soft-deletes the supplier together with its products.
func (s *AdminService) DeleteSupplier(ctx context.Context, supplierID string) error {
	if err := s.Vendors.DeleteSupplier(ctx, supplierID, s.Clock()); err != nil {
		return notFoundOr(err, "Supplier not found")
	}
	s.log.Info("supplier deleted", zap.String("supplier", supplierID))
	return nil
}

func (s *AdminService) CreateArtist(ctx context.Context, in VendorInput) (models.Artist, error) {
	password, hash, err := s.prepareVendor(ctx, models.RoleArtist, &in)
	if err != nil {
		return models.Artist{}, err
	}
	artist := models.Artist{
		Name:          in.Name,
		Email:         in.Email,
		Password:      hash,
		Status:        in.Status,
		IsVerified:    true,
		VendorProfile: vendorProfile(in),
	}
	if err := s.Vendors.CreateArtist(ctx, &artist); err != nil {
		return models.Artist{}, duplicateEmailOr(err, "create artist")
	}
	s.sendCredentials(ctx, models.RoleArtist, artist.Name, artist.Email, password)
	s.log.Info("artist created", zap.String("artist", artist.ID))
	return artist, nil
}

func (s *AdminService) ListArtists(ctx context.Context, search string) ([]models.Artist, error) {
	return s.Vendors.ListArtists(ctx, search)
}

func (s *AdminService) UpdateArtist(ctx context.Context, artistID string, in VendorUpdate) (models.Artist, error) {
	artist, err := s.Vendors.FindArtist(ctx, artistID)
	if err != nil {
		return models.Artist{}, notFoundOr(err, "Artist not found")
	}
	err = s.applyVendorUpdate(ctx, vendor{
		id: artist.ID, role: models.RoleArtist,
		name: &artist.Name, email: &artist.Email, status: &artist.Status, profile: &artist.VendorProfile,
	}, in)
	if err != nil {
		return models.Artist{}, err
	}
	if err := s.Vendors.SaveArtist(ctx, &artist); err != nil {
		return models.Artist{}, duplicateEmailOr(err, "update artist")
	}
	return artist, nil
}

// DeleteArtist soft-deletes the artist together with its music.
func (s *AdminService) DeleteArtist(ctx context.Context, artistID string) error {
	if err := s.Vendors.DeleteArtist(ctx, artistID, s.Clock()); err != nil {
		return notFoundOr(err, "Artist not found")
	}
	s.log.Info("artist deleted", zap.String("artist", artistID))
	return nil
}

// prepareVendor validates and normalises the input and returns a generated
// password with its hash.
func (s *AdminService) prepareVendor(ctx context.Context, role models.OwnerRole, in *VendorInput) (string, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	if in.Name == "" || in.Email == "" || in.CNIC == "" || in.Country == "" || in.State == "" ||
		in.City == "" || in.Status == "" || in.CategoryID == "" || in.SubCategoryID == "" {
		return "", "", Invalid("All fields are required")
	}
	if !validAccountStatus(in.Status) {
		return "", "", Invalid("Unknown account status")
	}
	if err := checkPlacement(ctx, s.Categories, vendorKinds[role], in.CategoryID, &in.SubCategoryID); err != nil {
		return "", "", err
	}
	if err := s.emailFree(ctx, role, in.Email, ""); err != nil {
		return "", "", err
	}

	password, err := GeneratePassword()
	if err != nil {
		return "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return password, string(hash), nil
}

func (s *AdminService) applyVendorUpdate(ctx context.Context, v vendor, in VendorUpdate) error {
	if in.Email != nil && normalizeEmail(*in.Email) != *v.email {
		email := normalizeEmail(*in.Email)
		if err := s.emailFree(ctx, v.role, email, v.id); err != nil {
			return err
		}
		*v.email = email
	}
	if in.Status != nil {
		if !validAccountStatus(*in.Status) {
			return Invalid("Unknown account status")
		}
		*v.status = *in.Status
	}
	if in.CategoryID != nil || in.SubCategoryID != nil {
		categoryID, subCategoryID := v.profile.CategoryID, v.profile.SubCategoryID
		if in.CategoryID != nil {
			categoryID = in.CategoryID
		}
		if in.SubCategoryID != nil {
			subCategoryID = in.SubCategoryID
		}
		if categoryID == nil {
			return Invalid("Category is required")
		}
		if err := checkPlacement(ctx, s.Categories, vendorKinds[v.role], *categoryID, subCategoryID); err != nil {
			return err
		}
		v.profile.CategoryID, v.profile.SubCategoryID = categoryID, subCategoryID
	}

	setText(v.name, in.Name)
	setText(&v.profile.CNIC, in.CNIC)
	setText(&v.profile.Country, in.Country)
	setText(&v.profile.State, in.State)
	setText(&v.profile.City, in.City)
	if in.Subscription != nil {
		v.profile.Subscription = in.Subscription
	}
	return nil
}

// emailFree fails when another live account of the role uses email.
func (s *AdminService) emailFree(ctx context.Context, role models.OwnerRole, email, exceptID string) error {
	existing, err := s.Accounts.FindByEmail(ctx, role, email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != exceptID:
		return Conflict("Email already exists")
	}
	return nil
}

func (s *AdminService) sendCredentials(ctx context.Context, role models.OwnerRole, name, email, password string) {
	s.Email.Send(ctx, email, EmailNewVendorAccount, map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     vendorLabels[role],
	})
}

func vendorProfile(in VendorInput) models.VendorProfile {
	categoryID, subCategoryID := in.CategoryID, in.SubCategoryID
	return models.VendorProfile{
		CNIC:          strings.TrimSpace(in.CNIC),
		Country:       strings.TrimSpace(in.Country),
		State:         strings.TrimSpace(in.State),
		City:          strings.TrimSpace(in.City),
		Subscription:  in.Subscription,
		CategoryID:    &categoryID,
		SubCategoryID: &subCategoryID,
	}
}

func validAccountStatus(status models.AccountStatus) bool {
	return status == models.StatusActive || status == models.StatusInactive
}

// setText overwrites dst with a non-blank trimmed value.
func setText(dst *string, value *string) {
	if value != nil && strings.TrimSpace(*value) != "" {
		*dst = strings.TrimSpace(*value)
	}
}

func duplicateEmailOr(err error, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Conflict("Email already exists")
	}
	return fmt.Errorf("%s: %w", op, err)
}
