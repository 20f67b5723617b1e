package services

import (
	"context"
	"testing"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"
	"BabyNest/repositories/mocks"
	"BabyNest/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var adminNow = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

type adminDeps struct {
	stats      *mocks.StatsRepository
	vendors    *mocks.VendorRepository
	accounts   *mocks.AccountRepository
	categories *mocks.CategoryRepository
	email      *recordingSender
}

func newAdminService() (*AdminService, adminDeps) {
	d := adminDeps{
		stats:      new(mocks.StatsRepository),
		vendors:    new(mocks.VendorRepository),
		accounts:   new(mocks.AccountRepository),
		categories: new(mocks.CategoryRepository),
		email:      &recordingSender{},
	}
	svc := NewAdminService(d.stats, d.vendors, d.accounts, d.categories,
		new(mocks.MilestoneRepository), new(mocks.VaccinationRepository), nil,
		d.email, fixedClock(adminNow), zap.NewNop())
	return svc, d
}

func supplierInput() VendorInput {
	return VendorInput{
		Name:          " Tiny Toys ",
		CNIC:          "12345-1234567-1",
		Email:         "Sales@TinyToys.com",
		Country:       "PK",
		State:         "Punjab",
		City:          "Lahore",
		Status:        models.StatusActive,
		CategoryID:    "cat-1",
		SubCategoryID: "sub-1",
	}
}

func TestCreateSupplierSendsCredentials(t *testing.T) {
	svc, d := newAdminService()

	d.categories.On("FindByID", "cat-1").Return(models.Category{ID: "cat-1", Kind: models.CategoryProduct}, nil)
	d.categories.On("FindSub", "sub-1").Return(models.SubCategory{ID: "sub-1", CategoryID: "cat-1"}, nil)
	d.accounts.On("FindByEmail", models.RoleSupplier, "sales@tinytoys.com").Return(models.Account{}, gorm.ErrRecordNotFound)
	d.vendors.On("CreateSupplier", mock.AnythingOfType("*models.Supplier")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Supplier).ID = "s-1"
	}).Return(nil)

	supplier, err := svc.CreateSupplier(context.Background(), supplierInput())
	require.NoError(t, err)
	assert.Equal(t, "Tiny Toys", supplier.Name)
	assert.True(t, supplier.IsVerified)
	require.NotNil(t, supplier.CategoryID)
	assert.Equal(t, "cat-1", *supplier.CategoryID)

	require.Len(t, d.email.sent, 1)
	sent := d.email.sent[0]
	assert.Equal(t, "sales@tinytoys.com", sent.to)
	assert.Equal(t, EmailNewVendorAccount, sent.tmpl)
	assert.Equal(t, "Supplier", sent.data["role"])
	assert.Len(t, sent.data["password"], 8)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(supplier.Password), []byte(sent.data["password"])))
}

func TestCreateSupplierRequiresAllFields(t *testing.T) {
	svc, d := newAdminService()

	in := supplierInput()
	in.City = ""
	_, err := svc.CreateSupplier(context.Background(), in)
	assert.True(t, IsKind(err, response.KindValidation))
	d.vendors.AssertNotCalled(t, "CreateSupplier", mock.Anything)
	assert.Empty(t, d.email.sent)
}

func TestCreateArtistRejectsTakenEmail(t *testing.T) {
	svc, d := newAdminService()

	d.categories.On("FindByID", "cat-1").Return(models.Category{ID: "cat-1", Kind: models.CategoryMusic}, nil)
	d.categories.On("FindSub", "sub-1").Return(models.SubCategory{ID: "sub-1", CategoryID: "cat-1"}, nil)
	d.accounts.On("FindByEmail", models.RoleArtist, "sales@tinytoys.com").Return(models.Account{ID: "a-9"}, nil)

	_, err := svc.CreateArtist(context.Background(), supplierInput())
	assert.True(t, IsKind(err, response.KindConflict))
	d.vendors.AssertNotCalled(t, "CreateArtist", mock.Anything)
	assert.Empty(t, d.email.sent)
}

func TestCreateArtistRejectsProductCategory(t *testing.T) {
	svc, d := newAdminService()

	d.categories.On("FindByID", "cat-1").Return(models.Category{ID: "cat-1", Kind: models.CategoryProduct}, nil)

	_, err := svc.CreateArtist(context.Background(), supplierInput())
	assert.True(t, IsKind(err, response.KindValidation))
}

func TestUpdateSupplierKeepsOwnEmail(t *testing.T) {
	svc, d := newAdminService()

	d.vendors.On("FindSupplier", "s-1").Return(models.Supplier{ID: "s-1", Name: "Tiny Toys", Email: "old@tinytoys.com"}, nil)
	d.accounts.On("FindByEmail", models.RoleSupplier, "new@tinytoys.com").Return(models.Account{ID: "s-1"}, nil)
	d.vendors.On("SaveSupplier", mock.AnythingOfType("*models.Supplier")).Return(nil)

	email := "New@TinyToys.com"
	blank := ""
	supplier, err := svc.UpdateSupplier(context.Background(), "s-1", VendorUpdate{Email: &email, Name: &blank})
	require.NoError(t, err)
	assert.Equal(t, "new@tinytoys.com", supplier.Email)
	assert.Equal(t, "Tiny Toys", supplier.Name)
}

func TestDeleteSupplierUnknown(t *testing.T) {
	svc, d := newAdminService()

	d.vendors.On("DeleteSupplier", "s-9", adminNow).Return(gorm.ErrRecordNotFound)

	err := svc.DeleteSupplier(context.Background(), "s-9")
	assert.True(t, IsKind(err, response.KindNotFound))
}

func TestDeleteArtistStampsClock(t *testing.T) {
	svc, d := newAdminService()

	d.vendors.On("DeleteArtist", "a-1", adminNow).Return(nil)

	require.NoError(t, svc.DeleteArtist(context.Background(), "a-1"))
	d.vendors.AssertExpectations(t)
}

func hasStatuses(want ...models.OrderStatus) interface{} {
	return mock.MatchedBy(func(args []interface{}) bool {
		if len(args) != 2 {
			return false
		}
		got, ok := args[1].([]models.OrderStatus)
		return ok && assert.ObjectsAreEqual(want, got)
	})
}

func TestSupplierDashboard(t *testing.T) {
	svc, d := newAdminService()

	d.vendors.On("FindSupplier", "s-1").Return(models.Supplier{ID: "s-1"}, nil)
	d.stats.On("Count", "order_items", mock.Anything, hasStatuses(models.OrderShipped, models.OrderDelivered)).Return(int64(2), nil)
	d.stats.On("Count", "order_items", mock.Anything, hasStatuses(models.OrderProcessing)).Return(int64(1), nil)
	d.stats.On("Count", "order_items", mock.Anything, mock.Anything).Return(int64(4), nil)
	d.stats.On("Count", "products", mock.Anything, mock.Anything).Return(int64(3), nil)
	d.stats.On("ProductRevenue", "s-1").Return([]repositories.ProductRevenue{
		{ProductID: "p-1", ProductName: "Rattle", QuantitySold: 3, Revenue: 30},
		{ProductID: "p-2", ProductName: "Bib", QuantitySold: 2, Revenue: 12.5},
	}, nil)
	d.stats.On("CountPerDay", "order_items", mock.Anything, []interface{}{"s-1"}).Return([]repositories.DateCount{{Date: "2024-06-30", Count: 4}}, nil)

	dash, err := svc.SupplierDashboard(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), dash.TotalProducts)
	assert.Equal(t, int64(4), dash.TotalOrders)
	assert.Equal(t, int64(2), dash.CompletedOrders)
	assert.Equal(t, int64(1), dash.InProgressOrders)
	assert.Equal(t, int64(5), dash.TotalQuantitySold)
	assert.Equal(t, 42.5, dash.TotalEarnings)
	assert.Equal(t, 10.63, dash.AvgOrderValue)
	assert.Len(t, dash.MonthlyOrders, 1)
}

func TestSupplierDashboardUnknownSupplier(t *testing.T) {
	svc, d := newAdminService()

	d.vendors.On("FindSupplier", "s-9").Return(models.Supplier{}, gorm.ErrRecordNotFound)

	_, err := svc.SupplierDashboard(context.Background(), "s-9")
	assert.True(t, IsKind(err, response.KindNotFound))
	d.stats.AssertNotCalled(t, "ProductRevenue", mock.Anything)
}

func TestArtistDashboard(t *testing.T) {
	svc, d := newAdminService()

	d.vendors.On("FindArtist", "a-1").Return(models.Artist{ID: "a-1"}, nil)
	d.stats.On("Count", "music", mock.Anything, []interface{}{"a-1", models.MusicPaid}).Return(int64(2), nil)
	d.stats.On("Count", "music", mock.Anything, []interface{}{"a-1", models.MusicFree}).Return(int64(3), nil)
	d.stats.On("Count", "music", mock.Anything, []interface{}{"a-1"}).Return(int64(5), nil)
	d.stats.On("Count", "music_favorites", mock.Anything, []interface{}{"a-1"}).Return(int64(7), nil)
	d.stats.On("MusicRevenue", "a-1").Return([]repositories.MusicRevenue{
		{MusicID: "m-1", Title: "Lullaby", Purchases: 3, Revenue: 2.97},
		{MusicID: "m-2", Title: "Rain", Purchases: 1, Revenue: 1.49},
	}, int64(4), nil)
	d.stats.On("CountPerDay", "music", mock.Anything, []interface{}{"a-1"}).Return([]repositories.DateCount{}, nil)

	dash, err := svc.ArtistDashboard(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), dash.TotalMusic)
	assert.Equal(t, int64(3), dash.FreeMusicCount)
	assert.Equal(t, int64(2), dash.PaidMusicCount)
	assert.Equal(t, int64(7), dash.TotalFavorites)
	assert.Equal(t, int64(4), dash.TotalPurchases)
	assert.Equal(t, 4.46, dash.TotalEarnings)
}
