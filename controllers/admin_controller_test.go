package controllers

import (
	"context"
	"net/http"
	"testing"

	"BabyNest/models"
	"BabyNest/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// mockAdmin implements only the vendor calls; the rest panic through the nil interface.
type mockAdmin struct {
	AdminUseCase
	mock.Mock
}

func (m *mockAdmin) CreateSupplier(ctx context.Context, in services.VendorInput) (models.Supplier, error) {
	args := m.Called(in)
	return args.Get(0).(models.Supplier), args.Error(1)
}

func (m *mockAdmin) DeleteArtist(ctx context.Context, artistID string) error {
	return m.Called(artistID).Error(0)
}

func setupAdminRouter(ctl *AdminController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/suppliers", ctl.CreateSupplier)
	r.DELETE("/admin/artists/:artistId", ctl.DeleteArtist)
	return r
}

func vendorBody() gin.H {
	return gin.H{
		"name": "Tiny Toys", "cnic": "12345-1234567-1", "email": "sales@tinytoys.com",
		"country": "PK", "state": "Punjab", "city": "Lahore", "status": "ACTIVE",
		"categoryId": "cat-1", "subCategoryId": "sub-1",
	}
}

func TestCreateSupplierHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		admin := new(mockAdmin)
		admin.On("CreateSupplier", mock.MatchedBy(func(in services.VendorInput) bool {
			return in.Email == "sales@tinytoys.com" && in.Status == models.StatusActive && in.SubCategoryID == "sub-1"
		})).Return(models.Supplier{ID: "s-1", Name: "Tiny Toys"}, nil)
		r := setupAdminRouter(NewAdminController(admin, nil, zap.NewNop()))

		w, env := doJSON(r, http.MethodPost, "/admin/suppliers", vendorBody())
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Supplier created successfully! Login credentials have been sent to the email.", env.Message)
		admin.AssertExpectations(t)
	})

	t.Run("missing field", func(t *testing.T) {
		admin := new(mockAdmin)
		r := setupAdminRouter(NewAdminController(admin, nil, zap.NewNop()))

		body := vendorBody()
		delete(body, "city")
		w, _ := doJSON(r, http.MethodPost, "/admin/suppliers", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		admin.AssertNotCalled(t, "CreateSupplier", mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		admin := new(mockAdmin)
		admin.On("CreateSupplier", mock.Anything).Return(models.Supplier{}, services.Conflict("Email already exists"))
		r := setupAdminRouter(NewAdminController(admin, nil, zap.NewNop()))

		w, env := doJSON(r, http.MethodPost, "/admin/suppliers", vendorBody())
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Email already exists", env.Message)
	})
}

func TestDeleteArtistHandlerNotFound(t *testing.T) {
	admin := new(mockAdmin)
	admin.On("DeleteArtist", "a-9").Return(services.NotFound("Artist not found"))
	r := setupAdminRouter(NewAdminController(admin, nil, zap.NewNop()))

	w, _ := doJSON(r, http.MethodDelete, "/admin/artists/a-9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
