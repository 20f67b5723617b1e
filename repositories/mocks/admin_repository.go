package mocks

import (
	"context"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"

	"github.com/stretchr/testify/mock"
)

type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) Count(ctx context.Context, table string, where string, args ...interface{}) (int64, error) {
	ret := m.Called(table, where, args)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *StatsRepository) MusicRevenue(ctx context.Context, artistID string) ([]repositories.MusicRevenue, int64, error) {
	args := m.Called(artistID)
	return args.Get(0).([]repositories.MusicRevenue), args.Get(1).(int64), args.Error(2)
}

func (m *StatsRepository) ProductRevenue(ctx context.Context, supplierID string) ([]repositories.ProductRevenue, error) {
	args := m.Called(supplierID)
	return args.Get(0).([]repositories.ProductRevenue), args.Error(1)
}

func (m *StatsRepository) CountPerDay(ctx context.Context, table string, where string, args ...interface{}) ([]repositories.DateCount, error) {
	ret := m.Called(table, where, args)
	return ret.Get(0).([]repositories.DateCount), ret.Error(1)
}

type VendorRepository struct {
	mock.Mock
}

func (m *VendorRepository) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *VendorRepository) FindSupplier(ctx context.Context, id string) (models.Supplier, error) {
	args := m.Called(id)
	return args.Get(0).(models.Supplier), args.Error(1)
}

func (m *VendorRepository) ListSuppliers(ctx context.Context, search string) ([]models.Supplier, error) {
	args := m.Called(search)
	return args.Get(0).([]models.Supplier), args.Error(1)
}

func (m *VendorRepository) SaveSupplier(ctx context.Context, supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *VendorRepository) DeleteSupplier(ctx context.Context, id string, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}

func (m *VendorRepository) CreateArtist(ctx context.Context, artist *models.Artist) error {
	args := m.Called(artist)
	return args.Error(0)
}

func (m *VendorRepository) FindArtist(ctx context.Context, id string) (models.Artist, error) {
	args := m.Called(id)
	return args.Get(0).(models.Artist), args.Error(1)
}

func (m *VendorRepository) ListArtists(ctx context.Context, search string) ([]models.Artist, error) {
	args := m.Called(search)
	return args.Get(0).([]models.Artist), args.Error(1)
}

func (m *VendorRepository) SaveArtist(ctx context.Context, artist *models.Artist) error {
	args := m.Called(artist)
	return args.Error(0)
}

func (m *VendorRepository) DeleteArtist(ctx context.Context, id string, at time.Time) error {
	args := m.Called(id, at)
	return args.Error(0)
}
