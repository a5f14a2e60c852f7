package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
)

type MockCatalogRepository struct {
	mock.Mock
}

var _ repository.CatalogRepositoryInterface = (*MockCatalogRepository)(nil)

func (m *MockCatalogRepository) ListProducts(ctx context.Context, filter models.ProductFilter, sort models.SortRule, offset, limit int) ([]models.Product, error) {
	args := m.Called(ctx, filter, sort, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogRepository) CountProducts(ctx context.Context, filter models.ProductFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetProductsByIDs(ctx context.Context, ids []uuid.UUID, status models.ProductStatus) ([]models.Product, error) {
	args := m.Called(ctx, ids, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetFeaturedConfig(ctx context.Context) (*models.FeaturedConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FeaturedConfig), args.Error(1)
}

func (m *MockCatalogRepository) GetFilterOptions(ctx context.Context, scope models.CatalogScope) (*models.FilterOptions, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FilterOptions), args.Error(1)
}

func (m *MockCatalogRepository) GetCategoryTree(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

type MockOfferRepository struct {
	mock.Mock
}

var _ repository.OfferRepositoryInterface = (*MockOfferRepository)(nil)

func (m *MockOfferRepository) GetActiveOffer(ctx context.Context, now time.Time) (*models.Offer, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Offer), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

var _ Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) SendOfferClaim(ctx context.Context, notification *models.OfferClaimNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
