package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"storefront-service/internal/models"
)

var ErrNotFound = errors.New("not found")

// CatalogRepositoryInterface is read access to the catalog hierarchy and products
type CatalogRepositoryInterface interface {
	ListProducts(ctx context.Context, filter models.ProductFilter, sort models.SortRule, offset, limit int) ([]models.Product, error)
	CountProducts(ctx context.Context, filter models.ProductFilter) (int64, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	GetProductsByIDs(ctx context.Context, ids []uuid.UUID, status models.ProductStatus) ([]models.Product, error)
	GetFeaturedConfig(ctx context.Context) (*models.FeaturedConfig, error)
	GetFilterOptions(ctx context.Context, scope models.CatalogScope) (*models.FilterOptions, error)
	GetCategoryTree(ctx context.Context) ([]models.Category, error)
}

// OfferRepositoryInterface is read access to promotional offers
type OfferRepositoryInterface interface {
	GetActiveOffer(ctx context.Context, now time.Time) (*models.Offer, error)
}
