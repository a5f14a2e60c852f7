package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"storefront-service/internal/models"
	"storefront-service/internal/repository"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	FeaturedLimit   = 9
)

// FeaturedKind names the rule used to pick featured products
type FeaturedKind string

const (
	FeaturedAuto     FeaturedKind = "auto"
	FeaturedSelected FeaturedKind = "selected"
	FeaturedNewest   FeaturedKind = "newest"
)

// FeaturedStrategy is the resolved featured selection
type FeaturedStrategy struct {
	Kind       FeaturedKind
	ProductIDs []uuid.UUID
}

// ResolveFeaturedStrategy picks the first satisfied rule: auto-choose, then a
// non-empty manual selection, then newest
func ResolveFeaturedStrategy(config *models.FeaturedConfig) FeaturedStrategy {
	switch {
	case config == nil:
		return FeaturedStrategy{Kind: FeaturedNewest}
	case config.AutoChoose:
		return FeaturedStrategy{Kind: FeaturedAuto}
	case len(config.SelectedProducts) > 0:
		return FeaturedStrategy{Kind: FeaturedSelected, ProductIDs: config.SelectedProducts}
	default:
		return FeaturedStrategy{Kind: FeaturedNewest}
	}
}

// CatalogService serves storefront product reads
type CatalogService struct {
	repo          repository.CatalogRepositoryInterface
	featuredLimit int
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.CatalogRepositoryInterface) *CatalogService {
	return &CatalogService{
		repo:          repo,
		featuredLimit: FeaturedLimit,
	}
}

// WithFeaturedLimit overrides how many products the auto and newest featured rules return
func (s *CatalogService) WithFeaturedLimit(limit int) *CatalogService {
	if limit > 0 {
		s.featuredLimit = limit
	}
	return s
}

// ListProducts returns one page of published products matching req
func (s *CatalogService) ListProducts(ctx context.Context, req ListProductsRequest) (*models.ProductPage, error) {
	page, limit := normalizePage(req.Page, req.Limit)
	filter := CompileFilter(req)
	sort := ResolveSort(req.SortBy)

	total, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	// Pages past the end are empty without touching the store
	var products []models.Product
	if offset, ok := pageOffset(page, limit); ok && int64(offset) < total {
		products, err = s.repo.ListProducts(ctx, filter, sort, offset, limit)
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
	}

	return &models.ProductPage{
		Products: PresentProducts(products),
		Pagination: models.PaginationInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}, nil
}

// GetProduct returns a published product and records the view. Missing and
// unpublished products both yield ErrProductNotFound.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductView, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product.Status != models.ProductStatusPublished {
		return nil, ErrProductNotFound
	}

	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("increment view count: %w", err)
	}
	product.ViewCount++

	view := PresentProduct(product)
	return &view, nil
}

// GetFeaturedProducts returns the homepage featured products
func (s *CatalogService) GetFeaturedProducts(ctx context.Context) ([]models.ProductView, error) {
	config, err := s.repo.GetFeaturedConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get featured config: %w", err)
	}

	strategy := ResolveFeaturedStrategy(config)
	published := models.ProductFilter{Status: models.ProductStatusPublished}

	var products []models.Product
	switch strategy.Kind {
	case FeaturedAuto:
		products, err = s.repo.ListProducts(ctx, published, ResolveSort(SortFeatured), 0, s.featuredLimit)
	case FeaturedSelected:
		products, err = s.repo.GetProductsByIDs(ctx, strategy.ProductIDs, models.ProductStatusPublished)
		if len(products) > s.featuredLimit {
			products = products[:s.featuredLimit]
		}
	default:
		products, err = s.repo.ListProducts(ctx, published, ResolveSort(SortDateNew), 0, s.featuredLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("list featured products: %w", err)
	}

	return PresentProducts(products), nil
}

// GetFilterOptions returns the filter values available within the given scope
func (s *CatalogService) GetFilterOptions(ctx context.Context, categoryID, subCategoryID, productListID *uuid.UUID) (*models.FilterOptions, error) {
	options, err := s.repo.GetFilterOptions(ctx, ResolveScope(categoryID, subCategoryID, productListID))
	if err != nil {
		return nil, fmt.Errorf("get filter options: %w", err)
	}
	return options, nil
}

// GetCategoryTree returns the active navigation hierarchy
func (s *CatalogService) GetCategoryTree(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.GetCategoryTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("get category tree: %w", err)
	}
	return categories, nil
}

// ExportProducts returns up to maxRows presented products matching req, in listing order
func (s *CatalogService) ExportProducts(ctx context.Context, req ListProductsRequest, maxRows int) ([]models.ProductView, error) {
	products, err := s.repo.ListProducts(ctx, CompileFilter(req), ResolveSort(req.SortBy), 0, maxRows)
	if err != nil {
		return nil, fmt.Errorf("export products: %w", err)
	}
	return PresentProducts(products), nil
}

// pageOffset returns the row offset of page, or false when it does not fit in an int
func pageOffset(page, limit int) (int, bool) {
	if page-1 > math.MaxInt/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
