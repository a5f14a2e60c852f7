package repository

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Tesseract-Nexus/go-shared/cache"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"storefront-service/internal/models"
)

// Cache TTL constants
const (
	FilterOptionsCacheTTL = 2 * time.Minute  // Filter options follow catalog edits closely
	CategoryCacheTTL      = 30 * time.Minute // Categories rarely change
)

const bestSellingExpr = "(SELECT COUNT(*) FROM order_items WHERE order_items.product_id = products.id)"

type CatalogRepository struct {
	db    *gorm.DB
	cache *cache.CacheLayer
}

func NewCatalogRepository(db *gorm.DB, redis *redis.Client) *CatalogRepository {
	repo := &CatalogRepository{db: db}

	if redis != nil {
		cacheConfig := cache.CacheConfig{
			L1Enabled:  true,
			L1MaxItems: 1000,
			L1TTL:      30 * time.Second,
			DefaultTTL: FilterOptionsCacheTTL,
			KeyPrefix:  "storefront:catalog:",
		}
		repo.cache = cache.NewCacheLayerFromClient(redis, cacheConfig)
	}

	return repo
}

var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// generateCacheKey creates a deterministic cache key for parameterised reads
func generateCacheKey(prefix string, params interface{}) string {
	data, _ := json.Marshal(params)
	hash := md5.Sum(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// ListProducts returns one page of products matching filter
func (r *CatalogRepository) ListProducts(ctx context.Context, filter models.ProductFilter, rule models.SortRule, offset, limit int) ([]models.Product, error) {
	var products []models.Product

	query := r.applyProductFilters(ctx, r.db.WithContext(ctx).Model(&models.Product{}), filter)
	err := withPresentation(query).
		Order(orderClause(rule)).
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CountProducts counts all products matching filter
func (r *CatalogRepository) CountProducts(ctx context.Context, filter models.ProductFilter) (int64, error) {
	var total int64
	query := r.applyProductFilters(ctx, r.db.WithContext(ctx).Model(&models.Product{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetProductByID loads a product with its variants, images and ancestry regardless of status
func (r *CatalogRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := withPresentation(r.db.WithContext(ctx)).
		Where("products.id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// IncrementViewCount bumps view_count in a single UPDATE so concurrent views are never lost
func (r *CatalogRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProductsByIDs returns the products among ids that have the given status,
// in the order of ids
func (r *CatalogRepository) GetProductsByIDs(ctx context.Context, ids []uuid.UUID, status models.ProductStatus) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	var products []models.Product
	err := withPresentation(r.db.WithContext(ctx)).
		Where("products.id IN ? AND products.status = ?", ids, status).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	position := make(map[uuid.UUID]int, len(ids))
	for i, id := range ids {
		if _, ok := position[id]; !ok {
			position[id] = i
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		return position[products[i].ID] < position[products[j].ID]
	})
	return products, nil
}

// GetFeaturedConfig returns the most recently updated featured configuration, or nil when none exists
func (r *CatalogRepository) GetFeaturedConfig(ctx context.Context) (*models.FeaturedConfig, error) {
	var config models.FeaturedConfig
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&config).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

// GetFilterOptions returns the vendors, types, colors, sizes and price range of
// published products within scope
func (r *CatalogRepository) GetFilterOptions(ctx context.Context, scope models.CatalogScope) (*models.FilterOptions, error) {
	if r.cache != nil {
		var options models.FilterOptions
		err := r.cache.GetOrSetJSON(ctx, generateCacheKey("filters", scope), &options, FilterOptionsCacheTTL, func() (any, error) {
			return r.loadFilterOptions(ctx, scope)
		})
		if err != nil {
			return nil, err
		}
		return &options, nil
	}

	return r.loadFilterOptions(ctx, scope)
}

func (r *CatalogRepository) loadFilterOptions(ctx context.Context, scope models.CatalogScope) (*models.FilterOptions, error) {
	filter := models.ProductFilter{Status: models.ProductStatusPublished, Scope: scope}
	products := func() *gorm.DB {
		return r.applyProductFilters(ctx, r.db.WithContext(ctx).Model(&models.Product{}), filter)
	}

	options := &models.FilterOptions{
		Vendors: []string{},
		Types:   []string{},
		Colors:  []string{},
		Sizes:   []string{},
	}

	if err := products().Where("products.vendor <> ''").Distinct("products.vendor").Order("products.vendor").Pluck("products.vendor", &options.Vendors).Error; err != nil {
		return nil, err
	}
	if err := products().Where("products.type <> ''").Distinct("products.type").Order("products.type").Pluck("products.type", &options.Types).Error; err != nil {
		return nil, err
	}

	productIDs := products().Select("products.id")
	variants := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.ProductVariant{}).Where("product_variants.product_id IN (?)", productIDs)
	}
	if err := variants().Where("color <> ''").Distinct("color").Order("color").Pluck("color", &options.Colors).Error; err != nil {
		return nil, err
	}
	if err := variants().Where("size <> ''").Distinct("size").Order("size").Pluck("size", &options.Sizes).Error; err != nil {
		return nil, err
	}

	var priceRange struct {
		MinPrice models.Decimal
		MaxPrice models.Decimal
	}
	if err := products().
		Select("MIN(products.base_price) AS min_price, MAX(products.base_price) AS max_price").
		Scan(&priceRange).Error; err != nil {
		return nil, err
	}
	options.PriceRange = models.PriceRange{
		Min: priceRange.MinPrice.Float64(),
		Max: priceRange.MaxPrice.Float64(),
	}

	return options, nil
}

// GetCategoryTree returns active categories with their active sub-categories and product lists
func (r *CatalogRepository) GetCategoryTree(ctx context.Context) ([]models.Category, error) {
	if r.cache != nil {
		var categories []models.Category
		err := r.cache.GetOrSetJSON(ctx, "categories:tree", &categories, CategoryCacheTTL, func() (any, error) {
			return r.loadCategoryTree(ctx)
		})
		if err != nil {
			return nil, err
		}
		return categories, nil
	}

	return r.loadCategoryTree(ctx)
}

func (r *CatalogRepository) loadCategoryTree(ctx context.Context) ([]models.Category, error) {
	active := func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", true).Order("position ASC")
	}

	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("SubCategories", active).
		Preload("SubCategories.ProductLists", active).
		Where("status = ?", true).
		Order("position ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// withPresentation preloads everything the product presenter reads
func withPresentation(query *gorm.DB) *gorm.DB {
	return query.
		Preload("ProductList.SubCategory.Category").
		Preload("Variants").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.position ASC")
		})
}

// applyProductFilters translates a compiled filter into WHERE conditions
func (r *CatalogRepository) applyProductFilters(ctx context.Context, query *gorm.DB, filter models.ProductFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("products.status = ?", filter.Status)
	}

	switch filter.Scope.Level {
	case models.ScopeProductList:
		query = query.Where("products.product_list_id = ?", filter.Scope.ID)
	case models.ScopeSubCategory:
		lists := r.db.WithContext(ctx).Model(&models.ProductList{}).
			Select("product_lists.id").
			Where("product_lists.sub_category_id = ?", filter.Scope.ID)
		query = query.Where("products.product_list_id IN (?)", lists)
	case models.ScopeCategory:
		lists := r.db.WithContext(ctx).Model(&models.ProductList{}).
			Select("product_lists.id").
			Joins("JOIN sub_categories ON sub_categories.id = product_lists.sub_category_id").
			Where("sub_categories.category_id = ?", filter.Scope.ID)
		query = query.Where("products.product_list_id IN (?)", lists)
	}

	if filter.Vendor != "" {
		query = query.Where("products.vendor = ?", filter.Vendor)
	}
	if filter.Gender != "" {
		query = query.Where("products.gender = ?", filter.Gender)
	}
	if filter.Type != "" {
		query = query.Where("products.type = ?", filter.Type)
	}

	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where(
			`(LOWER(products.name_en) LIKE ? ESCAPE '\' OR LOWER(products.name_ar) LIKE ? ESCAPE '\' OR LOWER(products.sku) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern,
		)
	}

	// Price range is on the pre-discount price
	if filter.MinPrice != nil {
		query = query.Where("products.base_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.base_price <= ?", *filter.MaxPrice)
	}

	// All variant conditions must hold on the same variant row
	if !filter.Variant.IsEmpty() {
		variants := r.db.WithContext(ctx).Model(&models.ProductVariant{}).
			Select("1").
			Where("product_variants.product_id = products.id")
		if len(filter.Variant.Colors) > 0 {
			variants = variants.Where("product_variants.color IN ?", filter.Variant.Colors)
		}
		if len(filter.Variant.Sizes) > 0 {
			variants = variants.Where("product_variants.size IN ?", filter.Variant.Sizes)
		}
		if q := filter.Variant.Quantity; q != nil {
			variants = variants.Where("product_variants.quantity >= ?", q.Min)
			if q.Max != nil {
				variants = variants.Where("product_variants.quantity <= ?", *q.Max)
			}
		}
		query = query.Where("EXISTS (?)", variants)
	}

	return query
}

// orderClause builds the ORDER BY for a sort rule with id as tie-break in the same direction
func orderClause(rule models.SortRule) string {
	direction := "ASC"
	if rule.Descending {
		direction = "DESC"
	}

	var column string
	switch rule.Field {
	case models.SortByBestSelling:
		column = bestSellingExpr
	case models.SortByName, models.SortByBasePrice, models.SortByCreatedAt, models.SortByViewCount:
		column = "products." + string(rule.Field)
	default:
		column = "products." + string(models.SortByViewCount)
	}

	return fmt.Sprintf("%s %s, products.id %s", column, direction, direction)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
