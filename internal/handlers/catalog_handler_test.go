package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"storefront-service/internal/models"
	"storefront-service/internal/services"
)

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

var _ CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) ListProducts(ctx context.Context, req services.ListProductsRequest) (*models.ProductPage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductPage), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.ProductView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductView), args.Error(1)
}

func (m *MockCatalogService) GetFeaturedProducts(ctx context.Context) ([]models.ProductView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductView), args.Error(1)
}

func (m *MockCatalogService) GetFilterOptions(ctx context.Context, categoryID, subCategoryID, productListID *uuid.UUID) (*models.FilterOptions, error) {
	args := m.Called(ctx, categoryID, subCategoryID, productListID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FilterOptions), args.Error(1)
}

func (m *MockCatalogService) GetCategoryTree(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCatalogService) ExportProducts(ctx context.Context, req services.ListProductsRequest, maxRows int) ([]models.ProductView, error) {
	args := m.Called(ctx, req, maxRows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductView), args.Error(1)
}

// Helper to setup test router
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newTestLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(logger)
}

func setupCatalogRouter(service CatalogService) *gin.Engine {
	router := setupTestRouter()
	handler := NewCatalogHandler(service, 250, newTestLogger())
	offers := NewOfferHandler(new(MockOfferService), newTestLogger())
	RegisterStorefrontRoutes(router.Group("/api/v1/storefront"), handler, offers)
	return router
}

func performRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func testProductView() models.ProductView {
	return models.ProductView{
		ID:                 uuid.New(),
		SKU:                "SNK-001",
		NameEn:             "Cloud Runner",
		NameAr:             "كلاود رانر",
		BasePrice:          1630,
		DiscountPercentage: 30,
		FinalPrice:         1141,
		Vendor:             "Nike",
		Gender:             models.GenderWomen,
		Status:             models.ProductStatusPublished,
		Colors:             []string{"Black", "Pink"},
		Sizes:              []string{"EU-35", "EU-36"},
		Availability:       models.AvailabilityInStock,
		TotalStock:         37,
		Category:           &models.AncestorRef{ID: uuid.New(), NameEn: "Women"},
	}
}

// ===========================================
// List Products Tests
// ===========================================

func TestGetProducts_ParsesQuery(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	listID := uuid.New()
	min, max := 100.0, 500.0
	expected := services.ListProductsRequest{
		Page:          2,
		Limit:         10,
		SortBy:        services.SortPriceLow,
		ProductListID: &listID,
		Vendor:        "Nike",
		Gender:        models.GenderWomen,
		Colors:        []string{"Black", "Pink"},
		MinPrice:      &min,
		MaxPrice:      &max,
		Availability:  models.AvailabilityInStock,
	}
	page := &models.ProductPage{
		Products:   []models.ProductView{testProductView()},
		Pagination: models.PaginationInfo{Page: 2, Limit: 10, Total: 11, TotalPages: 2},
	}
	mockService.On("ListProducts", mock.Anything, expected).Return(page, nil)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products?page=2&limit=10&sortBy=price-low&productList="+listID.String()+
		"&vendor=Nike&gender=women&colors=Black,Pink&minPrice=100&maxPrice=500&availability=IN-STOCK")

	assert.Equal(t, http.StatusOK, w.Code)

	var response models.ProductListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, page.Pagination, response.Data.Pagination)
	require.Len(t, response.Data.Products, 1)
	assert.Equal(t, 1141.0, response.Data.Products[0].FinalPrice)
	mockService.AssertExpectations(t)
}

func TestGetProducts_Defaults(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	expected := services.ListProductsRequest{Page: services.DefaultPage, Limit: services.DefaultPageSize}
	mockService.On("ListProducts", mock.Anything, expected).Return(&models.ProductPage{Products: []models.ProductView{}}, nil)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"products":[]`)
	mockService.AssertExpectations(t)
}

func TestGetProducts_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"zero page", "page=0", "page"},
		{"non-numeric page", "page=abc", "page"},
		{"zero limit", "limit=0", "limit"},
		{"limit too large", "limit=101", "limit"},
		{"bad category", "category=not-a-uuid", "category"},
		{"bad sub-category", "subCategory=123", "subCategory"},
		{"unknown gender", "gender=robots", "gender"},
		{"unknown availability", "availability=soon", "availability"},
		{"negative min price", "minPrice=-1", "minPrice"},
		{"non-numeric max price", "maxPrice=cheap", "maxPrice"},
		{"inverted price range", "minPrice=500&maxPrice=100", "maxPrice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			router := setupCatalogRouter(mockService)

			w := performRequest(router, http.MethodGet, "/api/v1/storefront/products?"+tt.query)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			response := decodeError(t, w)
			assert.False(t, response.Success)
			assert.Equal(t, "VALIDATION_ERROR", response.Error.Code)
			assert.Equal(t, tt.field, response.Error.Field)
			mockService.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
		})
	}
}

func TestGetProducts_UnknownSortIsNotAnError(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	mockService.On("ListProducts", mock.Anything, mock.MatchedBy(func(req services.ListProductsRequest) bool {
		return req.SortBy == "most-liked"
	})).Return(&models.ProductPage{Products: []models.ProductView{}}, nil)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products?sortBy=most-liked")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetProducts_ServiceError(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	mockService.On("ListProducts", mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := decodeError(t, w)
	assert.Equal(t, "FETCH_FAILED", response.Error.Code)
	assert.NotContains(t, w.Body.String(), "database unavailable")
}

// ===========================================
// Single Product Tests
// ===========================================

func TestGetProduct_Success(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	view := testProductView()
	mockService.On("GetProduct", mock.Anything, view.ID).Return(&view, nil)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products/"+view.ID.String())

	assert.Equal(t, http.StatusOK, w.Code)
	var response models.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, view.ID, response.Data.ID)
	assert.Equal(t, 37, response.Data.TotalStock)
	assert.Equal(t, "Women", response.Data.Category.NameEn)
}

func TestGetProduct_NotFound(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	id := uuid.New()
	mockService.On("GetProduct", mock.Anything, id).Return(nil, services.ErrProductNotFound)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products/"+id.String())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, w).Error.Code)
}

func TestGetProduct_MalformedIDIsNotFound(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products/not-a-uuid")

	assert.Equal(t, http.StatusNotFound, w.Code)
	response := decodeError(t, w)
	assert.Equal(t, "NOT_FOUND", response.Error.Code)
	assert.Equal(t, "Product not found", response.Error.Message)
	mockService.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
}

// ===========================================
// Featured, Filters and Categories Tests
// ===========================================

func TestGetFeaturedProducts(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	mockService.On("GetFeaturedProducts", mock.Anything).Return([]models.ProductView{testProductView(), testProductView()}, nil)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products/featured")

	assert.Equal(t, http.StatusOK, w.Code)
	var response models.FeaturedProductsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 2)
	mockService.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
}

func TestGetFilterOptions(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	categoryID := uuid.New()
	options := &models.FilterOptions{
		Vendors:    []string{"Nike"},
		Types:      []string{"Shoes"},
		Colors:     []string{"Black"},
		Sizes:      []string{"EU-35"},
		PriceRange: models.PriceRange{Min: 99, Max: 1630},
	}
	mockService.On("GetFilterOptions", mock.Anything, &categoryID, (*uuid.UUID)(nil), (*uuid.UUID)(nil)).Return(options, nil)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products/filters?category="+categoryID.String())

	assert.Equal(t, http.StatusOK, w.Code)
	var response models.FilterOptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, options, response.Data)
}

func TestGetFilterOptions_BadScope(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products/filters?productList=nope")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "productList", decodeError(t, w).Error.Field)
}

func TestGetCategories(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	tree := []models.Category{{
		ID:     uuid.New(),
		NameEn: "Women",
		NameAr: "نساء",
		Status: true,
		SubCategories: []models.SubCategory{{
			ID:     uuid.New(),
			NameEn: "Shoes",
			Status: true,
		}},
	}}
	mockService.On("GetCategoryTree", mock.Anything).Return(tree, nil)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/categories")

	assert.Equal(t, http.StatusOK, w.Code)
	var response models.CategoryTreeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	require.Len(t, response.Data[0].SubCategories, 1)
	assert.Equal(t, "Shoes", response.Data[0].SubCategories[0].NameEn)
}

// ===========================================
// Export Tests
// ===========================================

func TestExportProducts(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	view := testProductView()
	mockService.On("ExportProducts", mock.Anything, mock.MatchedBy(func(req services.ListProductsRequest) bool {
		return req.Vendor == "Nike"
	}), 250).Return([]models.ProductView{view}, nil)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products/export?vendor=Nike")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=products_")

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "SKU", rows[0][0])
	assert.Len(t, rows[0], len(exportColumns))
	assert.Equal(t, "SNK-001", rows[1][0])
	assert.Equal(t, "Nike", rows[1][3])
	assert.Equal(t, "1141", rows[1][8])
	assert.Equal(t, "Black, Pink", rows[1][11])
	assert.Equal(t, "Women", rows[1][14])
}

func TestExportProducts_ValidationError(t *testing.T) {
	mockService := new(MockCatalogService)
	router := setupCatalogRouter(mockService)

	w := performRequest(router, http.MethodGet, "/api/v1/storefront/products/export?availability=maybe")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ExportProducts", mock.Anything, mock.Anything, mock.Anything)
}

func TestBuildProductWorkbook_HeaderLayout(t *testing.T) {
	f, err := buildProductWorkbook([]models.ProductView{testProductView()})
	require.NoError(t, err)
	defer f.Close()

	style, err := f.GetCellStyle(exportSheetName, "A1")
	require.NoError(t, err)
	assert.NotZero(t, style)

	width, err := f.GetColWidth(exportSheetName, "B")
	require.NoError(t, err)
	assert.Equal(t, exportColumns[1].Width, width)

	panes, err := f.GetPanes(exportSheetName)
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.YSplit)
	assert.Equal(t, "A2", panes.TopLeftCell)
}
