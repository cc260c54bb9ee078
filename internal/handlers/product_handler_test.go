package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/smilepoint/dental-clinic/internal/domain/catalog"
	"github.com/smilepoint/dental-clinic/internal/models"
)

// ======================================================
// FAKE CATALOG
// ======================================================

type fakeCatalog struct {
	products []models.Product

	lastFilter domain.ProductFilter
}

var _ domain.Repository = (*fakeCatalog)(nil)

func (f *fakeCatalog) ListDentists(context.Context) ([]models.Dentist, error) {
	return nil, nil
}

func (f *fakeCatalog) GetDentist(context.Context, uint) (*models.Dentist, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalog) ListProducts(_ context.Context, filter domain.ProductFilter) ([]models.Product, error) {
	f.lastFilter = filter
	return f.products, nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, id uint) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalog) ListReviews(context.Context, uint) ([]models.ProductReview, error) {
	return nil, nil
}

func (f *fakeCatalog) CreateReview(context.Context, *models.ProductReview) error {
	return nil
}

// ======================================================
// HELPERS
// ======================================================

func newProductRouter(catalog *fakeCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewProductHandler(catalog)
	r := gin.New()
	r.GET("/api/products", h.List)
	r.GET("/api/products/:id", h.Get)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

// ======================================================
// TESTS
// ======================================================

func TestListProducts(t *testing.T) {
	catalog := &fakeCatalog{products: []models.Product{
		{ID: 1, Name: "Electric Toothbrush", Price: 49.99},
		{ID: 2, Name: "Whitening Strips", Price: 19.99},
	}}
	r := newProductRouter(catalog)

	w := doGet(r, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Electric Toothbrush")
	assert.Contains(t, w.Body.String(), "Whitening Strips")
}

func TestListProductsPassesFilter(t *testing.T) {
	catalog := &fakeCatalog{}
	r := newProductRouter(catalog)

	w := doGet(r, "/api/products?category=toothbrush&search=electric&sort=price_asc")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "toothbrush", catalog.lastFilter.Category)
	assert.Equal(t, "electric", catalog.lastFilter.Search)
	assert.Equal(t, domain.SortPriceAsc, catalog.lastFilter.Sort)
}

func TestGetProduct(t *testing.T) {
	catalog := &fakeCatalog{products: []models.Product{
		{ID: 1, Name: "Electric Toothbrush", Price: 49.99},
	}}
	r := newProductRouter(catalog)

	w := doGet(r, "/api/products/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Electric Toothbrush")

	// Reads are idempotent.
	again := doGet(r, "/api/products/1")
	assert.Equal(t, w.Body.String(), again.Body.String())
}

func TestGetProductNotFound(t *testing.T) {
	r := newProductRouter(&fakeCatalog{})

	w := doGet(r, "/api/products/99")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, w.Body.String())
}

func TestGetProductInvalidID(t *testing.T) {
	r := newProductRouter(&fakeCatalog{})

	w := doGet(r, "/api/products/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
