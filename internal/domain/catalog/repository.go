package catalog

import (
	"context"

	"github.com/smilepoint/dental-clinic/internal/models"
)

// Product sort keys accepted by the API.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortPopular   = "popular"
)

type ProductFilter struct {
	// Category filters by exact match; empty or "all" means no filter.
	Category string

	// Search is a case-insensitive substring match on the name.
	Search string

	// Sort is one of the Sort* keys; anything else sorts by name.
	Sort string
}

type Repository interface {
	// ListDentists returns the roster ordered by rating descending.
	ListDentists(ctx context.Context) ([]models.Dentist, error)

	GetDentist(ctx context.Context, id uint) (*models.Dentist, error)

	// ListProducts returns active products matching the filter.
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)

	GetProduct(ctx context.Context, id uint) (*models.Product, error)

	ListReviews(ctx context.Context, productID uint) ([]models.ProductReview, error)

	CreateReview(ctx context.Context, review *models.ProductReview) error
}
