package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/smilepoint/dental-clinic/internal/domain/catalog"
	"github.com/smilepoint/dental-clinic/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Dentists
// --------------------------------------------------

func (r *CatalogGormRepository) ListDentists(
	ctx context.Context,
) ([]models.Dentist, error) {

	var dentists []models.Dentist
	if err := r.db.WithContext(ctx).
		Order("rating DESC").
		Find(&dentists).Error; err != nil {
		return nil, err
	}

	return dentists, nil
}

func (r *CatalogGormRepository) GetDentist(
	ctx context.Context,
	id uint,
) (*models.Dentist, error) {

	var dentist models.Dentist
	if err := r.db.WithContext(ctx).First(&dentist, id).Error; err != nil {
		return nil, err
	}
	return &dentist, nil
}

// --------------------------------------------------
// Products
// --------------------------------------------------

func (r *CatalogGormRepository) ListProducts(
	ctx context.Context,
	filter domain.ProductFilter,
) ([]models.Product, error) {

	q := r.db.WithContext(ctx).Where("is_active = ?", true)

	category := strings.TrimSpace(filter.Category)
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	switch filter.Sort {
	case domain.SortPriceAsc:
		q = q.Order("price ASC")
	case domain.SortPriceDesc:
		q = q.Order("price DESC")
	case domain.SortPopular:
		q = q.Order("is_featured DESC")
	default:
		q = q.Order("name ASC")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *CatalogGormRepository) GetProduct(
	ctx context.Context,
	id uint,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *CatalogGormRepository) ListReviews(
	ctx context.Context,
	productID uint,
) ([]models.ProductReview, error) {

	var reviews []models.ProductReview
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}

	return reviews, nil
}

func (r *CatalogGormRepository) CreateReview(
	ctx context.Context,
	review *models.ProductReview,
) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
