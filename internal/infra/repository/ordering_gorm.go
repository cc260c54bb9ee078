package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/smilepoint/dental-clinic/internal/domain/ordering"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/models"
)

type OrderingGormRepository struct {
	db *gorm.DB
}

func NewOrderingGormRepository(db *gorm.DB) *OrderingGormRepository {
	return &OrderingGormRepository{db: db}
}

func (r *OrderingGormRepository) GetProduct(
	ctx context.Context,
	productID uint,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *OrderingGormRepository) CreateOrder(
	ctx context.Context,
	order *models.Order,
) error {

	// gorm writes the order and its Items association inside one
	// transaction; a failing item insert rolls back the order row.
	err := r.db.WithContext(ctx).Create(order).Error
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return httperr.ErrBusiness(domain.ErrCodeDuplicateOrderNumber)
	}

	return err
}

func (r *OrderingGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderingGormRepository) HasPurchased(
	ctx context.Context,
	userID uint,
	productID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*OrderingGormRepository)(nil)
