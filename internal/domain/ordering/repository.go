package ordering

import (
	"context"

	"github.com/smilepoint/dental-clinic/internal/models"
)

// Business error codes surfaced by implementations.
const (
	ErrCodeDuplicateOrderNumber = "duplicate_order_number"
)

type Repository interface {
	GetProduct(
		ctx context.Context,
		productID uint,
	) (*models.Product, error)

	// CreateOrder inserts the order and its items in one transaction;
	// nothing persists if any part fails.
	CreateOrder(
		ctx context.Context,
		order *models.Order,
	) error

	// ListForUser returns the user's orders with items, newest first.
	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Order, error)

	// HasPurchased reports whether any of the user's orders contains
	// the product. Used for the verified-purchase review flag.
	HasPurchased(
		ctx context.Context,
		userID uint,
		productID uint,
	) (bool, error)
}
