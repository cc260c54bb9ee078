package ordering

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smilepoint/dental-clinic/internal/audit"
	domain "github.com/smilepoint/dental-clinic/internal/domain/ordering"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type OrderItemInput struct {
	ProductID uint
	Quantity  int
}

type CreateOrderInput struct {
	UserID          uint
	Items           []OrderItemInput
	ShippingAddress json.RawMessage
	BillingAddress  json.RawMessage
}

// ProductNotFoundError names the offending product so the handler can
// report it.
type ProductNotFoundError struct {
	ProductID uint
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateOrder {
	return &CreateOrder{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Order, error) {

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_order")
	}

	// Snapshot live prices. A missing product fails the whole order
	// before anything is written.
	var lines []domain.Line
	var items []models.OrderItem

	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}

		product, err := uc.repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ProductNotFoundError{ProductID: item.ProductID}
			}
			return nil, err
		}

		lines = append(lines, domain.Line{
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		})

		items = append(items, models.OrderItem{
			ProductID:  product.ID,
			Quantity:   item.Quantity,
			UnitPrice:  product.Price,
			TotalPrice: domain.Round2(product.Price * float64(item.Quantity)),
		})
	}

	totals := domain.Compute(lines)

	order := &models.Order{
		UserID:          in.UserID,
		OrderNumber:     domain.NewOrderNumber(),
		Status:          "pending",
		Subtotal:        totals.Subtotal,
		ShippingFee:     totals.ShippingFee,
		Tax:             totals.Tax,
		Total:           totals.Total,
		PaymentStatus:   "pending",
		ShippingAddress: datatypes.JSON(in.ShippingAddress),
		BillingAddress:  datatypes.JSON(in.BillingAddress),
		Items:           items,
	}

	err := uc.repo.CreateOrder(ctx, order)
	if httperr.IsBusiness(err, domain.ErrCodeDuplicateOrderNumber) {
		// Timestamp+random collision; one fresh number is plenty.
		order.OrderNumber = domain.NewOrderNumber()
		err = uc.repo.CreateOrder(ctx, order)
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &order.ID,
		Metadata: map[string]any{"total": order.Total},
	})

	return order, nil
}
