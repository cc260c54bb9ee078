package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/httpresp"
	"github.com/smilepoint/dental-clinic/internal/middleware"
	ucOrdering "github.com/smilepoint/dental-clinic/internal/usecase/ordering"
)

type OrderHandler struct {
	create *ucOrdering.CreateOrder
	list   *ucOrdering.ListOrders
}

func NewOrderHandler(
	create *ucOrdering.CreateOrder,
	list *ucOrdering.ListOrders,
) *OrderHandler {
	return &OrderHandler{
		create: create,
		list:   list,
	}
}

// --------- Requests ---------

type OrderItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress json.RawMessage    `json:"shippingAddress"`
	BillingAddress  json.RawMessage    `json:"billingAddress"`
}

// --------- Handlers ---------

func (h *OrderHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Order items are required")
		return
	}

	items := make([]ucOrdering.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ucOrdering.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.create.Execute(c.Request.Context(), ucOrdering.CreateOrderInput{
		UserID:          userID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
	})
	if err != nil {
		var notFound ucOrdering.ProductNotFoundError
		switch {
		case errors.As(err, &notFound):
			httperr.BadRequest(c, fmt.Sprintf("Product %d not found", notFound.ProductID))
		case httperr.IsBusiness(err, "empty_order"):
			httperr.BadRequest(c, "Order items are required")
		case httperr.IsBusiness(err, "invalid_quantity"):
			httperr.BadRequest(c, "Invalid item quantity")
		default:
			httperr.Internal(c, "Failed to create order")
		}
		return
	}

	httpresp.OK(c, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	orders, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "Failed to fetch orders")
		return
	}

	httpresp.OK(c, orders)
}
