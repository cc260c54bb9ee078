package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogDomain "github.com/smilepoint/dental-clinic/internal/domain/catalog"
	orderingDomain "github.com/smilepoint/dental-clinic/internal/domain/ordering"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/httpresp"
	"github.com/smilepoint/dental-clinic/internal/middleware"
	"github.com/smilepoint/dental-clinic/internal/models"
)

type ReviewHandler struct {
	catalog  catalogDomain.Repository
	ordering orderingDomain.Repository
}

func NewReviewHandler(
	catalog catalogDomain.Repository,
	ordering orderingDomain.Repository,
) *ReviewHandler {
	return &ReviewHandler{
		catalog:  catalog,
		ordering: ordering,
	}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// --------- Handlers ---------

func (h *ReviewHandler) List(c *gin.Context) {
	productID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "Invalid product id")
		return
	}

	reviews, err := h.catalog.ListReviews(c.Request.Context(), productID)
	if err != nil {
		httperr.Internal(c, "Failed to fetch reviews")
		return
	}

	httpresp.OK(c, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	productID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "Invalid product id")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Rating between 1 and 5 is required")
		return
	}

	if _, err := h.catalog.GetProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Product not found")
			return
		}
		httperr.Internal(c, "Failed to fetch product")
		return
	}

	purchased, err := h.ordering.HasPurchased(c.Request.Context(), userID, productID)
	if err != nil {
		httperr.Internal(c, "Failed to create review")
		return
	}

	review := &models.ProductReview{
		ProductID:          productID,
		UserID:             userID,
		Rating:             req.Rating,
		Title:              req.Title,
		Comment:            req.Comment,
		IsVerifiedPurchase: purchased,
	}

	if err := h.catalog.CreateReview(c.Request.Context(), review); err != nil {
		httperr.Internal(c, "Failed to create review")
		return
	}

	httpresp.Created(c, review)
}
