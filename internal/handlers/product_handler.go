package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/smilepoint/dental-clinic/internal/domain/catalog"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/httpresp"
)

type ProductHandler struct {
	catalog domain.Repository
}

func NewProductHandler(catalog domain.Repository) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

func (h *ProductHandler) List(c *gin.Context) {
	filter := domain.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	products, err := h.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "Failed to fetch products")
		return
	}

	httpresp.OK(c, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "Invalid product id")
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Product not found")
			return
		}
		httperr.Internal(c, "Failed to fetch product")
		return
	}

	httpresp.OK(c, product)
}
