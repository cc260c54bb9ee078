package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/smilepoint/dental-clinic/internal/domain/catalog"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/httpresp"
	ucBooking "github.com/smilepoint/dental-clinic/internal/usecase/booking"
)

type DentistHandler struct {
	catalog domain.Repository
	slots   *ucBooking.ListAvailableSlots
}

func NewDentistHandler(
	catalog domain.Repository,
	slots *ucBooking.ListAvailableSlots,
) *DentistHandler {
	return &DentistHandler{
		catalog: catalog,
		slots:   slots,
	}
}

func (h *DentistHandler) List(c *gin.Context) {
	dentists, err := h.catalog.ListDentists(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to fetch dentists")
		return
	}

	httpresp.OK(c, dentists)
}

func (h *DentistHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "Invalid dentist id")
		return
	}

	dentist, err := h.catalog.GetDentist(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Dentist not found")
			return
		}
		httperr.Internal(c, "Failed to fetch dentist")
		return
	}

	httpresp.OK(c, dentist)
}

func (h *DentistHandler) ListTimeSlots(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "Invalid dentist id")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "Date parameter is required")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), id, date)
	if err != nil {
		httperr.Internal(c, "Failed to fetch time slots")
		return
	}

	httpresp.OK(c, slots)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
