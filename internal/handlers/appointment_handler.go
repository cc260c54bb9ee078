package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/smilepoint/dental-clinic/internal/domain/booking"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/httpresp"
	"github.com/smilepoint/dental-clinic/internal/middleware"
	ucBooking "github.com/smilepoint/dental-clinic/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucBooking.CreateAppointment
	list         *ucBooking.ListAppointments
	updateStatus *ucBooking.UpdateStatus
	cancel       *ucBooking.CancelAppointment
}

func NewAppointmentHandler(
	create *ucBooking.CreateAppointment,
	list *ucBooking.ListAppointments,
	updateStatus *ucBooking.UpdateStatus,
	cancel *ucBooking.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		list:         list,
		updateStatus: updateStatus,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DentistID        uint   `json:"dentistId" binding:"required"`
	Date             string `json:"date" binding:"required"`
	StartTime        string `json:"startTime" binding:"required"`
	EndTime          string `json:"endTime" binding:"required"`
	ConsultationType string `json:"consultationType" binding:"required"`
	Reason           string `json:"reason"`
	Price            int    `json:"price"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid appointment data")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		UserID:           userID,
		DentistID:        req.DentistID,
		Date:             req.Date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		ConsultationType: req.ConsultationType,
		Reason:           req.Reason,
		Price:            req.Price,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, domain.ErrCodeSlotUnavailable):
			httperr.BadRequest(c, "Time slot is no longer available")
		case httperr.IsBusiness(err, "invalid_consultation_type"):
			httperr.BadRequest(c, "Invalid consultation type")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "Invalid appointment data")
		case httperr.IsBusiness(err, "date_in_past"):
			httperr.BadRequest(c, "Appointment date is in the past")
		default:
			httperr.Internal(c, "Failed to create appointment")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "Failed to fetch appointments")
		return
	}

	httpresp.OK(c, aps)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "Invalid appointment id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Status is required")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "Invalid status")
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "Appointment not found")
		default:
			httperr.Internal(c, "Failed to update appointment status")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "Invalid appointment id")
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), id, userID); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "Appointment not found or unauthorized")
			return
		}
		httperr.Internal(c, "Failed to cancel appointment")
		return
	}

	httpresp.OK(c, gin.H{"message": "Appointment cancelled successfully"})
}
