package booking

import (
	"context"
	"time"

	"github.com/smilepoint/dental-clinic/internal/audit"
	domain "github.com/smilepoint/dental-clinic/internal/domain/booking"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/models"
	"github.com/smilepoint/dental-clinic/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID    uint
	DentistID uint

	Date      string // 2006-01-02
	StartTime string // 15:04
	EndTime   string

	ConsultationType string
	Reason           string
	Price            int // cents
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if !domain.ValidConsultationType(in.ConsultationType) {
		return nil, httperr.ErrBusiness("invalid_consultation_type")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.StartTime,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if _, err := time.Parse("15:04", in.EndTime); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if start.Before(timezone.Now()) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	ap := &models.Appointment{
		UserID:           in.UserID,
		DentistID:        in.DentistID,
		Date:             in.Date,
		StartTime:        in.StartTime,
		EndTime:          in.EndTime,
		ConsultationType: in.ConsultationType,
		Reason:           in.Reason,
		Status:           string(domain.StatusPending),
		Price:            in.Price,
	}

	if err := uc.repo.Book(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
