package booking

import (
	"context"

	"github.com/smilepoint/dental-clinic/internal/audit"
	domain "github.com/smilepoint/dental-clinic/internal/domain/booking"
	"github.com/smilepoint/dental-clinic/internal/httperr"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-cancels the appointment. Ownership is part of the
// predicate: an appointment belonging to someone else reads the same
// as one that does not exist.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) error {

	ok, err := uc.repo.CancelForUser(ctx, appointmentID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
