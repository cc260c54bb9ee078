package booking

import (
	"context"

	"github.com/smilepoint/dental-clinic/internal/models"
)

// Business error codes surfaced by implementations.
const (
	ErrCodeSlotUnavailable = "slot_unavailable"
)

type Repository interface {
	// Book inserts the appointment and flips the matching time slot to
	// unavailable in one transaction. A slot that is already taken
	// fails the whole booking; a slot that does not exist books the
	// appointment without a flip (ad-hoc time).
	Book(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CancelForUser soft-cancels only when the appointment belongs to
	// the user. Returns false when nothing matched.
	CancelForUser(
		ctx context.Context,
		id uint,
		userID uint,
	) (bool, error)

	// ListForUser returns the user's appointments with the dentist
	// embedded, newest date first, then latest start time.
	ListForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// ListAvailableSlots returns a dentist's free slots for a date,
	// earliest start first.
	ListAvailableSlots(
		ctx context.Context,
		dentistID uint,
		date string,
	) ([]models.TimeSlot, error)
}
