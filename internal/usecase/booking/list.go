package booking

import (
	"context"

	domain "github.com/smilepoint/dental-clinic/internal/domain/booking"
	"github.com/smilepoint/dental-clinic/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListForUser(ctx, userID)
}

type ListAvailableSlots struct {
	repo domain.Repository
}

func NewListAvailableSlots(repo domain.Repository) *ListAvailableSlots {
	return &ListAvailableSlots{repo: repo}
}

func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
	dentistID uint,
	date string,
) ([]models.TimeSlot, error) {
	return uc.repo.ListAvailableSlots(ctx, dentistID, date)
}
