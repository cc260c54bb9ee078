package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/smilepoint/dental-clinic/internal/domain/booking"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Book (appointment + slot flip, one transaction)
// --------------------------------------------------

func (r *BookingGormRepository) Book(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var slot models.TimeSlot
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"dentist_id = ? AND date = ? AND start_time = ?",
				ap.DentistID, ap.Date, ap.StartTime,
			).
			First(&slot).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Ad-hoc time with no tracked slot: book without a flip.

		case err != nil:
			return err

		default:
			if !slot.IsAvailable {
				return httperr.ErrBusiness(domain.ErrCodeSlotUnavailable)
			}
			if err := tx.Model(&slot).Update("is_available", false).Error; err != nil {
				return err
			}
		}

		return tx.Create(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) CancelForUser(
	ctx context.Context,
	id uint,
	userID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", string(domain.StatusCancelled))

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Lists
// --------------------------------------------------

func (r *BookingGormRepository) ListForUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Dentist").
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAvailableSlots(
	ctx context.Context,
	dentistID uint,
	date string,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where(
			"dentist_id = ? AND date = ? AND is_available = ?",
			dentistID, date, true,
		).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
