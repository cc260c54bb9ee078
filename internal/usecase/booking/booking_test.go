package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/smilepoint/dental-clinic/internal/audit"
	domain "github.com/smilepoint/dental-clinic/internal/domain/booking"
	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/models"
	"github.com/smilepoint/dental-clinic/internal/timezone"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	slots        []models.TimeSlot
	appointments []models.Appointment
	nextID       uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) Book(_ context.Context, ap *models.Appointment) error {
	for i, slot := range r.slots {
		if slot.DentistID != ap.DentistID || slot.Date != ap.Date || slot.StartTime != ap.StartTime {
			continue
		}
		if !slot.IsAvailable {
			return httperr.ErrBusiness(domain.ErrCodeSlotUnavailable)
		}
		r.slots[i].IsAvailable = false
		break
	}

	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) Update(_ context.Context, ap *models.Appointment) error {
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) CancelForUser(_ context.Context, id uint, userID uint) (bool, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id && r.appointments[i].UserID == userID {
			r.appointments[i].Status = string(domain.StatusCancelled)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) ListForUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == userID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAvailableSlots(_ context.Context, dentistID uint, date string) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, slot := range r.slots {
		if slot.DentistID == dentistID && slot.Date == date && slot.IsAvailable {
			out = append(out, slot)
		}
	}
	return out, nil
}

// ======================================================
// HELPERS
// ======================================================

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func futureDate() string {
	return timezone.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func validInput(date string) CreateAppointmentInput {
	return CreateAppointmentInput{
		UserID:           1,
		DentistID:        2,
		Date:             date,
		StartTime:        "09:00",
		EndTime:          "10:00",
		ConsultationType: "clinic",
		Reason:           "checkup",
		Price:            5000,
	}
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointmentBooksSlot(t *testing.T) {
	ctx := context.Background()
	date := futureDate()

	repo := &fakeRepo{slots: []models.TimeSlot{
		{ID: 10, DentistID: 2, Date: date, StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
		{ID: 11, DentistID: 2, Date: date, StartTime: "10:00", EndTime: "11:00", IsAvailable: true},
	}}
	uc := NewCreateAppointment(repo, testDispatcher())

	ap, err := uc.Execute(ctx, validInput(date))
	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
	assert.Equal(t, string(domain.StatusPending), ap.Status)

	// The booked slot no longer shows up as available.
	slots, err := repo.ListAvailableSlots(ctx, 2, date)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].StartTime)
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	ctx := context.Background()
	date := futureDate()

	repo := &fakeRepo{slots: []models.TimeSlot{
		{ID: 10, DentistID: 2, Date: date, StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
	}}
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(ctx, validInput(date))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, validInput(date))
	assert.True(t, httperr.IsBusiness(err, domain.ErrCodeSlotUnavailable))
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointmentWithoutSlot(t *testing.T) {
	// No matching slot row: the booking still goes through.
	repo := &fakeRepo{}
	uc := NewCreateAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), validInput(futureDate()))
	require.NoError(t, err)
	assert.NotZero(t, ap.ID)
}

func TestCreateAppointmentRejectsBadInput(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewCreateAppointment(repo, testDispatcher())
	ctx := context.Background()

	in := validInput(futureDate())
	in.ConsultationType = "phone"
	_, err := uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_consultation_type"))

	in = validInput("not-a-date")
	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	in = validInput(futureDate())
	in.EndTime = "25:99"
	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	in = validInput("2020-01-01")
	_, err = uc.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "date_in_past"))

	assert.Empty(t, repo.appointments)
}

// ======================================================
// CANCEL
// ======================================================

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{appointments: []models.Appointment{
		{ID: 1, UserID: 7, Status: string(domain.StatusPending)},
	}}
	uc := NewCancelAppointment(repo, testDispatcher())

	require.NoError(t, uc.Execute(ctx, 1, 7))
	assert.Equal(t, string(domain.StatusCancelled), repo.appointments[0].Status)
}

func TestCancelForeignAppointment(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{appointments: []models.Appointment{
		{ID: 1, UserID: 7, Status: string(domain.StatusPending)},
	}}
	uc := NewCancelAppointment(repo, testDispatcher())

	err := uc.Execute(ctx, 1, 99)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	assert.Equal(t, string(domain.StatusPending), repo.appointments[0].Status)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{appointments: []models.Appointment{
		{ID: 1, UserID: 7, Status: string(domain.StatusPending)},
	}}
	uc := NewUpdateStatus(repo, testDispatcher())

	ap, err := uc.Execute(ctx, 1, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)
	assert.Equal(t, "confirmed", repo.appointments[0].Status)
}

func TestUpdateStatusInvalid(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUpdateStatus(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 1, "done")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateStatusMissing(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUpdateStatus(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 42, "confirmed")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
