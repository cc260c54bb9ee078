package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Consultation Type
// ===============================

type ConsultationType string

const (
	ConsultationVideo  ConsultationType = "video"
	ConsultationClinic ConsultationType = "clinic"
)

func ValidConsultationType(t string) bool {
	return ConsultationType(t) == ConsultationVideo || ConsultationType(t) == ConsultationClinic
}
