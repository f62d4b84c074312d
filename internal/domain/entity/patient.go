package entity

import "time"

// Patient is a patient record as exchanged with the dashboard.
// AppointmentCount is advisory: appointment mutations do not recompute it.
type Patient struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	DateOfBirth      string    `json:"dateOfBirth"` // Format: YYYY-MM-DD
	Gender           string    `json:"gender"`
	Address          string    `json:"address"`
	BloodGroup       string    `json:"bloodGroup,omitempty"`
	MedicalHistory   string    `json:"medicalHistory"`
	AppointmentCount int       `json:"appointment_count"`
	LastAppointment  string    `json:"last_appointment"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Gender values used by the seed data. Filtering compares case-insensitively.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
