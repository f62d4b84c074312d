package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conventional appointment statuses. Status is a free-form string and is
// never checked against this list.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusPending   = "pending"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// PatientSnapshot is the patient data copied into an appointment at creation time.
type PatientSnapshot struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Gender string `json:"gender,omitempty"`
}

// DoctorSnapshot is the doctor data copied into an appointment at creation time.
type DoctorSnapshot struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
}

// Appointment embeds denormalized snapshots of its patient and doctor.
// Deleting the patient or doctor later leaves the snapshot untouched.
type Appointment struct {
	ID            string          `json:"id"`
	Patient       PatientSnapshot `json:"patient"`
	Doctor        DoctorSnapshot  `json:"doctor"`
	Date          string          `json:"date"` // Format: YYYY-MM-DD
	Time          string          `json:"time"` // Format: HH:MM
	Status        string          `json:"status"`
	Type          string          `json:"type"`
	Notes         string          `json:"notes"`
	PaymentStatus string          `json:"paymentStatus"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PatientSnapshotOf copies the fields an appointment keeps about a patient.
func PatientSnapshotOf(p *Patient) PatientSnapshot {
	return PatientSnapshot{
		ID:     p.ID,
		Name:   p.Name,
		Email:  p.Email,
		Phone:  p.Phone,
		Gender: p.Gender,
	}
}

// DoctorSnapshotOf copies the fields an appointment keeps about a doctor.
func DoctorSnapshotOf(d *Doctor) DoctorSnapshot {
	return DoctorSnapshot{
		ID:             d.ID,
		Name:           d.Name,
		Specialization: d.Specialization,
	}
}
