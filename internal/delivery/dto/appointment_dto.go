package dto

import (
	"hospital-dashboard/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Request DTOs

// CreateAppointmentRequest references the patient and doctor either by id or
// by a full snapshot. When the referenced records exist, their current data
// is copied into the appointment.
type CreateAppointmentRequest struct {
	PatientID     string                  `json:"patient_id,omitempty"`
	DoctorID      string                  `json:"doctor_id,omitempty"`
	Patient       *entity.PatientSnapshot `json:"patient,omitempty"`
	Doctor        *entity.DoctorSnapshot  `json:"doctor,omitempty"`
	Date          string                  `json:"date"`
	Time          string                  `json:"time"`
	Status        string                  `json:"status,omitempty"`
	Type          string                  `json:"type"`
	Notes         string                  `json:"notes"`
	PaymentStatus string                  `json:"paymentStatus,omitempty"`
	Amount        decimal.Decimal         `json:"amount"`
}

// UpdateAppointmentRequest carries a partial update: nil fields are left as they are.
type UpdateAppointmentRequest struct {
	Patient       *entity.PatientSnapshot `json:"patient,omitempty"`
	Doctor        *entity.DoctorSnapshot  `json:"doctor,omitempty"`
	Date          *string                 `json:"date,omitempty"`
	Time          *string                 `json:"time,omitempty"`
	Status        *string                 `json:"status,omitempty"`
	Type          *string                 `json:"type,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
	PaymentStatus *string                 `json:"paymentStatus,omitempty"`
	Amount        *decimal.Decimal        `json:"amount,omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
