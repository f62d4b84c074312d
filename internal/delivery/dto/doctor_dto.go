package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateDoctorRequest struct {
	Name            string          `json:"name"`
	Specialization  string          `json:"specialization"`
	Experience      int             `json:"experience"`
	Rating          float64         `json:"rating"`
	Image           string          `json:"image,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Available       *bool           `json:"available,omitempty"`
}

// UpdateDoctorRequest carries a partial update: nil fields are left as they are.
type UpdateDoctorRequest struct {
	Name            *string          `json:"name,omitempty"`
	Specialization  *string          `json:"specialization,omitempty"`
	Experience      *int             `json:"experience,omitempty"`
	Rating          *float64         `json:"rating,omitempty"`
	Image           *string          `json:"image,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee,omitempty"`
	Available       *bool            `json:"available,omitempty"`
	PatientCount    *int             `json:"patient_count,omitempty"`
	AvgRating       *float64         `json:"avg_rating,omitempty"`
}
