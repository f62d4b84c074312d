package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doctor represents a doctor listed in the dashboard.
type Doctor struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Specialization  string          `json:"specialization"`
	Experience      int             `json:"experience"`
	Rating          float64         `json:"rating"`
	Image           string          `json:"image,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Available       bool            `json:"available"`
	PatientCount    int             `json:"patient_count"`
	AvgRating       float64         `json:"avg_rating"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
