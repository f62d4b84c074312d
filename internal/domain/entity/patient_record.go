package entity

import "time"

// Finding is a clinical finding recorded against a patient.
type Finding struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    string    `json:"severity,omitempty"`
	DoctorID    string    `json:"doctor_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Suggestion is a doctor's recommendation for a patient.
type Suggestion struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Text      string    `json:"text"`
	Category  string    `json:"category,omitempty"`
	DoctorID  string    `json:"doctor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Document is a file attached to a patient's record. Content is not stored,
// only its metadata.
type Document struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patient_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	URL        string    `json:"url,omitempty"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
