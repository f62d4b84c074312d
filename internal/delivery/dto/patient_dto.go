package dto

// Request DTOs

type CreatePatientRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"dateOfBirth"` // Format: YYYY-MM-DD
	Gender         string `json:"gender"`
	Address        string `json:"address"`
	BloodGroup     string `json:"bloodGroup,omitempty"`
	MedicalHistory string `json:"medicalHistory"`
}

// UpdatePatientRequest carries a partial update: nil fields are left as they are.
type UpdatePatientRequest struct {
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	DateOfBirth      *string `json:"dateOfBirth,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	Address          *string `json:"address,omitempty"`
	BloodGroup       *string `json:"bloodGroup,omitempty"`
	MedicalHistory   *string `json:"medicalHistory,omitempty"`
	AppointmentCount *int    `json:"appointment_count,omitempty"`
	LastAppointment  *string `json:"last_appointment,omitempty"`
}

type CreateFindingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity,omitempty"`
	DoctorID    string `json:"doctor_id,omitempty"`
}

type CreateSuggestionRequest struct {
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	DoctorID string `json:"doctor_id,omitempty"`
}

type UploadDocumentRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
	Size int64  `json:"size"`
}
