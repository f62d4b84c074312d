package converter

import (
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
)

// CreatePatientRequestToEntity converts a CreatePatientRequest to a new Patient entity
func CreatePatientRequestToEntity(req *dto.CreatePatientRequest) *entity.Patient {
	return &entity.Patient{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Address:        req.Address,
		BloodGroup:     req.BloodGroup,
		MedicalHistory: req.MedicalHistory,
	}
}

// ApplyPatientUpdate merges the supplied fields of req into p.
func ApplyPatientUpdate(p *entity.Patient, req *dto.UpdatePatientRequest) {
	setIf(&p.Name, req.Name)
	setIf(&p.Email, req.Email)
	setIf(&p.Phone, req.Phone)
	setIf(&p.DateOfBirth, req.DateOfBirth)
	setIf(&p.Gender, req.Gender)
	setIf(&p.Address, req.Address)
	setIf(&p.BloodGroup, req.BloodGroup)
	setIf(&p.MedicalHistory, req.MedicalHistory)
	setIf(&p.AppointmentCount, req.AppointmentCount)
	setIf(&p.LastAppointment, req.LastAppointment)
}

func FindingRequestToEntity(patientID string, req *dto.CreateFindingRequest) *entity.Finding {
	return &entity.Finding{
		PatientID:   patientID,
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		DoctorID:    req.DoctorID,
	}
}

func SuggestionRequestToEntity(patientID string, req *dto.CreateSuggestionRequest) *entity.Suggestion {
	return &entity.Suggestion{
		PatientID: patientID,
		Text:      req.Text,
		Category:  req.Category,
		DoctorID:  req.DoctorID,
	}
}

func DocumentRequestToEntity(patientID string, req *dto.UploadDocumentRequest) *entity.Document {
	return &entity.Document{
		PatientID: patientID,
		Name:      req.Name,
		Type:      req.Type,
		URL:       req.URL,
		Size:      req.Size,
	}
}

// setIf overwrites *dst when src was supplied.
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
