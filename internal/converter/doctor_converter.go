package converter

import (
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
)

// CreateDoctorRequestToEntity converts a CreateDoctorRequest to a new Doctor entity.
// Doctors are available unless the request says otherwise.
func CreateDoctorRequestToEntity(req *dto.CreateDoctorRequest) *entity.Doctor {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	return &entity.Doctor{
		Name:            req.Name,
		Specialization:  req.Specialization,
		Experience:      req.Experience,
		Rating:          req.Rating,
		Image:           req.Image,
		Email:           req.Email,
		Phone:           req.Phone,
		ConsultationFee: req.ConsultationFee,
		Available:       available,
		AvgRating:       req.Rating,
	}
}

// ApplyDoctorUpdate merges the supplied fields of req into d.
func ApplyDoctorUpdate(d *entity.Doctor, req *dto.UpdateDoctorRequest) {
	setIf(&d.Name, req.Name)
	setIf(&d.Specialization, req.Specialization)
	setIf(&d.Experience, req.Experience)
	setIf(&d.Rating, req.Rating)
	setIf(&d.Image, req.Image)
	setIf(&d.Email, req.Email)
	setIf(&d.Phone, req.Phone)
	setIf(&d.ConsultationFee, req.ConsultationFee)
	setIf(&d.Available, req.Available)
	setIf(&d.PatientCount, req.PatientCount)
	setIf(&d.AvgRating, req.AvgRating)
}
