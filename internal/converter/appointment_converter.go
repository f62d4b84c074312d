package converter

import (
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
)

// CreateAppointmentRequestToEntity builds a new appointment from req and the
// resolved patient and doctor snapshots. Status and payment status default to
// scheduled and pending.
func CreateAppointmentRequestToEntity(req *dto.CreateAppointmentRequest, patient entity.PatientSnapshot, doctor entity.DoctorSnapshot) *entity.Appointment {
	status := req.Status
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}
	payment := req.PaymentStatus
	if payment == "" {
		payment = entity.PaymentStatusPending
	}
	return &entity.Appointment{
		Patient:       patient,
		Doctor:        doctor,
		Date:          req.Date,
		Time:          req.Time,
		Status:        status,
		Type:          req.Type,
		Notes:         req.Notes,
		PaymentStatus: payment,
		Amount:        req.Amount,
	}
}

// ApplyAppointmentUpdate merges the supplied fields of req into a.
func ApplyAppointmentUpdate(a *entity.Appointment, req *dto.UpdateAppointmentRequest) {
	setIf(&a.Patient, req.Patient)
	setIf(&a.Doctor, req.Doctor)
	setIf(&a.Date, req.Date)
	setIf(&a.Time, req.Time)
	setIf(&a.Status, req.Status)
	setIf(&a.Type, req.Type)
	setIf(&a.Notes, req.Notes)
	setIf(&a.PaymentStatus, req.PaymentStatus)
	setIf(&a.Amount, req.Amount)
}
