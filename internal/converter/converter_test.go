package converter

import (
	"testing"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestApplyPatientUpdate_ShallowMerge(t *testing.T) {
	p := &entity.Patient{ID: "1", Name: "Ann", Email: "ann@example.com", Phone: "111", AppointmentCount: 2}

	ApplyPatientUpdate(p, &dto.UpdatePatientRequest{Phone: ptr("222"), MedicalHistory: ptr("")})

	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, "ann@example.com", p.Email)
	assert.Equal(t, "222", p.Phone)
	assert.Equal(t, "", p.MedicalHistory)
	assert.Equal(t, 2, p.AppointmentCount)
}

func TestApplyDoctorUpdate(t *testing.T) {
	d := &entity.Doctor{Name: "Dr. A", Specialization: "Cardiology", Available: true, ConsultationFee: decimal.NewFromInt(100)}

	ApplyDoctorUpdate(d, &dto.UpdateDoctorRequest{Available: ptr(false), ConsultationFee: ptr(decimal.NewFromInt(150))})

	assert.Equal(t, "Dr. A", d.Name)
	assert.False(t, d.Available)
	assert.True(t, d.ConsultationFee.Equal(decimal.NewFromInt(150)))
}

func TestCreateDoctorRequestToEntity_DefaultsAvailable(t *testing.T) {
	d := CreateDoctorRequestToEntity(&dto.CreateDoctorRequest{Name: "Dr. B", Rating: 4.2})
	assert.True(t, d.Available)
	assert.Equal(t, 4.2, d.AvgRating)
}

func TestCreateAppointmentRequestToEntity_Defaults(t *testing.T) {
	a := CreateAppointmentRequestToEntity(&dto.CreateAppointmentRequest{Date: "2024-02-20", Time: "09:00"},
		entity.PatientSnapshot{ID: "1"}, entity.DoctorSnapshot{ID: "2"})

	assert.Equal(t, entity.AppointmentStatusScheduled, a.Status)
	assert.Equal(t, entity.PaymentStatusPending, a.PaymentStatus)
	assert.Equal(t, "1", a.Patient.ID)
	assert.Equal(t, "2", a.Doctor.ID)
}
