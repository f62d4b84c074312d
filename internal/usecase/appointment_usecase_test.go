package usecase_test

import (
	"testing"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appointmentIDs(items []entity.Appointment) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestGetTodayAppointments(t *testing.T) {
	f := newFixture(t, withEmptyStore())
	f.store.Seed(nil, nil, []entity.Appointment{
		{ID: "1", Date: "2024-02-15", Time: "09:00"},
		{ID: "2", Date: "2024-02-16", Time: "09:00"},
	})

	today, err := f.appointments.GetTodayAppointments(ctx())
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, appointmentIDs(today))
}

func TestGetUpcomingAppointments_SortedByDateThenTime(t *testing.T) {
	f := newFixture(t)

	upcoming, err := f.appointments.GetUpcomingAppointments(ctx())
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "3", "5", "8"}, appointmentIDs(upcoming))
}

func TestGetAppointments_Filters(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name   string
		filter entity.AppointmentFilter
		want   []string
	}{
		{"status case-insensitive", entity.AppointmentFilter{Status: "COMPLETED"}, []string{"2", "7"}},
		{"date exact", entity.AppointmentFilter{Date: "2024-02-16"}, []string{"3", "4"}},
		{"doctor id", entity.AppointmentFilter{DoctorID: "1"}, []string{"1", "5", "8"}},
		{"patient id", entity.AppointmentFilter{PatientID: "1"}, []string{"1", "7"}},
		{"search doctor name", entity.AppointmentFilter{Search: "garcia"}, []string{"4"}},
		{"search patient name", entity.AppointmentFilter{Search: "john"}, []string{"1", "2", "7"}},
		{"combined", entity.AppointmentFilter{DoctorID: "1", Status: "scheduled", Date: "2024-02-18"}, []string{"8"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filter := tc.filter
			page, err := f.appointments.GetAppointments(ctx(), &filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, appointmentIDs(page.Items))
		})
	}
}

func TestCreateAppointment_SnapshotsFromStore(t *testing.T) {
	f := newFixture(t)

	created, err := f.appointments.CreateAppointment(ctx(), &dto.CreateAppointmentRequest{
		PatientID: "2",
		DoctorID:  "5",
		Date:      "2024-03-01",
		Time:      "08:00",
		Type:      "Consultation",
	})
	require.NoError(t, err)
	assert.Equal(t, "9", created.ID)
	assert.Equal(t, "Sarah Johnson", created.Patient.Name)
	assert.Equal(t, "Dermatology", created.Doctor.Specialization)
	assert.Equal(t, entity.AppointmentStatusScheduled, created.Status)
	assert.Equal(t, entity.PaymentStatusPending, created.PaymentStatus)

	// The snapshot outlives the patient.
	require.NoError(t, f.patients.DeletePatient(ctx(), "2"))
	got, err := f.appointments.GetAppointment(ctx(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", got.Patient.Name)
}

func TestCreateAppointment_UnknownReferencesAccepted(t *testing.T) {
	f := newFixture(t)

	created, err := f.appointments.CreateAppointment(ctx(), &dto.CreateAppointmentRequest{
		Patient:  &entity.PatientSnapshot{ID: "p-x", Name: "Walk In"},
		DoctorID: "d-x",
		Date:     "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Walk In", created.Patient.Name)
	assert.Equal(t, "d-x", created.Doctor.ID)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	f := newFixture(t)
	before, err := f.appointments.GetAppointment(ctx(), "3")
	require.NoError(t, err)

	updated, err := f.appointments.UpdateAppointmentStatus(ctx(), "3", "Confirmed")
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", updated.Status)
	assert.Equal(t, before.Notes, updated.Notes)
	assert.Equal(t, before.Date, updated.Date)
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))

	_, err = f.appointments.UpdateAppointmentStatus(ctx(), "404", "confirmed")
	assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
}

func TestUpdateAndDeleteAppointment(t *testing.T) {
	f := newFixture(t)

	notes := "Bring previous ECG"
	updated, err := f.appointments.UpdateAppointment(ctx(), "1", &dto.UpdateAppointmentRequest{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, "09:00", updated.Time)

	require.NoError(t, f.appointments.DeleteAppointment(ctx(), "1"))
	page, err := f.appointments.GetAppointments(ctx(), nil)
	require.NoError(t, err)
	assert.Len(t, page.Items, 7)

	_, err = f.appointments.GetAppointment(ctx(), "1")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}
