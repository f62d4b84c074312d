package usecase_test

import (
	"testing"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_SharesStoreWithNamespacedUsecases(t *testing.T) {
	f := newFixture(t)

	added, err := f.api.AddPatient(ctx(), &dto.CreatePatientRequest{Name: "Legacy Lee", Gender: "Female"})
	require.NoError(t, err)

	viaNamespaced, err := f.patients.GetPatients(ctx(), &entity.PatientFilter{Gender: "female"})
	require.NoError(t, err)
	viaLegacy, err := f.api.GetPatients(ctx(), &entity.PatientFilter{Gender: "female"})
	require.NoError(t, err)
	assert.Equal(t, viaNamespaced.Items, viaLegacy.Items)
	assert.Contains(t, patientIDs(viaLegacy.Items), added.ID)

	require.NoError(t, f.api.DeletePatient(ctx(), added.ID))
	_, err = f.patients.GetPatient(ctx(), added.ID)
	assert.Error(t, err)
}

func TestAPI_AppointmentsAndDashboard(t *testing.T) {
	f := newFixture(t)

	appt, err := f.api.AddAppointment(ctx(), &dto.CreateAppointmentRequest{PatientID: "1", DoctorID: "2", Date: "2024-02-20"})
	require.NoError(t, err)

	status := "completed"
	_, err = f.api.UpdateAppointment(ctx(), appt.ID, &dto.UpdateAppointmentRequest{Status: &status})
	require.NoError(t, err)

	page, err := f.appointments.GetAppointments(ctx(), &entity.AppointmentFilter{Status: "completed"})
	require.NoError(t, err)
	assert.Contains(t, appointmentIDs(page.Items), appt.ID)

	require.NoError(t, f.api.DeleteAppointment(ctx(), appt.ID))

	recent, err := f.api.GetRecentAppointments(ctx())
	require.NoError(t, err)
	assert.Len(t, recent, 5)

	_, err = f.api.GetDashboardStats(ctx())
	require.NoError(t, err)

	_, err = f.api.Login(ctx(), &dto.LoginRequest{Username: "admin", Password: "x"})
	require.NoError(t, err)
	require.NoError(t, f.api.Logout(ctx()))
	assert.False(t, f.auth.IsAuthenticated(ctx()))
}
