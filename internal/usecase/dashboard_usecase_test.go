package usecase_test

import (
	"testing"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/infrastructure/simulation"
	"hospital-dashboard/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats_StaticSnapshot(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.patients.DeletePatient(ctx(), "1"))

	stats, err := f.dashboard.GetDashboardStats(ctx())
	require.NoError(t, err)
	want := repository.SeedDashboardStats()
	assert.Equal(t, want.TotalPatients, stats.TotalPatients)
	assert.True(t, want.TotalRevenue.Equal(stats.TotalRevenue))
}

func TestDashboardStats_Derived(t *testing.T) {
	f := newFixture(t, withDerivedDashboard())

	stats, err := f.dashboard.GetDashboardStats(ctx())
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalPatients)
	assert.Equal(t, 5, stats.TotalDoctors)
	assert.Equal(t, 8, stats.TotalAppointments)
	assert.Equal(t, 2, stats.CompletedAppointments)
	assert.Equal(t, 1, stats.PendingAppointments)
	assert.Equal(t, 3, stats.ScheduledAppointments)
	assert.Equal(t, 2, stats.TodayAppointments)
	assert.Equal(t, 8, stats.WeekAppointments)
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("370")), stats.TotalRevenue.String())

	require.NoError(t, f.patients.DeletePatient(ctx(), "1"))
	stats, err = f.dashboard.GetDashboardStats(ctx())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalPatients)
}

func TestRecentAppointments_FirstFiveInserted(t *testing.T) {
	f := newFixture(t)

	recent, err := f.dashboard.GetRecentAppointments(ctx())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, appointmentIDs(recent))

	_, err = f.appointments.CreateAppointment(ctx(), &dto.CreateAppointmentRequest{PatientID: "1", DoctorID: "1", Date: "2024-02-20"})
	require.NoError(t, err)
	recent, err = f.dashboard.GetRecentAppointments(ctx())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, appointmentIDs(recent))
}

func TestRecentAppointments_DerivedNewestFirst(t *testing.T) {
	f := newFixture(t, withDerivedDashboard())

	created, err := f.appointments.CreateAppointment(ctx(), &dto.CreateAppointmentRequest{PatientID: "1", DoctorID: "1", Date: "2024-02-20"})
	require.NoError(t, err)

	recent, err := f.dashboard.GetRecentAppointments(ctx())
	require.NoError(t, err)
	assert.Equal(t, []string{created.ID, "1", "2", "3", "4"}, appointmentIDs(recent))
}

func TestWeeklyAppointments(t *testing.T) {
	static := newFixture(t)
	weekly, err := static.dashboard.GetWeeklyAppointments(ctx())
	require.NoError(t, err)
	assert.Equal(t, repository.SeedWeeklyAppointments(), weekly)

	derived := newFixture(t, withDerivedDashboard())
	weekly, err = derived.dashboard.GetWeeklyAppointments(ctx())
	require.NoError(t, err)
	assert.Equal(t, []entity.WeeklyAppointments{
		{Day: "Mon", Date: "2024-02-12", Count: 0},
		{Day: "Tue", Date: "2024-02-13", Count: 1},
		{Day: "Wed", Date: "2024-02-14", Count: 1},
		{Day: "Thu", Date: "2024-02-15", Count: 2},
		{Day: "Fri", Date: "2024-02-16", Count: 2},
		{Day: "Sat", Date: "2024-02-17", Count: 1},
		{Day: "Sun", Date: "2024-02-18", Count: 1},
	}, weekly)
}

func TestGetOverview(t *testing.T) {
	f := newFixture(t)

	overview, err := f.dashboard.GetOverview(ctx())
	require.NoError(t, err)
	assert.NotNil(t, overview.Stats)
	assert.Len(t, overview.RecentAppointments, 5)
	assert.Len(t, overview.Weekly, 7)

	failing := newFixture(t, withFailure(simulation.AlwaysFail{}))
	_, err = failing.dashboard.GetOverview(ctx())
	assert.ErrorIs(t, err, simulation.ErrSimulatedFailure)
}
