package usecase_test

import (
	"context"
	"io"
	"testing"
	"time"

	"hospital-dashboard/config"
	"hospital-dashboard/internal/infrastructure/session"
	"hospital-dashboard/internal/infrastructure/simulation"
	"hospital-dashboard/internal/repository"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/jwt"

	"github.com/sirupsen/logrus"
)

// fixedNow is a Thursday; the seeded appointments span its week.
var fixedNow = time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store        *repository.Store
	session      *session.Session
	jwt          *jwt.JWTService
	auth         usecase.AuthUsecase
	patients     usecase.PatientUsecase
	doctors      usecase.DoctorUsecase
	appointments usecase.AppointmentUsecase
	dashboard    usecase.DashboardUsecase
	api          *usecase.API
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	failure simulation.FailurePolicy
	derived bool
	empty   bool
}

func withFailure(p simulation.FailurePolicy) fixtureOption {
	return func(c *fixtureConfig) { c.failure = p }
}

func withDerivedDashboard() fixtureOption {
	return func(c *fixtureConfig) { c.derived = true }
}

func withEmptyStore() fixtureOption {
	return func(c *fixtureConfig) { c.empty = true }
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func clock() time.Time { return fixedNow }

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	cfg := &fixtureConfig{failure: simulation.NeverFail{}}
	for _, opt := range opts {
		opt(cfg)
	}

	log := quietLogger()
	store := repository.NewStore(repository.WithClock(clock))
	if !cfg.empty {
		store.Seed(repository.SeedPatients(), repository.SeedDoctors(), repository.SeedAppointments())
	}

	backend := &usecase.Backend{
		Mode:      config.BackendMock,
		Simulator: simulation.NewSimulator(0, cfg.failure, log),
		Clock:     clock,
	}
	sess := session.New(session.NewMemoryStorage(), log)
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})

	patientRepo := repository.NewPatientRepository(store)
	doctorRepo := repository.NewDoctorRepository(store)
	appointmentRepo := repository.NewAppointmentRepository(store)
	recordRepo := repository.NewPatientRecordRepository(store)

	f := &fixture{
		store:        store,
		session:      sess,
		jwt:          jwtService,
		auth:         usecase.NewAuthUsecase(backend, log, sess, jwtService),
		patients:     usecase.NewPatientUsecase(backend, log, patientRepo, recordRepo),
		doctors:      usecase.NewDoctorUsecase(backend, log, doctorRepo, appointmentRepo),
		appointments: usecase.NewAppointmentUsecase(backend, log, appointmentRepo, patientRepo, doctorRepo),
		dashboard: usecase.NewDashboardUsecase(backend, log, usecase.DashboardConfig{
			Derived: cfg.derived,
			Stats:   repository.SeedDashboardStats(),
			Weekly:  repository.SeedWeeklyAppointments(),
		}, patientRepo, doctorRepo, appointmentRepo),
	}
	f.api = usecase.NewAPI(f.auth, f.patients, f.doctors, f.appointments, f.dashboard)
	return f
}

func ctx() context.Context { return context.Background() }
