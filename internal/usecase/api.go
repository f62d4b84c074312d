package usecase

import (
	"context"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
)

// API is the older combined client surface. Every method delegates to the
// corresponding namespaced usecase, so both share one store and one set of
// filtering rules.
type API struct {
	Auth         AuthUsecase
	Patients     PatientUsecase
	Doctors      DoctorUsecase
	Appointments AppointmentUsecase
	Dashboard    DashboardUsecase
}

func NewAPI(auth AuthUsecase, patients PatientUsecase, doctors DoctorUsecase, appointments AppointmentUsecase, dashboard DashboardUsecase) *API {
	return &API{
		Auth:         auth,
		Patients:     patients,
		Doctors:      doctors,
		Appointments: appointments,
		Dashboard:    dashboard,
	}
}

func (a *API) GetPatients(ctx context.Context, filter *entity.PatientFilter) (*entity.Page[entity.Patient], error) {
	return a.Patients.GetPatients(ctx, filter)
}

func (a *API) GetPatient(ctx context.Context, id string) (*entity.Patient, error) {
	return a.Patients.GetPatient(ctx, id)
}

func (a *API) AddPatient(ctx context.Context, req *dto.CreatePatientRequest) (*entity.Patient, error) {
	return a.Patients.CreatePatient(ctx, req)
}

func (a *API) UpdatePatient(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*entity.Patient, error) {
	return a.Patients.UpdatePatient(ctx, id, req)
}

func (a *API) DeletePatient(ctx context.Context, id string) error {
	return a.Patients.DeletePatient(ctx, id)
}

func (a *API) GetDoctors(ctx context.Context, filter *entity.DoctorFilter) (*entity.Page[entity.Doctor], error) {
	return a.Doctors.GetDoctors(ctx, filter)
}

func (a *API) GetDoctor(ctx context.Context, id string) (*entity.Doctor, error) {
	return a.Doctors.GetDoctor(ctx, id)
}

func (a *API) AddDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error) {
	return a.Doctors.CreateDoctor(ctx, req)
}

func (a *API) GetAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*entity.Page[entity.Appointment], error) {
	return a.Appointments.GetAppointments(ctx, filter)
}

func (a *API) AddAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	return a.Appointments.CreateAppointment(ctx, req)
}

func (a *API) UpdateAppointment(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error) {
	return a.Appointments.UpdateAppointment(ctx, id, req)
}

func (a *API) DeleteAppointment(ctx context.Context, id string) error {
	return a.Appointments.DeleteAppointment(ctx, id)
}

func (a *API) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	return a.Dashboard.GetDashboardStats(ctx)
}

func (a *API) GetRecentAppointments(ctx context.Context) ([]entity.Appointment, error) {
	return a.Dashboard.GetRecentAppointments(ctx)
}

func (a *API) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return a.Auth.Login(ctx, req)
}

func (a *API) Logout(ctx context.Context) error {
	return a.Auth.Logout(ctx)
}
