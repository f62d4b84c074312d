package usecase

import (
	"context"
	"fmt"
	"sort"

	"hospital-dashboard/internal/converter"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrAppointmentNotFound = fmt.Errorf("appointment %w", ErrNotFound)

type AppointmentUsecase interface {
	GetAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*entity.Page[entity.Appointment], error)
	GetAppointment(ctx context.Context, id string) (*entity.Appointment, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id, status string) (*entity.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	GetTodayAppointments(ctx context.Context) ([]entity.Appointment, error)
	GetUpcomingAppointments(ctx context.Context) ([]entity.Appointment, error)
}

type appointmentUsecase struct {
	backend         *Backend
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
}

func NewAppointmentUsecase(
	backend *Backend,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		backend:         backend,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
	}
}

func appointmentQuery(filter *entity.AppointmentFilter) queryBuilder {
	return newQuery().
		str("search", filter.Search).
		str("status", filter.Status).
		str("date", filter.Date).
		str("doctor_id", filter.DoctorID).
		str("patient_id", filter.PatientID).
		num("page", filter.Page).
		num("limit", filter.Limit)
}

func (u *appointmentUsecase) GetAppointments(ctx context.Context, filter *entity.AppointmentFilter) (*entity.Page[entity.Appointment], error) {
	if filter == nil {
		filter = &entity.AppointmentFilter{}
	}

	if u.backend.live() {
		page := new(entity.Page[entity.Appointment])
		if err := u.backend.Client.Get(ctx, "/appointments", appointmentQuery(filter).values(), page); err != nil {
			u.log.Warnf("Failed to fetch appointments: %+v", err)
			return nil, err
		}
		return page, nil
	}

	if err := u.backend.simulate(ctx, "appointments.list"); err != nil {
		u.log.Warnf("Failed to fetch appointments: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return entity.NewPage(appointments, filter.Page, filter.Limit), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*entity.Appointment, error) {
	if u.backend.live() {
		appointment := new(entity.Appointment)
		if err := u.backend.Client.Get(ctx, resourcePath("appointments", id), nil, appointment); err != nil {
			u.log.Warnf("Failed to fetch appointment: %+v", err)
			return nil, err
		}
		return appointment, nil
	}

	if err := u.backend.simulate(ctx, "appointments.get"); err != nil {
		u.log.Warnf("Failed to fetch appointment: %+v", err)
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, ErrAppointmentNotFound)
		return nil, ErrAppointmentNotFound
	}

	return appointment, nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	if u.backend.live() {
		appointment := new(entity.Appointment)
		if err := u.backend.Client.Post(ctx, "/appointments", req, appointment); err != nil {
			u.log.Warnf("Failed to create appointment: %+v", err)
			return nil, err
		}
		return appointment, nil
	}

	if err := u.backend.simulate(ctx, "appointments.create"); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	patient, err := u.patientSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}
	doctor, err := u.doctorSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	appointment := converter.CreateAppointmentRequestToEntity(req, patient, doctor)
	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return appointment, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*entity.Appointment, error) {
	if u.backend.live() {
		appointment := new(entity.Appointment)
		if err := u.backend.Client.Put(ctx, resourcePath("appointments", id), req, appointment); err != nil {
			u.log.Warnf("Failed to update appointment: %+v", err)
			return nil, err
		}
		return appointment, nil
	}

	if err := u.backend.simulate(ctx, "appointments.update"); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	return u.update(ctx, id, func(a *entity.Appointment) {
		converter.ApplyAppointmentUpdate(a, req)
	})
}

// UpdateAppointmentStatus changes only the status. The value is stored as given.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id, status string) (*entity.Appointment, error) {
	if u.backend.live() {
		appointment := new(entity.Appointment)
		body := &dto.UpdateAppointmentStatusRequest{Status: status}
		if err := u.backend.Client.Patch(ctx, resourcePath("appointments", id, "status"), body, appointment); err != nil {
			u.log.Warnf("Failed to update appointment status: %+v", err)
			return nil, err
		}
		return appointment, nil
	}

	if err := u.backend.simulate(ctx, "appointments.status"); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	return u.update(ctx, id, func(a *entity.Appointment) {
		a.Status = status
	})
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id string) error {
	if u.backend.live() {
		if err := u.backend.Client.Delete(ctx, resourcePath("appointments", id), nil); err != nil {
			u.log.Warnf("Failed to delete appointment: %+v", err)
			return err
		}
		return nil
	}

	if err := u.backend.simulate(ctx, "appointments.delete"); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	removed, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if removed == 0 {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, ErrAppointmentNotFound)
		return ErrAppointmentNotFound
	}

	return nil
}

// GetTodayAppointments returns the appointments dated today, in insertion order.
func (u *appointmentUsecase) GetTodayAppointments(ctx context.Context) ([]entity.Appointment, error) {
	if u.backend.live() {
		var appointments []entity.Appointment
		if err := u.backend.Client.Get(ctx, "/appointments/today", nil, &appointments); err != nil {
			u.log.Warnf("Failed to fetch today's appointments: %+v", err)
			return nil, err
		}
		return appointments, nil
	}

	if err := u.backend.simulate(ctx, "appointments.today"); err != nil {
		u.log.Warnf("Failed to fetch today's appointments: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, &entity.AppointmentFilter{Date: u.backend.today()})
	if err != nil {
		u.log.Warnf("Failed to find today's appointments: %+v", err)
		return nil, err
	}
	return appointments, nil
}

// GetUpcomingAppointments returns the appointments dated after today, earliest first.
// Dates are YYYY-MM-DD, so string order is date order.
func (u *appointmentUsecase) GetUpcomingAppointments(ctx context.Context) ([]entity.Appointment, error) {
	if u.backend.live() {
		var appointments []entity.Appointment
		if err := u.backend.Client.Get(ctx, "/appointments/upcoming", nil, &appointments); err != nil {
			u.log.Warnf("Failed to fetch upcoming appointments: %+v", err)
			return nil, err
		}
		return appointments, nil
	}

	if err := u.backend.simulate(ctx, "appointments.upcoming"); err != nil {
		u.log.Warnf("Failed to fetch upcoming appointments: %+v", err)
		return nil, err
	}

	today := u.backend.today()
	appointments, err := u.appointmentRepo.FindWhere(ctx, func(a *entity.Appointment) bool {
		return a.Date > today
	})
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return nil, err
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})
	return appointments, nil
}

func (u *appointmentUsecase) update(ctx context.Context, id string, apply func(*entity.Appointment)) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.Update(ctx, id, apply)
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, ErrAppointmentNotFound)
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// patientSnapshot copies the referenced patient when it exists in the store,
// otherwise falls back to what the request carries. Unknown ids are accepted.
func (u *appointmentUsecase) patientSnapshot(ctx context.Context, req *dto.CreateAppointmentRequest) (entity.PatientSnapshot, error) {
	id := req.PatientID
	if id == "" && req.Patient != nil {
		id = req.Patient.ID
	}
	if id != "" {
		patient, err := u.patientRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment patient: %+v", err)
			return entity.PatientSnapshot{}, err
		}
		if patient != nil {
			return entity.PatientSnapshotOf(patient), nil
		}
	}
	if req.Patient != nil {
		return *req.Patient, nil
	}
	return entity.PatientSnapshot{ID: id}, nil
}

func (u *appointmentUsecase) doctorSnapshot(ctx context.Context, req *dto.CreateAppointmentRequest) (entity.DoctorSnapshot, error) {
	id := req.DoctorID
	if id == "" && req.Doctor != nil {
		id = req.Doctor.ID
	}
	if id != "" {
		doctor, err := u.doctorRepo.FindByID(ctx, id)
		if err != nil {
			u.log.Warnf("Failed to find appointment doctor: %+v", err)
			return entity.DoctorSnapshot{}, err
		}
		if doctor != nil {
			return entity.DoctorSnapshotOf(doctor), nil
		}
	}
	if req.Doctor != nil {
		return *req.Doctor, nil
	}
	return entity.DoctorSnapshot{ID: id}, nil
}
