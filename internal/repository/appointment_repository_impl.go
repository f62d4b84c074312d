package repository

import (
	"context"
	"strings"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"
)

type appointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) domainRepo.AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	appointment.ID = s.ids.NewID(KindAppointment)
	if appointment.CreatedAt.IsZero() {
		appointment.CreatedAt = now
	}
	appointment.UpdatedAt = now

	s.appointments = append(s.appointments, *appointment)
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.appointments, func(a *entity.Appointment) bool { return a.ID == id })
	if i < 0 {
		return nil, nil
	}
	appointment := s.appointments[i]
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	return r.FindWhere(ctx, appointmentMatcher(filter))
}

// FindWhere returns the appointments accepted by match, in insertion order.
// A nil match returns every appointment.
func (r *appointmentRepository) FindWhere(ctx context.Context, match func(*entity.Appointment) bool) ([]entity.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterCopy(s.appointments, match), nil
}

func (r *appointmentRepository) Update(ctx context.Context, id string, apply func(*entity.Appointment)) (*entity.Appointment, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.appointments, func(a *entity.Appointment) bool { return a.ID == id })
	if i < 0 {
		return nil, nil
	}

	a := &s.appointments[i]
	apply(a)
	a.ID = id
	a.UpdatedAt = s.touch(a.UpdatedAt)

	appointment := *a
	return &appointment, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.appointments, func(a *entity.Appointment) bool { return a.ID == id })
	if i < 0 {
		return 0, nil
	}
	s.appointments = splice(s.appointments, i)
	return 1, nil
}

func appointmentMatcher(filter *entity.AppointmentFilter) func(*entity.Appointment) bool {
	if filter == nil {
		return nil
	}
	return func(a *entity.Appointment) bool {
		if filter.Search != "" && !anyContainsFold(filter.Search, a.Patient.Name, a.Doctor.Name) {
			return false
		}
		if filter.Status != "" && !strings.EqualFold(a.Status, filter.Status) {
			return false
		}
		if filter.Date != "" && a.Date != filter.Date {
			return false
		}
		if filter.DoctorID != "" && a.Doctor.ID != filter.DoctorID {
			return false
		}
		if filter.PatientID != "" && a.Patient.ID != filter.PatientID {
			return false
		}
		return true
	}
}
