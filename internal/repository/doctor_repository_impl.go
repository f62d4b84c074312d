package repository

import (
	"context"
	"strings"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"
)

type doctorRepository struct {
	store *Store
}

func NewDoctorRepository(store *Store) domainRepo.DoctorRepository {
	return &doctorRepository{store: store}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	doctor.ID = s.ids.NewID(KindDoctor)
	if doctor.CreatedAt.IsZero() {
		doctor.CreatedAt = now
	}
	doctor.UpdatedAt = now

	s.doctors = append(s.doctors, *doctor)
	return nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.doctors, func(d *entity.Doctor) bool { return d.ID == id })
	if i < 0 {
		return nil, nil
	}
	doctor := s.doctors[i]
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterCopy(s.doctors, doctorMatcher(filter)), nil
}

func (r *doctorRepository) Update(ctx context.Context, id string, apply func(*entity.Doctor)) (*entity.Doctor, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.doctors, func(d *entity.Doctor) bool { return d.ID == id })
	if i < 0 {
		return nil, nil
	}

	d := &s.doctors[i]
	apply(d)
	d.ID = id
	d.UpdatedAt = s.touch(d.UpdatedAt)

	doctor := *d
	return &doctor, nil
}

func (r *doctorRepository) Delete(ctx context.Context, id string) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.doctors, func(d *entity.Doctor) bool { return d.ID == id })
	if i < 0 {
		return 0, nil
	}
	s.doctors = splice(s.doctors, i)
	return 1, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.doctors), nil
}

func doctorMatcher(filter *entity.DoctorFilter) func(*entity.Doctor) bool {
	if filter == nil {
		return nil
	}
	return func(d *entity.Doctor) bool {
		if filter.Search != "" && !anyContainsFold(filter.Search, d.Name, d.Specialization) {
			return false
		}
		if filter.Specialization != "" && !strings.EqualFold(d.Specialization, filter.Specialization) {
			return false
		}
		return true
	}
}
