package repository

import (
	"context"
	"strings"

	"hospital-dashboard/internal/domain/entity"
	domainRepo "hospital-dashboard/internal/domain/repository"
)

type patientRepository struct {
	store *Store
}

func NewPatientRepository(store *Store) domainRepo.PatientRepository {
	return &patientRepository{store: store}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	patient.ID = s.ids.NewID(KindPatient)
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = now
	}
	patient.UpdatedAt = now

	s.patients = append(s.patients, *patient)
	return nil
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.patients, func(p *entity.Patient) bool { return p.ID == id })
	if i < 0 {
		return nil, nil
	}
	patient := s.patients[i]
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterCopy(s.patients, patientMatcher(filter)), nil
}

func (r *patientRepository) Update(ctx context.Context, id string, apply func(*entity.Patient)) (*entity.Patient, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.patients, func(p *entity.Patient) bool { return p.ID == id })
	if i < 0 {
		return nil, nil
	}

	p := &s.patients[i]
	apply(p)
	p.ID = id
	p.UpdatedAt = s.touch(p.UpdatedAt)

	patient := *p
	return &patient, nil
}

func (r *patientRepository) Delete(ctx context.Context, id string) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.patients, func(p *entity.Patient) bool { return p.ID == id })
	if i < 0 {
		return 0, nil
	}
	s.patients = splice(s.patients, i)
	return 1, nil
}

func (r *patientRepository) Count(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.patients), nil
}

func patientMatcher(filter *entity.PatientFilter) func(*entity.Patient) bool {
	if filter == nil {
		return nil
	}
	return func(p *entity.Patient) bool {
		if filter.Search != "" && !anyContainsFold(filter.Search, p.Name, p.Email) {
			return false
		}
		if filter.Gender != "" && !strings.EqualFold(p.Gender, filter.Gender) {
			return false
		}
		return true
	}
}
