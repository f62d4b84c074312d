package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	FindAll(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, error)
	Update(ctx context.Context, id string, apply func(*entity.Patient)) (*entity.Patient, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int, error)
}
