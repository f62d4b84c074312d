package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error)
	Update(ctx context.Context, id string, apply func(*entity.Doctor)) (*entity.Doctor, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int, error)
}
