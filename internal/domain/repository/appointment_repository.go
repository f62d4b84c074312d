package repository

import (
	"context"

	"hospital-dashboard/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	FindAll(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindWhere(ctx context.Context, match func(*entity.Appointment) bool) ([]entity.Appointment, error)
	Update(ctx context.Context, id string, apply func(*entity.Appointment)) (*entity.Appointment, error)
	Delete(ctx context.Context, id string) (int64, error)
}
