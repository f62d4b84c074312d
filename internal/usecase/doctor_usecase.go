package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"hospital-dashboard/internal/converter"
	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = fmt.Errorf("doctor %w", ErrNotFound)

// specializationScanLimit is how many doctors a live GetSpecializations reads.
const specializationScanLimit = 100

type DoctorUsecase interface {
	GetDoctors(ctx context.Context, filter *entity.DoctorFilter) (*entity.Page[entity.Doctor], error)
	GetDoctor(ctx context.Context, id string) (*entity.Doctor, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error)
	UpdateDoctor(ctx context.Context, id string, req *dto.UpdateDoctorRequest) (*entity.Doctor, error)
	DeleteDoctor(ctx context.Context, id string) error
	SearchDoctors(ctx context.Context, query string) ([]entity.Doctor, error)
	GetSpecializations(ctx context.Context) ([]string, error)
	GetDoctorStats(ctx context.Context, id string) (*entity.DoctorStats, error)
}

type doctorUsecase struct {
	backend         *Backend
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDoctorUsecase(
	backend *Backend,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) DoctorUsecase {
	return &doctorUsecase{
		backend:         backend,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

func doctorQuery(filter *entity.DoctorFilter) queryBuilder {
	return newQuery().
		str("search", filter.Search).
		str("specialization", filter.Specialization).
		num("page", filter.Page).
		num("limit", filter.Limit)
}

func (u *doctorUsecase) GetDoctors(ctx context.Context, filter *entity.DoctorFilter) (*entity.Page[entity.Doctor], error) {
	if filter == nil {
		filter = &entity.DoctorFilter{}
	}

	if u.backend.live() {
		page := new(entity.Page[entity.Doctor])
		if err := u.backend.Client.Get(ctx, "/doctors", doctorQuery(filter).values(), page); err != nil {
			u.log.Warnf("Failed to fetch doctors: %+v", err)
			return nil, err
		}
		return page, nil
	}

	if err := u.backend.simulate(ctx, "doctors.list"); err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		return nil, err
	}

	doctors, err := u.doctorRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	return entity.NewPage(doctors, filter.Page, filter.Limit), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*entity.Doctor, error) {
	if u.backend.live() {
		doctor := new(entity.Doctor)
		if err := u.backend.Client.Get(ctx, resourcePath("doctors", id), nil, doctor); err != nil {
			u.log.Warnf("Failed to fetch doctor: %+v", err)
			return nil, err
		}
		return doctor, nil
	}

	if err := u.backend.simulate(ctx, "doctors.get"); err != nil {
		u.log.Warnf("Failed to fetch doctor: %+v", err)
		return nil, err
	}

	return u.findDoctor(ctx, id)
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*entity.Doctor, error) {
	if u.backend.live() {
		doctor := new(entity.Doctor)
		if err := u.backend.Client.Post(ctx, "/doctors", req, doctor); err != nil {
			u.log.Warnf("Failed to create doctor: %+v", err)
			return nil, err
		}
		return doctor, nil
	}

	if err := u.backend.simulate(ctx, "doctors.create"); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	doctor := converter.CreateDoctorRequestToEntity(req)
	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return doctor, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id string, req *dto.UpdateDoctorRequest) (*entity.Doctor, error) {
	if u.backend.live() {
		doctor := new(entity.Doctor)
		if err := u.backend.Client.Put(ctx, resourcePath("doctors", id), req, doctor); err != nil {
			u.log.Warnf("Failed to update doctor: %+v", err)
			return nil, err
		}
		return doctor, nil
	}

	if err := u.backend.simulate(ctx, "doctors.update"); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	doctor, err := u.doctorRepo.Update(ctx, id, func(d *entity.Doctor) {
		converter.ApplyDoctorUpdate(d, req)
	})
	if err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		u.log.Warnf("Failed to update doctor %s: %+v", id, ErrDoctorNotFound)
		return nil, ErrDoctorNotFound
	}

	return doctor, nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id string) error {
	if u.backend.live() {
		if err := u.backend.Client.Delete(ctx, resourcePath("doctors", id), nil); err != nil {
			u.log.Warnf("Failed to delete doctor: %+v", err)
			return err
		}
		return nil
	}

	if err := u.backend.simulate(ctx, "doctors.delete"); err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	removed, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if removed == 0 {
		u.log.Warnf("Failed to delete doctor %s: %+v", id, ErrDoctorNotFound)
		return ErrDoctorNotFound
	}

	return nil
}

// SearchDoctors matches query against name and specialization, without paging.
func (u *doctorUsecase) SearchDoctors(ctx context.Context, query string) ([]entity.Doctor, error) {
	page, err := u.GetDoctors(ctx, &entity.DoctorFilter{Search: query})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetSpecializations lists the distinct specializations of the known doctors,
// sorted. Values differing only in case are reported once.
func (u *doctorUsecase) GetSpecializations(ctx context.Context) ([]string, error) {
	page, err := u.GetDoctors(ctx, &entity.DoctorFilter{Limit: specializationScanLimit})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	specializations := make([]string, 0, len(page.Items))
	for _, d := range page.Items {
		key := strings.ToLower(strings.TrimSpace(d.Specialization))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		specializations = append(specializations, d.Specialization)
	}
	sort.Strings(specializations)

	return specializations, nil
}

func (u *doctorUsecase) GetDoctorStats(ctx context.Context, id string) (*entity.DoctorStats, error) {
	if u.backend.live() {
		stats := new(entity.DoctorStats)
		if err := u.backend.Client.Get(ctx, resourcePath("doctors", id, "stats"), nil, stats); err != nil {
			u.log.Warnf("Failed to fetch doctor stats: %+v", err)
			return nil, err
		}
		return stats, nil
	}

	if err := u.backend.simulate(ctx, "doctors.stats"); err != nil {
		u.log.Warnf("Failed to fetch doctor stats: %+v", err)
		return nil, err
	}

	doctor, err := u.findDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, &entity.AppointmentFilter{DoctorID: id})
	if err != nil {
		u.log.Warnf("Failed to find doctor appointments: %+v", err)
		return nil, err
	}

	today := u.backend.today()
	patients := make(map[string]bool)
	stats := &entity.DoctorStats{
		DoctorID:          doctor.ID,
		TotalAppointments: len(appointments),
		Rating:            doctor.Rating,
	}
	for _, a := range appointments {
		patients[a.Patient.ID] = true
		switch {
		case strings.EqualFold(a.Status, entity.AppointmentStatusCompleted):
			stats.CompletedAppointments++
		case strings.EqualFold(a.Status, entity.AppointmentStatusCancelled):
		case a.Date >= today:
			stats.UpcomingAppointments++
		}
	}
	stats.TotalPatients = len(patients)

	return stats, nil
}

func (u *doctorUsecase) findDoctor(ctx context.Context, id string) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, ErrDoctorNotFound)
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
