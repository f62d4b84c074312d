package usecase

import (
	"context"
	"sort"
	"strings"

	"hospital-dashboard/internal/domain/entity"
	"hospital-dashboard/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RecentAppointmentsLimit is how many appointments GetRecentAppointments returns.
const RecentAppointmentsLimit = 5

type DashboardUsecase interface {
	GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error)
	GetRecentAppointments(ctx context.Context) ([]entity.Appointment, error)
	GetWeeklyAppointments(ctx context.Context) ([]entity.WeeklyAppointments, error)
	GetOverview(ctx context.Context) (*entity.DashboardOverview, error)
}

// DashboardConfig selects how the mock dashboard is produced. With Derived
// unset the fixed Stats and Weekly values are served and recent appointments
// are the first ones inserted; with Derived set everything is computed from
// the store.
type DashboardConfig struct {
	Derived bool
	Stats   entity.DashboardStats
	Weekly  []entity.WeeklyAppointments
}

type dashboardUsecase struct {
	backend         *Backend
	log             *logrus.Logger
	config          DashboardConfig
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDashboardUsecase(
	backend *Backend,
	log *logrus.Logger,
	config DashboardConfig,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		backend:         backend,
		log:             log,
		config:          config,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *dashboardUsecase) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	if u.backend.live() {
		stats := new(entity.DashboardStats)
		if err := u.backend.Client.Get(ctx, "/dashboard/stats", nil, stats); err != nil {
			u.log.Warnf("Failed to fetch dashboard stats: %+v", err)
			return nil, err
		}
		return stats, nil
	}

	if err := u.backend.simulate(ctx, "dashboard.stats"); err != nil {
		u.log.Warnf("Failed to fetch dashboard stats: %+v", err)
		return nil, err
	}

	if !u.config.Derived {
		stats := u.config.Stats
		return &stats, nil
	}
	return u.deriveStats(ctx)
}

func (u *dashboardUsecase) GetRecentAppointments(ctx context.Context) ([]entity.Appointment, error) {
	if u.backend.live() {
		var appointments []entity.Appointment
		if err := u.backend.Client.Get(ctx, "/appointments/recent", nil, &appointments); err != nil {
			u.log.Warnf("Failed to fetch recent appointments: %+v", err)
			return nil, err
		}
		return appointments, nil
	}

	if err := u.backend.simulate(ctx, "dashboard.recent"); err != nil {
		u.log.Warnf("Failed to fetch recent appointments: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindWhere(ctx, nil)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	if u.config.Derived {
		sort.SliceStable(appointments, func(i, j int) bool {
			return appointments[i].CreatedAt.After(appointments[j].CreatedAt)
		})
	}
	if len(appointments) > RecentAppointmentsLimit {
		appointments = appointments[:RecentAppointmentsLimit]
	}
	return appointments, nil
}

func (u *dashboardUsecase) GetWeeklyAppointments(ctx context.Context) ([]entity.WeeklyAppointments, error) {
	if u.backend.live() {
		var weekly []entity.WeeklyAppointments
		if err := u.backend.Client.Get(ctx, "/dashboard/weekly-appointments", nil, &weekly); err != nil {
			u.log.Warnf("Failed to fetch weekly appointments: %+v", err)
			return nil, err
		}
		return weekly, nil
	}

	if err := u.backend.simulate(ctx, "dashboard.weekly"); err != nil {
		u.log.Warnf("Failed to fetch weekly appointments: %+v", err)
		return nil, err
	}

	if !u.config.Derived {
		weekly := make([]entity.WeeklyAppointments, len(u.config.Weekly))
		copy(weekly, u.config.Weekly)
		return weekly, nil
	}

	weekly := u.currentWeek()
	appointments, err := u.appointmentRepo.FindWhere(ctx, func(a *entity.Appointment) bool {
		return a.Date >= weekly[0].Date && a.Date <= weekly[len(weekly)-1].Date
	})
	if err != nil {
		u.log.Warnf("Failed to find weekly appointments: %+v", err)
		return nil, err
	}
	for _, a := range appointments {
		for i := range weekly {
			if weekly[i].Date == a.Date {
				weekly[i].Count++
			}
		}
	}
	return weekly, nil
}

// GetOverview loads stats, recent appointments and the weekly chart concurrently.
func (u *dashboardUsecase) GetOverview(ctx context.Context) (*entity.DashboardOverview, error) {
	overview := new(entity.DashboardOverview)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := u.GetDashboardStats(gctx)
		overview.Stats = stats
		return err
	})
	g.Go(func() error {
		recent, err := u.GetRecentAppointments(gctx)
		overview.RecentAppointments = recent
		return err
	})
	g.Go(func() error {
		weekly, err := u.GetWeeklyAppointments(gctx)
		overview.Weekly = weekly
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load dashboard overview: %+v", err)
		return nil, err
	}
	return overview, nil
}

func (u *dashboardUsecase) deriveStats(ctx context.Context) (*entity.DashboardStats, error) {
	patients, err := u.patientRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}
	doctors, err := u.doctorRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}
	appointments, err := u.appointmentRepo.FindWhere(ctx, nil)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	week := u.currentWeek()
	weekStart, weekEnd := week[0].Date, week[len(week)-1].Date
	today := u.backend.today()

	stats := &entity.DashboardStats{
		TotalPatients:     patients,
		TotalDoctors:      doctors,
		TotalAppointments: len(appointments),
		TotalRevenue:      decimal.Zero,
	}
	for _, a := range appointments {
		switch {
		case strings.EqualFold(a.Status, entity.AppointmentStatusCompleted):
			stats.CompletedAppointments++
		case strings.EqualFold(a.Status, entity.AppointmentStatusPending):
			stats.PendingAppointments++
		case strings.EqualFold(a.Status, entity.AppointmentStatusScheduled):
			stats.ScheduledAppointments++
		}
		if a.Date == today {
			stats.TodayAppointments++
		}
		if a.Date >= weekStart && a.Date <= weekEnd {
			stats.WeekAppointments++
		}
		if strings.EqualFold(a.PaymentStatus, entity.PaymentStatusPaid) {
			stats.TotalRevenue = stats.TotalRevenue.Add(a.Amount)
		}
	}
	return stats, nil
}

// currentWeek returns Monday through Sunday of the clock's current week with
// zero counts.
func (u *dashboardUsecase) currentWeek() []entity.WeeklyAppointments {
	now := u.backend.now()
	monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))

	week := make([]entity.WeeklyAppointments, 7)
	for i := range week {
		day := monday.AddDate(0, 0, i)
		week[i] = entity.WeeklyAppointments{
			Day:  day.Format("Mon"),
			Date: day.Format(dateLayout),
		}
	}
	return week
}
