package repository

import (
	"time"

	"hospital-dashboard/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var seedTime = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

// NewSeededStore creates a store preloaded with the demo data set.
func NewSeededStore(opts ...StoreOption) *Store {
	s := NewStore(opts...)
	s.Seed(SeedPatients(), SeedDoctors(), SeedAppointments())
	return s
}

func SeedPatients() []entity.Patient {
	return []entity.Patient{
		{ID: "1", Name: "John Smith", Email: "john.smith@email.com", Phone: "+1 (555) 123-4567", DateOfBirth: "1985-03-15", Gender: entity.GenderMale, Address: "123 Main St, New York, NY", BloodGroup: "A+", MedicalHistory: "Hypertension, controlled with medication", AppointmentCount: 5, LastAppointment: "2024-02-10", CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "2", Name: "Sarah Johnson", Email: "sarah.j@email.com", Phone: "+1 (555) 234-5678", DateOfBirth: "1990-07-22", Gender: entity.GenderFemale, Address: "456 Oak Ave, Los Angeles, CA", BloodGroup: "O-", MedicalHistory: "Asthma", AppointmentCount: 3, LastAppointment: "2024-02-12", CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "3", Name: "Michael Brown", Email: "m.brown@email.com", Phone: "+1 (555) 345-6789", DateOfBirth: "1978-11-08", Gender: entity.GenderMale, Address: "789 Pine Rd, Chicago, IL", BloodGroup: "B+", MedicalHistory: "Type 2 diabetes", AppointmentCount: 8, LastAppointment: "2024-02-14", CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "4", Name: "Emily Davis", Email: "emily.davis@email.com", Phone: "+1 (555) 456-7890", DateOfBirth: "1995-01-30", Gender: entity.GenderFemale, Address: "321 Elm St, Houston, TX", BloodGroup: "AB+", MedicalHistory: "No significant history", AppointmentCount: 1, LastAppointment: "2024-02-08", CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "5", Name: "David Wilson", Email: "d.wilson@email.com", Phone: "+1 (555) 567-8901", DateOfBirth: "1968-09-12", Gender: entity.GenderMale, Address: "654 Maple Dr, Phoenix, AZ", BloodGroup: "A-", MedicalHistory: "Coronary artery disease, post-stent", AppointmentCount: 12, LastAppointment: "2024-02-15", CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "6", Name: "Lisa Anderson", Email: "lisa.a@email.com", Phone: "+1 (555) 678-9012", DateOfBirth: "1988-04-25", Gender: entity.GenderFemale, Address: "987 Cedar Ln, Seattle, WA", BloodGroup: "O+", MedicalHistory: "Migraine", AppointmentCount: 4, LastAppointment: "", CreatedAt: seedTime, UpdatedAt: seedTime},
	}
}

func SeedDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "1", Name: "Dr. Sarah Wilson", Specialization: "Cardiology", Experience: 15, Rating: 4.8, Email: "sarah.wilson@hospital.com", Phone: "+1 (555) 111-2222", ConsultationFee: decimal.RequireFromString("150.00"), Available: true, PatientCount: 245, AvgRating: 4.8, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "2", Name: "Dr. James Miller", Specialization: "Neurology", Experience: 12, Rating: 4.6, Email: "james.miller@hospital.com", Phone: "+1 (555) 222-3333", ConsultationFee: decimal.RequireFromString("180.00"), Available: true, PatientCount: 189, AvgRating: 4.6, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "3", Name: "Dr. Emily Chen", Specialization: "Pediatrics", Experience: 8, Rating: 4.9, Email: "emily.chen@hospital.com", Phone: "+1 (555) 333-4444", ConsultationFee: decimal.RequireFromString("120.00"), Available: true, PatientCount: 312, AvgRating: 4.9, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "4", Name: "Dr. Robert Taylor", Specialization: "Orthopedics", Experience: 20, Rating: 4.7, Email: "robert.taylor@hospital.com", Phone: "+1 (555) 444-5555", ConsultationFee: decimal.RequireFromString("200.00"), Available: false, PatientCount: 276, AvgRating: 4.7, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "5", Name: "Dr. Maria Garcia", Specialization: "Dermatology", Experience: 10, Rating: 4.5, Email: "maria.garcia@hospital.com", Phone: "+1 (555) 555-6666", ConsultationFee: decimal.RequireFromString("130.00"), Available: true, PatientCount: 158, AvgRating: 4.5, CreatedAt: seedTime, UpdatedAt: seedTime},
	}
}

func SeedAppointments() []entity.Appointment {
	patients := SeedPatients()
	doctors := SeedDoctors()
	appt := func(id string, p, d int, date, at, status, kind, payment, amount, notes string) entity.Appointment {
		return entity.Appointment{
			ID:            id,
			Patient:       entity.PatientSnapshotOf(&patients[p]),
			Doctor:        entity.DoctorSnapshotOf(&doctors[d]),
			Date:          date,
			Time:          at,
			Status:        status,
			Type:          kind,
			Notes:         notes,
			PaymentStatus: payment,
			Amount:        decimal.RequireFromString(amount),
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		}
	}

	return []entity.Appointment{
		appt("1", 0, 0, "2024-02-15", "09:00", entity.AppointmentStatusScheduled, "Consultation", entity.PaymentStatusPending, "150.00", "Blood pressure review"),
		appt("2", 1, 2, "2024-02-15", "10:30", entity.AppointmentStatusCompleted, "Follow-up", entity.PaymentStatusPaid, "120.00", "Asthma follow-up"),
		appt("3", 2, 1, "2024-02-16", "14:00", entity.AppointmentStatusPending, "Consultation", entity.PaymentStatusPending, "180.00", "Recurring headaches"),
		appt("4", 3, 4, "2024-02-16", "11:00", entity.AppointmentStatusConfirmed, "Check-up", entity.PaymentStatusPaid, "130.00", ""),
		appt("5", 4, 0, "2024-02-17", "15:30", entity.AppointmentStatusScheduled, "Follow-up", entity.PaymentStatusPending, "150.00", "Post-stent review"),
		appt("6", 5, 3, "2024-02-14", "08:30", entity.AppointmentStatusCancelled, "Consultation", entity.PaymentStatusPending, "200.00", "Patient cancelled"),
		appt("7", 0, 2, "2024-02-13", "13:00", entity.AppointmentStatusCompleted, "Check-up", entity.PaymentStatusPaid, "120.00", ""),
		appt("8", 2, 0, "2024-02-18", "10:00", entity.AppointmentStatusScheduled, "Emergency", entity.PaymentStatusPending, "150.00", "Chest pain"),
	}
}

// SeedDashboardStats is the fixed snapshot served by the mock dashboard.
func SeedDashboardStats() entity.DashboardStats {
	return entity.DashboardStats{
		TotalPatients:         1247,
		TotalDoctors:          48,
		TotalAppointments:     3892,
		CompletedAppointments: 3104,
		PendingAppointments:   186,
		ScheduledAppointments: 602,
		TodayAppointments:     24,
		WeekAppointments:      156,
		TotalRevenue:          decimal.RequireFromString("584250.00"),
	}
}

// SeedWeeklyAppointments is the fixed chart served by the mock dashboard.
func SeedWeeklyAppointments() []entity.WeeklyAppointments {
	return []entity.WeeklyAppointments{
		{Day: "Mon", Count: 28},
		{Day: "Tue", Count: 32},
		{Day: "Wed", Count: 25},
		{Day: "Thu", Count: 30},
		{Day: "Fri", Count: 22},
		{Day: "Sat", Count: 12},
		{Day: "Sun", Count: 7},
	}
}
