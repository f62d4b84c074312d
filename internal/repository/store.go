package repository

import (
	"strings"
	"sync"
	"time"

	"hospital-dashboard/internal/domain/entity"
)

// Store is the in-memory database behind mock mode. One Store is built at
// startup and shared by every repository; all reads hand out copies.
type Store struct {
	mu  sync.RWMutex
	ids IDGenerator
	now func() time.Time

	patients     []entity.Patient
	doctors      []entity.Doctor
	appointments []entity.Appointment
	findings     []entity.Finding
	suggestions  []entity.Suggestion
	documents    []entity.Document
}

type StoreOption func(*Store)

func WithIDGenerator(ids IDGenerator) StoreOption {
	return func(s *Store) { s.ids = ids }
}

func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		ids: NewSequenceGenerator(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed appends records as-is, keeping their ids. The id generator is told
// about every seeded id so fresh ids never collide with them.
func (s *Store) Seed(patients []entity.Patient, doctors []entity.Doctor, appointments []entity.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.patients = append(s.patients, patients...)
	s.doctors = append(s.doctors, doctors...)
	s.appointments = append(s.appointments, appointments...)

	if r, ok := s.ids.(idReserver); ok {
		for _, p := range patients {
			r.Reserve(KindPatient, p.ID)
		}
		for _, d := range doctors {
			r.Reserve(KindDoctor, d.ID)
		}
		for _, a := range appointments {
			r.Reserve(KindAppointment, a.ID)
		}
	}
}

// touch returns the new updated_at for a record last updated at prev.
// It always moves forward, even when the clock has not.
func (s *Store) touch(prev time.Time) time.Time {
	now := s.now()
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	return now
}

func indexOf[T any](items []T, match func(*T) bool) int {
	for i := range items {
		if match(&items[i]) {
			return i
		}
	}
	return -1
}

func filterCopy[T any](items []T, match func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if match == nil || match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// splice removes items[i] keeping the relative order of the rest.
func splice[T any](items []T, i int) []T {
	return append(items[:i], items[i+1:]...)
}

// containsFold reports whether substr is within s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// anyContainsFold reports whether any field contains query, ignoring case.
func anyContainsFold(query string, fields ...string) bool {
	for _, f := range fields {
		if containsFold(f, query) {
			return true
		}
	}
	return false
}
