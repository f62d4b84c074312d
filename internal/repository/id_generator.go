package repository

import (
	"fmt"
	"strconv"
	"sync"

	"hospital-dashboard/config"

	"github.com/google/uuid"
)

// Collection names passed to IDGenerator.NewID.
const (
	KindPatient     = "patient"
	KindDoctor      = "doctor"
	KindAppointment = "appointment"
	KindFinding     = "finding"
	KindSuggestion  = "suggestion"
	KindDocument    = "document"
)

// IDGenerator hands out record ids. Ids must never repeat within a kind,
// including after deletions.
type IDGenerator interface {
	NewID(kind string) string
}

// SequenceGenerator issues "1", "2", ... per kind from a monotonic counter.
type SequenceGenerator struct {
	mu   sync.Mutex
	last map[string]int64
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{last: make(map[string]int64)}
}

func (g *SequenceGenerator) NewID(kind string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last[kind]++
	return strconv.FormatInt(g.last[kind], 10)
}

// Reserve makes sure later ids of kind are greater than id when id is numeric.
func (g *SequenceGenerator) Reserve(kind, id string) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if n > g.last[kind] {
		g.last[kind] = n
	}
}

// UUIDGenerator issues random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(string) string {
	return uuid.NewString()
}

// NewIDGenerator maps a configured strategy name to a generator.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", config.IDStrategySequence:
		return NewSequenceGenerator(), nil
	case config.IDStrategyUUID:
		return UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}

type idReserver interface {
	Reserve(kind, id string)
}
