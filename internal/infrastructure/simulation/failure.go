package simulation

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
)

// ErrSimulatedFailure is returned when a failure policy decides an operation fails.
var ErrSimulatedFailure = errors.New("simulated network failure")

// FailurePolicy decides whether a mock operation fails.
type FailurePolicy interface {
	ShouldFail(op string) bool
}

// NeverFail lets every operation through.
type NeverFail struct{}

func (NeverFail) ShouldFail(string) bool { return false }

// AlwaysFail fails every operation.
type AlwaysFail struct{}

func (AlwaysFail) ShouldFail(string) bool { return true }

// ProbabilityFailure fails each operation with probability P.
type ProbabilityFailure struct {
	P float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewProbabilityFailure builds a policy drawing from rng. A nil rng uses a
// randomly seeded source.
func NewProbabilityFailure(p float64, rng *rand.Rand) *ProbabilityFailure {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ProbabilityFailure{P: p, rng: rng}
}

func (f *ProbabilityFailure) ShouldFail(string) bool {
	if f.P <= 0 {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rng.Float64() < f.P
}

// EveryNthFailure fails calls N, 2N, 3N, ...
type EveryNthFailure struct {
	N     int64
	calls atomic.Int64
}

func NewEveryNthFailure(n int) *EveryNthFailure {
	return &EveryNthFailure{N: int64(n)}
}

func (f *EveryNthFailure) ShouldFail(string) bool {
	if f.N <= 0 {
		return false
	}
	return f.calls.Add(1)%f.N == 0
}

// NewFailurePolicy maps a configured mode to a policy.
func NewFailurePolicy(mode string, rate float64, every int) (FailurePolicy, error) {
	switch mode {
	case "", "none":
		return NeverFail{}, nil
	case "always":
		return AlwaysFail{}, nil
	case "random":
		return NewProbabilityFailure(rate, nil), nil
	case "nth":
		return NewEveryNthFailure(every), nil
	default:
		return nil, fmt.Errorf("unknown failure mode %q", mode)
	}
}
