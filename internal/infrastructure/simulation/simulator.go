package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultLatency is the delay inserted before every mock operation.
const DefaultLatency = 500 * time.Millisecond

// Simulator makes mock-mode calls behave like network calls: each one waits
// for Latency and may then fail according to Failure.
type Simulator struct {
	Latency time.Duration
	Failure FailurePolicy
	log     *logrus.Logger
}

func NewSimulator(latency time.Duration, failure FailurePolicy, log *logrus.Logger) *Simulator {
	if failure == nil {
		failure = NeverFail{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Simulator{
		Latency: latency,
		Failure: failure,
		log:     log,
	}
}

// Instant is a simulator with no latency and no failures.
func Instant() *Simulator {
	return NewSimulator(0, NeverFail{}, nil)
}

// Simulate waits for the configured latency, then consults the failure policy.
func (s *Simulator) Simulate(ctx context.Context, op string) error {
	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if s.Failure.ShouldFail(op) {
		s.log.WithField("op", op).Debug("Injecting simulated failure")
		return fmt.Errorf("%s: %w", op, ErrSimulatedFailure)
	}
	return nil
}
