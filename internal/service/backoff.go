package service

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkostin/fieldsync/internal/config"
)

// jitterFraction spreads retry times by ±20% so items failed in the same
// outage don't all come due in the same instant.
const jitterFraction = 0.2

// backoffSchedule computes the delay before the next attempt of a failed
// queue item.
type backoffSchedule struct {
	base   time.Duration
	factor float64
	cap    time.Duration

	// rand returns a uniform value in [0, 1). Swappable in tests.
	rand func() float64
}

func newBackoffSchedule(cfg config.Workers) backoffSchedule {
	return backoffSchedule{
		base:   cfg.BackoffBase,
		factor: cfg.BackoffFactor,
		cap:    cfg.BackoffCap,
		rand:   rand.Float64,
	}
}

// delay returns the wait before the next attempt, given how many attempts
// have already failed. The first retry waits base, each further retry is
// multiplied by factor, the whole schedule is capped, and jitter is applied
// last so even capped delays stay spread out.
func (b backoffSchedule) delay(attemptsMade int) time.Duration {
	if attemptsMade < 1 {
		attemptsMade = 1
	}

	d := float64(b.base) * math.Pow(b.factor, float64(attemptsMade-1))
	if d > float64(b.cap) {
		d = float64(b.cap)
	}

	jitter := 1 + jitterFraction*(2*b.rand()-1)
	return time.Duration(d * jitter)
}
