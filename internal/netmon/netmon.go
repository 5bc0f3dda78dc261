// Package netmon watches device connectivity by probing a remote endpoint
// on an interval. Consumers read the current state via IsOnline and react to
// state changes via the Events channel; only transitions are published, so a
// device that stays offline for an hour produces a single event.
package netmon

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/utils"
)

// Event is a connectivity transition.
type Event struct {
	// Online is the state the device transitioned into.
	Online bool
}

//go:generate mockgen -source=netmon.go -destination=../mock/netmon_mock.go -package=mock

// Monitor reports device connectivity.
type Monitor interface {
	// IsOnline returns the last observed connectivity state.
	IsOnline() bool
	// Events returns the channel on which connectivity transitions are
	// published. The channel is buffered; events are dropped rather than
	// blocking the probe loop when no one is reading.
	Events() <-chan Event
	// Run probes until ctx is cancelled.
	Run(ctx context.Context)
}

type probeMonitor struct {
	client *utils.HTTPClient
	cfg    config.Monitor
	online atomic.Bool
	events chan Event
	logger *logger.Logger
}

// NewProbeMonitor builds a Monitor that issues HEAD requests against
// cfg.ProbeURL every cfg.ProbeInterval. The monitor starts in the offline
// state until the first probe succeeds.
func NewProbeMonitor(cfg config.Monitor, log *logger.Logger) Monitor {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.ProbeTimeout)

	return &probeMonitor{
		client: client,
		cfg:    cfg,
		events: make(chan Event, 8),
		logger: log,
	}
}

func (m *probeMonitor) IsOnline() bool {
	return m.online.Load()
}

func (m *probeMonitor) Events() <-chan Event {
	return m.events
}

// Run probes immediately, then on every tick, until ctx is cancelled.
func (m *probeMonitor) Run(ctx context.Context) {
	log := m.logger.With().Str("func", "netmon.Run").Logger()
	log.Debug().Str("probe_url", m.cfg.ProbeURL).Msg("connectivity monitor started")

	m.probe(ctx)

	ticker := time.NewTicker(m.cfg.ProbeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("connectivity monitor stopped")
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

// probe issues a single HEAD request and publishes a transition event when
// the observed state differs from the last one. Any HTTP response counts as
// online; only transport failures count as offline.
func (m *probeMonitor) probe(ctx context.Context) {
	_, err := m.client.R().
		SetContext(ctx).
		Head(m.cfg.ProbeURL)

	online := err == nil
	if m.online.Swap(online) == online {
		return
	}

	m.logger.Info().
		Str("func", "netmon.probe").
		Bool("online", online).
		Msg("connectivity changed")

	select {
	case m.events <- Event{Online: online}:
	default:
	}
}
