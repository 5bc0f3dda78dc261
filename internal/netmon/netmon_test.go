package netmon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMonitorConfig(probeURL string) config.Monitor {
	return config.Monitor{
		ProbeURL:      probeURL,
		ProbeInterval: 20 * time.Millisecond,
		ProbeTimeout:  time.Second,
	}
}

// TestProbeMonitor_StartsOffline verifies the initial state before any probe.
func TestProbeMonitor_StartsOffline(t *testing.T) {
	m := NewProbeMonitor(testMonitorConfig("http://unused.invalid"), logger.Nop())
	assert.False(t, m.IsOnline())
}

// TestProbeMonitor_GoesOnline verifies that a reachable endpoint flips the
// state and publishes exactly one transition event.
func TestProbeMonitor_GoesOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
	}))
	defer srv.Close()

	m := NewProbeMonitor(testMonitorConfig(srv.URL), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	select {
	case ev := <-m.Events():
		assert.True(t, ev.Online)
	case <-time.After(2 * time.Second):
		t.Fatal("no online event published")
	}

	assert.True(t, m.IsOnline())
}

// TestProbeMonitor_PublishesOnlyTransitions verifies that repeated probes with
// the same outcome do not produce repeated events.
func TestProbeMonitor_PublishesOnlyTransitions(t *testing.T) {
	var probes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes.Add(1)
	}))
	defer srv.Close()

	m := NewProbeMonitor(testMonitorConfig(srv.URL), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	// First probe flips offline → online.
	select {
	case <-m.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no online event published")
	}

	// Let several more successful probes run.
	require.Eventually(t, func() bool { return probes.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)

	select {
	case ev := <-m.Events():
		t.Fatalf("unexpected extra event: %+v", ev)
	default:
	}
}

// TestProbeMonitor_GoesOfflineWhenUnreachable verifies the online → offline
// transition when the endpoint stops answering.
func TestProbeMonitor_GoesOfflineWhenUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	m := NewProbeMonitor(testMonitorConfig(srv.URL), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	select {
	case ev := <-m.Events():
		require.True(t, ev.Online)
	case <-time.After(2 * time.Second):
		t.Fatal("no online event published")
	}

	srv.Close()

	select {
	case ev := <-m.Events():
		assert.False(t, ev.Online)
	case <-time.After(2 * time.Second):
		t.Fatal("no offline event published")
	}

	assert.False(t, m.IsOnline())
}

// TestProbeMonitor_ErrorStatusStillOnline verifies that an HTTP error status
// counts as connectivity: the server answered, the network is fine.
func TestProbeMonitor_ErrorStatusStillOnline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := NewProbeMonitor(testMonitorConfig(srv.URL), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	select {
	case ev := <-m.Events():
		assert.True(t, ev.Online)
	case <-time.After(2 * time.Second):
		t.Fatal("no online event published")
	}
}

// TestProbeMonitor_RunStopsOnCancel verifies that Run returns promptly after
// context cancellation.
func TestProbeMonitor_RunStopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	m := NewProbeMonitor(testMonitorConfig(srv.URL), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
