package adapter

import (
	"context"
	"errors"
	"net"
)

var (
	// ErrUnavailable is a transient transport failure: timeout, connection
	// reset, or a server-side condition (5xx, 429) that a later identical
	// attempt may survive. Retried with backoff.
	ErrUnavailable = errors.New("remote temporarily unavailable")

	// ErrRejected is a definitive business rejection from the remote system
	// (for example an unknown reference id). Never retried automatically;
	// surfaced to the user instead.
	ErrRejected = errors.New("remote rejected request")

	// ErrUnauthorized is returned on 401/403; the device token needs to be
	// refreshed out of band. Treated as terminal by the engine.
	ErrUnauthorized = errors.New("remote authorization failed")
)

// IsRetryable classifies err for the sync engine: transient transport
// conditions come back true, definitive rejections false.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	// unknown transport-level failures (DNS, refused connection) are worth
	// retrying; only explicit rejections are terminal
	return !errors.Is(err, ErrRejected) && !errors.Is(err, ErrUnauthorized)
}
