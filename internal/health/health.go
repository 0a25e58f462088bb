// Package health probes the backend root and reduces the outcome to the
// three-state indicator shown next to the dashboard.
package health

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/csheth/careerscout/internal/api"
)

// DefaultTimeout bounds a single probe.
const DefaultTimeout = 2 * time.Second

// Status is the liveness state of the backend.
type Status int

const (
	StatusUnknown Status = iota
	StatusConnected
	StatusNotResponding
	StatusUnreachable
)

// Label is the human text for s.
func (s Status) Label() string {
	switch s {
	case StatusConnected:
		return "Backend connected"
	case StatusNotResponding:
		return "Backend not responding"
	case StatusUnreachable:
		return "Backend not running"
	default:
		return "Checking backend…"
	}
}

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusNotResponding:
		return "not_responding"
	case StatusUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Pinger issues GET / against the backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Result is one probe outcome.
type Result struct {
	Status    Status
	CheckedAt time.Time
	Latency   time.Duration
	Err       error
}

// Probe pings once. A 2xx answer is connected, any other status is not
// responding, and a transport failure (including the timeout) is unreachable.
// A non-positive timeout falls back to DefaultTimeout.
func Probe(ctx context.Context, pinger Pinger, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	err := pinger.Ping(ctx)
	result := Result{CheckedAt: time.Now(), Latency: time.Since(started), Err: err}

	var statusErr *api.StatusError
	switch {
	case err == nil:
		result.Status = StatusConnected
	case errors.As(err, &statusErr):
		result.Status = StatusNotResponding
	default:
		result.Status = StatusUnreachable
	}
	log.Printf("[health] %s (latency=%s, err=%v)", result.Status, result.Latency, err)
	return result
}
