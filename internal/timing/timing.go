// Package timing implements a busy-waiting timer measured in process CPU time.
package timing

import (
	"fmt"
	"time"

	"github.com/desertwitch/posixipc/internal/configuration"
	"github.com/desertwitch/posixipc/internal/schema"
	"golang.org/x/sys/unix"
)

// TicksPerSecond is the amount of [Ticks] in one second of CPU time.
const TicksPerSecond = configuration.TicksPerSecond

// Ticks is an amount of process CPU time, measured in 1/[TicksPerSecond]
// seconds.
type Ticks int64

// FromDuration converts a [time.Duration] into [Ticks], truncating any
// remainder below the tick resolution.
func FromDuration(d time.Duration) Ticks {
	return Ticks(d / (time.Second / TicksPerSecond))
}

// Duration converts [Ticks] into a [time.Duration].
func (t Ticks) Duration() time.Duration {
	return time.Duration(t) * (time.Second / TicksPerSecond)
}

type clockProvider interface {
	ClockGettime(clockid int32, time *unix.Timespec) error
}

// Handler is the principal implementation for the timing functions.
type Handler struct {
	clockHandler clockProvider
}

// NewHandler returns a pointer to a new timing [Handler].
func NewHandler(clockHandler clockProvider) *Handler {
	return &Handler{
		clockHandler: clockHandler,
	}
}

// Now returns the CPU time consumed by the process so far.
func (h *Handler) Now() (Ticks, error) {
	var ts unix.Timespec

	if err := h.clockHandler.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrClockFailed, err)
	}

	return FromDuration(time.Duration(ts.Nano())), nil
}

// BusyWait blocks the calling goroutine by sampling the process CPU-time clock
// in a tight loop, until at least the given amount of [Ticks] has elapsed. It
// never sleeps or yields and fully occupies one CPU for the duration. A
// non-positive amount returns after the first sample. The wait cannot be
// cancelled and only aborts if the clock cannot be read.
func (h *Handler) BusyWait(ticks Ticks) error {
	start, err := h.Now()
	if err != nil {
		return err
	}

	now := start
	for now-start < ticks {
		if now, err = h.Now(); err != nil {
			return err
		}
	}

	return nil
}

// BusyWait is a convenience function calling [Handler.BusyWait] on a [Handler]
// reading the real process CPU-time clock.
func BusyWait(ticks Ticks) error {
	return NewHandler(&schema.Unix{}).BusyWait(ticks)
}
