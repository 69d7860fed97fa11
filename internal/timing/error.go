package timing

import "errors"

// ErrClockFailed is an error that occurs when the process CPU-time clock
// cannot be read.
var ErrClockFailed = errors.New("failed to read cpu-time clock")
