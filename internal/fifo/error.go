package fifo

import "errors"

var (
	// ErrCreateFailed is an error that occurs when a FIFO cannot be created,
	// including when the path already exists.
	ErrCreateFailed = errors.New("fifo creation failed")

	// ErrOpenFailed is an error that occurs when a created FIFO cannot be
	// opened. The FIFO is unlinked again before this error is returned.
	ErrOpenFailed = errors.New("fifo opening failed")

	// ErrUnlinkFailed is an error that occurs when a FIFO cannot be unlinked.
	ErrUnlinkFailed = errors.New("fifo unlink failed")
)
