package semaphore

import "errors"

var (
	// ErrCreateFailed is an error that occurs when a named semaphore cannot be
	// created for any other reason than the name already existing.
	ErrCreateFailed = errors.New("semaphore creation failed")

	// ErrOpenFailed is an error that occurs when an already existing named
	// semaphore cannot be opened.
	ErrOpenFailed = errors.New("semaphore opening failed")

	// ErrCloseFailed is an error that occurs when a [Semaphore] cannot be
	// closed. The [Semaphore] is unusable afterwards.
	ErrCloseFailed = errors.New("semaphore closing failed")

	// ErrUnlinkFailed is an error that occurs when a named semaphore cannot be
	// removed from the system.
	ErrUnlinkFailed = errors.New("semaphore unlink failed")

	// ErrInvalidName is an error that occurs when a semaphore name is empty,
	// too long or contains a slash beyond the leading ones.
	ErrInvalidName = errors.New("invalid semaphore name")

	// ErrClosed is an error that occurs when a closed [Semaphore] is used.
	ErrClosed = errors.New("semaphore is closed")

	// ErrOverflow is an error that occurs when a [Semaphore] at [MaxValue] is
	// posted.
	ErrOverflow = errors.New("semaphore value overflow")

	// ErrWaitFailed is an error that occurs when waiting on a [Semaphore]
	// fails for other reasons than a spurious wakeup.
	ErrWaitFailed = errors.New("semaphore wait failed")

	// ErrPostFailed is an error that occurs when the waiters of a [Semaphore]
	// cannot be woken after posting.
	ErrPostFailed = errors.New("semaphore post failed")
)
