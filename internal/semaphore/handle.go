package semaphore

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Semaphore is a handle to an opened named semaphore. It is safe for
// concurrent use, but [Semaphore.Close] must not be called while other
// operations on the same handle are still in flight. Handles to the same name
// are independent of each other; closing one does not affect another.
type Semaphore struct {
	name        string
	data        []byte
	value       *uint32
	waiters     *uint32
	closed      atomic.Bool
	unixHandler unixProvider
}

func newSemaphore(name string, data []byte, unixHandler unixProvider) *Semaphore {
	return &Semaphore{
		name:        name,
		data:        data,
		value:       (*uint32)(unsafe.Pointer(&data[0])),
		waiters:     (*uint32)(unsafe.Pointer(&data[4])),
		unixHandler: unixHandler,
	}
}

// Name returns the name the [Semaphore] was opened with.
func (s *Semaphore) Name() string {
	return s.name
}

// Value returns the current value of the [Semaphore].
func (s *Semaphore) Value() (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}

	return int(atomic.LoadUint32(s.value)), nil
}

// Wait decrements the [Semaphore], blocking until its value is above zero.
// The wait cannot be cancelled.
func (s *Semaphore) Wait() error {
	if s.closed.Load() {
		return ErrClosed
	}

	for !s.tryDecrement() {
		atomic.AddUint32(s.waiters, 1)
		err := s.unixHandler.FutexWait(s.value, 0)
		atomic.AddUint32(s.waiters, ^uint32(0))

		if err != nil && !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EINTR) {
			return fmt.Errorf("%w: %s: %w", ErrWaitFailed, s.name, err)
		}
	}

	return nil
}

// TryWait decrements the [Semaphore] if its value is above zero, returning
// false without blocking otherwise.
func (s *Semaphore) TryWait() (bool, error) {
	if s.closed.Load() {
		return false, ErrClosed
	}

	return s.tryDecrement(), nil
}

// Post increments the [Semaphore], waking up one blocked waiter if any exist.
// A [Semaphore] at [MaxValue] is not incremented and returns [ErrOverflow].
func (s *Semaphore) Post() error {
	if s.closed.Load() {
		return ErrClosed
	}

	for {
		v := atomic.LoadUint32(s.value)
		if v >= MaxValue {
			return fmt.Errorf("%w: %s", ErrOverflow, s.name)
		}
		if atomic.CompareAndSwapUint32(s.value, v, v+1) {
			break
		}
	}

	if atomic.LoadUint32(s.waiters) > 0 {
		if _, err := s.unixHandler.FutexWake(s.value, 1); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrPostFailed, s.name, err)
		}
	}

	return nil
}

// Close unmaps the [Semaphore], leaving the named semaphore itself in place.
// Closing an already closed [Semaphore] returns [ErrClosed]. After a failed
// close the [Semaphore] is unusable.
func (s *Semaphore) Close() error {
	if s == nil || !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	data := s.data
	s.data, s.value, s.waiters = nil, nil, nil

	if err := s.unixHandler.Munmap(data); err != nil {
		return fmt.Errorf("failed to unmap object: %w", err)
	}

	return nil
}

func (s *Semaphore) tryDecrement() bool {
	for {
		v := atomic.LoadUint32(s.value)
		if v == 0 {
			return false
		}
		if atomic.CompareAndSwapUint32(s.value, v, v-1) {
			return true
		}
	}
}
