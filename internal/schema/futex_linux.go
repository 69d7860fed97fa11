package schema

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	futexWait = 0
	futexWake = 1
)

// FutexWait blocks on the shared futex word at addr for as long as it holds
// val. It returns [unix.EAGAIN] if the word did not hold val on entry and
// [unix.EINTR] if the wait was interrupted by a signal.
func (*Unix) FutexWait(addr *uint32, val uint32) error {
	_, _, errno := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)), futexWait, uintptr(val), 0, 0, 0)
	if errno != 0 {
		return errno
	}

	return nil
}

// FutexWake wakes at most n waiters blocked on the shared futex word at addr,
// returning the amount of woken waiters.
func (*Unix) FutexWake(addr *uint32, n int) (int, error) {
	woken, _, errno := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)), futexWake, uintptr(n), 0, 0, 0)
	if errno != 0 {
		return 0, errno
	}

	return int(woken), nil
}
