//go:build !linux

package schema

import "golang.org/x/sys/unix"

// FutexWait is not supported on this platform and returns [unix.ENOSYS].
func (*Unix) FutexWait(_ *uint32, _ uint32) error {
	return unix.ENOSYS
}

// FutexWake is not supported on this platform and returns [unix.ENOSYS].
func (*Unix) FutexWake(_ *uint32, _ int) (int, error) {
	return 0, unix.ENOSYS
}
