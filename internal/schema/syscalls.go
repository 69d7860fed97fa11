package schema

import (
	"os"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// OpenFile wraps around [os.OpenFile].
func (*OS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Mkfifo wraps around [unix.Mkfifo].
func (*Unix) Mkfifo(path string, mode uint32) error {
	return unix.Mkfifo(path, mode)
}

// Unlink wraps around [unix.Unlink].
func (*Unix) Unlink(path string) error {
	return unix.Unlink(path)
}

// Open wraps around [unix.Open].
func (*Unix) Open(path string, mode int, perm uint32) (int, error) {
	return unix.Open(path, mode, perm)
}

// Close wraps around [unix.Close].
func (*Unix) Close(fd int) error {
	return unix.Close(fd)
}

// Write wraps around [unix.Write].
func (*Unix) Write(fd int, p []byte) (int, error) {
	return unix.Write(fd, p)
}

// Fstat wraps around [unix.Fstat].
func (*Unix) Fstat(fd int, stat *unix.Stat_t) error {
	return unix.Fstat(fd, stat)
}

// Link wraps around [unix.Link].
func (*Unix) Link(oldpath, newpath string) error {
	return unix.Link(oldpath, newpath)
}

// Mmap wraps around [unix.Mmap].
func (*Unix) Mmap(fd int, offset int64, length int, prot int, flags int) ([]byte, error) {
	return unix.Mmap(fd, offset, length, prot, flags)
}

// Munmap wraps around [unix.Munmap].
func (*Unix) Munmap(b []byte) error {
	return unix.Munmap(b)
}

// ClockGettime wraps around [unix.ClockGettime].
func (*Unix) ClockGettime(clockid int32, time *unix.Timespec) error {
	return unix.ClockGettime(clockid, time)
}
