// Package semaphore implements named semaphores, which can be shared between
// unrelated processes for mutual exclusion or signaling.
//
// A named semaphore is a small shared-memory object in [BaseDir]. Every
// process opening the same name maps the same object, and blocking is done
// with futexes on the object's count. Named semaphores are only supported on
// Linux, other platforms fail with [errors.ErrUnsupported].
package semaphore

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Open(path string, mode int, perm uint32) (int, error)
	Close(fd int) error
	Write(fd int, p []byte) (int, error)
	Fstat(fd int, stat *unix.Stat_t) error
	Link(oldpath, newpath string) error
	Unlink(path string) error
	Mmap(fd int, offset int64, length int, prot int, flags int) ([]byte, error)
	Munmap(b []byte) error
	FutexWait(addr *uint32, val uint32) error
	FutexWake(addr *uint32, n int) (int, error)
}

// Handler is the principal implementation for the named semaphore functions.
type Handler struct {
	unixHandler unixProvider
	baseDir     string
}

// NewHandler returns a pointer to a new named semaphore [Handler].
func NewHandler(unixHandler unixProvider) *Handler {
	return &Handler{
		unixHandler: unixHandler,
		baseDir:     BaseDir,
	}
}

// Init attempts the exclusive creation of a named semaphore with [Mode] and
// [InitialValue]. If the name already exists, the existing named semaphore is
// opened instead. Any other creation failure returns [ErrCreateFailed], a
// failure to open the existing named semaphore returns [ErrOpenFailed].
//
// The two steps are not atomic: if the name is unlinked by someone else in
// between, the opening fails and the error is returned without a retry.
func (h *Handler) Init(name string) (*Semaphore, error) {
	if runtime.GOOS != "linux" {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, errors.ErrUnsupported)
	}

	path, err := h.objectPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	sem, err := h.create(name, path)
	if err == nil {
		return sem, nil
	}

	if !errors.Is(err, unix.EEXIST) {
		return nil, fmt.Errorf("%w: error creating semaphore %s: %w", ErrCreateFailed, name, err)
	}

	sem, err = h.open(name, path)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening semaphore %s: %w", ErrOpenFailed, name, err)
	}

	return sem, nil
}

// Open opens an already existing named semaphore without creating it. A
// missing name or any other failure returns [ErrOpenFailed].
func (h *Handler) Open(name string) (*Semaphore, error) {
	if runtime.GOOS != "linux" {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, errors.ErrUnsupported)
	}

	path, err := h.objectPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	sem, err := h.open(name, path)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening semaphore %s: %w", ErrOpenFailed, name, err)
	}

	return sem, nil
}

// Destroy closes the [Semaphore] and then unlinks the name from the system. If
// the closing fails, [ErrCloseFailed] is returned and the unlinking is not
// attempted. A failing unlink returns [ErrUnlinkFailed].
func (h *Handler) Destroy(sem *Semaphore, name string) error {
	if err := sem.Close(); err != nil {
		return fmt.Errorf("%w: error closing semaphore %s: %w", ErrCloseFailed, name, err)
	}

	return h.Unlink(name)
}

// Unlink removes a named semaphore from the system. Any already opened
// [Semaphore] remains usable until closed, but the name can be re-created.
func (h *Handler) Unlink(name string) error {
	path, err := h.objectPath(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnlinkFailed, err)
	}

	if err := h.unixHandler.Unlink(path); err != nil {
		return fmt.Errorf("%w: error unlinking semaphore %s: %w", ErrUnlinkFailed, name, err)
	}

	return nil
}

// create creates a new semaphore object in a temporary file and publishes it
// under path with a hard link, so that path only ever refers to a completely
// initialized object. An already existing path returns [unix.EEXIST].
func (h *Handler) create(name string, path string) (*Semaphore, error) {
	var fd int
	var tmpPath string
	var err error

	for range tempAttempts {
		tmpPath = h.tempPath()

		fd, err = h.unixHandler.Open(tmpPath, unix.O_RDWR|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, Mode)
		if !errors.Is(err, unix.EEXIST) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, unix.EEXIST) {
			err = unix.EAGAIN
		}

		return nil, fmt.Errorf("failed to create temporary object: %w", err)
	}

	defer func() {
		if err := h.unixHandler.Unlink(tmpPath); err != nil {
			slog.Warn("Failed to remove temporary semaphore object",
				"path", tmpPath,
				"err", err,
			)
		}
	}()
	defer h.closeFd(fd)

	n, err := h.unixHandler.Write(fd, initialObject())
	if err != nil {
		return nil, fmt.Errorf("failed to write temporary object: %w", err)
	}
	if n != objectSize {
		return nil, fmt.Errorf("failed to write temporary object: %w", unix.EIO)
	}

	data, err := h.mmap(fd)
	if err != nil {
		return nil, err
	}

	if err := h.unixHandler.Link(tmpPath, path); err != nil {
		if uerr := h.unixHandler.Munmap(data); uerr != nil {
			slog.Warn("Failed to unmap unpublished semaphore object",
				"name", name,
				"err", uerr,
			)
		}

		return nil, fmt.Errorf("failed to publish object: %w", err)
	}

	return newSemaphore(name, data, h.unixHandler), nil
}

// open opens an existing semaphore object at path.
func (h *Handler) open(name string, path string) (*Semaphore, error) {
	fd, err := h.unixHandler.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	defer h.closeFd(fd)

	var stat unix.Stat_t
	if err := h.unixHandler.Fstat(fd, &stat); err != nil {
		return nil, fmt.Errorf("failed to stat object: %w", err)
	}
	if stat.Size < objectSize {
		return nil, fmt.Errorf("object has invalid size %d: %w", stat.Size, unix.EINVAL)
	}

	data, err := h.mmap(fd)
	if err != nil {
		return nil, err
	}

	return newSemaphore(name, data, h.unixHandler), nil
}

func (h *Handler) mmap(fd int) ([]byte, error) {
	data, err := h.unixHandler.Mmap(fd, 0, objectSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("failed to map object: %w", err)
	}

	return data, nil
}

// closeFd closes a descriptor that is no longer needed once the object is
// mapped, so a failure is not relevant to the caller.
func (h *Handler) closeFd(fd int) {
	if err := h.unixHandler.Close(fd); err != nil {
		slog.Debug("Failed to close semaphore object descriptor",
			"fd", fd,
			"err", err,
		)
	}
}

// objectPath validates a name and returns the path of its object. Leading
// slashes are stripped from the name, the remainder must be a valid filename.
func (h *Handler) objectPath(name string) (string, error) {
	base := strings.TrimLeft(name, "/")

	switch {
	case base == "":
		return "", fmt.Errorf("%w: %q is empty: %w", ErrInvalidName, name, unix.EINVAL)

	case strings.Contains(base, "/"):
		return "", fmt.Errorf("%w: %q contains a slash: %w", ErrInvalidName, name, unix.EINVAL)

	case len(objectPrefix)+len(base) > nameMax:
		return "", fmt.Errorf("%w: %q is too long: %w", ErrInvalidName, name, unix.ENAMETOOLONG)
	}

	return h.baseDir + "/" + objectPrefix + base, nil
}
