// Package fifo implements creation, opening and removal of named pipes.
package fifo

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/posixipc/internal/configuration"
)

// Mode is the permission mode of any created FIFO.
const Mode = configuration.FifoMode

type osProvider interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

type unixProvider interface {
	Mkfifo(path string, mode uint32) error
	Unlink(path string) error
}

// Handler is the principal implementation for the FIFO functions.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new FIFO [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}

// Open creates a FIFO at path with [Mode] and opens it with the given flags
// (e.g. [os.O_RDONLY]). The path must not exist yet, otherwise
// [ErrCreateFailed] is returned. If the created FIFO cannot be opened, it is
// unlinked again and [ErrOpenFailed] is returned. A failure to unlink at that
// point is only logged, the returned error remains the opening error.
//
// Opening a FIFO read-only or write-only blocks until the other end is opened,
// unless [os.O_NONBLOCK] or [os.O_RDWR] is part of flags. The returned file is
// owned by the caller and needs to be closed and eventually unlinked.
func (h *Handler) Open(path string, flags int) (*os.File, error) {
	if err := h.unixHandler.Mkfifo(path, Mode); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateFailed, diagnostic("FIFO %s creation failed", path), err)
	}

	f, err := h.osHandler.OpenFile(path, flags, 0)
	if err != nil {
		if uerr := h.Unlink(path); uerr != nil {
			slog.Warn("Failed to roll back FIFO after failed opening",
				"path", path,
				"err", uerr,
			)
		}

		return nil, fmt.Errorf("%w: %s: %w", ErrOpenFailed, diagnostic("FIFO %s opening failed", path), err)
	}

	return f, nil
}

// Unlink removes the filesystem entry at path, returning [ErrUnlinkFailed] if
// that is not possible (e.g. it does not exist).
func (h *Handler) Unlink(path string) error {
	if err := h.unixHandler.Unlink(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnlinkFailed, diagnostic("FIFO %s unlink failed", path), err)
	}

	return nil
}
