// Package logwriter implements writing of literal messages to streams.
package logwriter

import (
	"fmt"
	"io"
)

// WriteFailed is the byte count returned by [Log] when writing failed.
const WriteFailed = -1

// Log writes the message verbatim to w, without interpreting it as a format
// string. It returns the amount of bytes written, or [WriteFailed] together
// with an error wrapping [ErrWriteFailed] if the message could not be written
// completely. No buffering or flushing happens beyond what w provides.
func Log(w io.Writer, message string) (int, error) {
	n, err := io.WriteString(w, message)
	if err == nil && n < len(message) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return WriteFailed, fmt.Errorf("%w: %d of %d bytes written: %w", ErrWriteFailed, n, len(message), err)
	}

	return n, nil
}
