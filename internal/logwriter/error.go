package logwriter

import "errors"

// ErrWriteFailed is an error that occurs when a message cannot be written
// completely to the stream.
var ErrWriteFailed = errors.New("log write failed")
