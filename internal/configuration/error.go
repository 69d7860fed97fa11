package configuration

import "errors"

// ErrKeyNotFound is an error that occurs when a configuration key is requested
// that does not exist in the read configuration.
var ErrKeyNotFound = errors.New("configuration key not found")
