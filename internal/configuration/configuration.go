// Package configuration implements reading of generic Unix-type configuration
// files and holds the constants shared by the other packages.
package configuration

import (
	"fmt"
	"strings"

	"github.com/desertwitch/posixipc/internal/numeric"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation for reading configurations.
type Handler struct {
	genericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
	}
}

// Read reads the given configuration files into a map (map[key]value).
func (c *Handler) Read(filenames ...string) (map[string]string, error) {
	envMap, err := c.genericHandler.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config) %w", err)
	}

	return envMap, nil
}

// MapKeyToString returns the value for a key or "" if the key does not exist.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToInt returns the value for a key converted with [numeric.Parse]. If
// the key does not exist or is empty, [ErrKeyNotFound] is returned.
func (c *Handler) MapKeyToInt(envMap map[string]string, key string) (int, error) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return 0, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	intValue, err := numeric.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("(config) %s: %w", key, err)
	}

	return intValue, nil
}

// MapKeyToCount returns the value for a key like [Handler.MapKeyToInt], but also
// accepts a value consisting only of zeros as 0. It is meant for settings where
// zero is a meaningful amount, such as wait ticks.
func (c *Handler) MapKeyToCount(envMap map[string]string, key string) (int, error) {
	value := c.MapKeyToString(envMap, key)
	if value != "" && strings.Trim(value, "0") == "" {
		return 0, nil
	}

	return c.MapKeyToInt(envMap, key)
}
