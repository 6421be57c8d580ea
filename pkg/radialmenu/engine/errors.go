package engine

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("invalid radial menu configuration")

// ConfigurationError is returned when a menu cannot be built from the supplied items or radius.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfiguration.Error(), e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
