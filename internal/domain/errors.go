package domain

import "fmt"

// ConfigurationError marks a valuation configuration problem (zero or
// multiple default scoring profiles, a rule referencing an unknown group).
// It is fatal to a recompute pass and surfaced to operators, never retried.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("valuation configuration error: %s", e.Reason)
}

func NewConfigurationError(format string, args ...interface{}) ConfigurationError {
	return ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
