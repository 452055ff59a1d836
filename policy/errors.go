package policy

import "fmt"

// ConfigError indicates a fundamentally invalid retry configuration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("redrive: invalid policy config: %s %s", e.Field, e.Reason)
}
