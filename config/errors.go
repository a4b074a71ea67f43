package config

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrConfiguration matches every *ConfigurationError with errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports static configuration that violates its contract.
// It is raised while loading and is never produced by rendering.
type ConfigurationError struct {
	Source string
	Field  string
	Err    error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Source != "" && e.Field != "":
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	case e.Source != "":
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// Invalid builds a ConfigurationError for field of source.
func Invalid(source, field, format string, args ...interface{}) error {
	return &ConfigurationError{Source: source, Field: field, Err: errors.Errorf(format, args...)}
}

// WithSource sets the source on a ConfigurationError and nests field under prefix.
// Other errors are wrapped with the source as context.
func WithSource(err error, source, prefix string) error {
	if err == nil {
		return nil
	}
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		return errors.Wrap(err, source)
	}
	out := *ce
	if out.Source == "" {
		out.Source = source
	}
	if prefix != "" {
		if out.Field == "" {
			out.Field = prefix
		} else {
			out.Field = prefix + "." + out.Field
		}
	}
	return &out
}
