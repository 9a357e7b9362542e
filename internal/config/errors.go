package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNoConfigDir indicates the user configuration directory is unknown.
	ErrNoConfigDir = errors.New("config: no user config directory")

	// ErrValidationFailed indicates a setting holds an unusable value.
	ErrValidationFailed = errors.New("config: validation failed")
)

// ParseError represents an error while parsing the configuration file.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }
