package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateComponentName    = errors.New("duplicate component name")
	ErrDuplicateConnectionName   = errors.New("duplicate connection name")
	ErrInvalidComponentReference = errors.New("invalid component reference")
	ErrNilElement                = errors.New("nil element")
)

// ValidationError names the identifier that broke an architecture invariant.
// errors.Is matches it against the sentinel in Err.
type ValidationError struct {
	Err  error
	Name string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Name)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate rejects nil elements, then checks name uniqueness and connection
// endpoints, in that order, and stops at the first violation category found.
func (a *Architecture) Validate() error {
	if a == nil {
		return fmt.Errorf("architecture is nil")
	}
	if err := a.checkNil(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(a.Components))
	for _, c := range a.Components {
		if seen[c.Name] {
			return &ValidationError{Err: ErrDuplicateComponentName, Name: c.Name}
		}
		seen[c.Name] = true
	}

	conns := make(map[string]bool, len(a.Connections))
	for _, c := range a.Connections {
		if conns[c.Name] {
			return &ValidationError{Err: ErrDuplicateConnectionName, Name: c.Name}
		}
		conns[c.Name] = true
	}

	for _, c := range a.Connections {
		if !seen[c.Source] {
			return &ValidationError{Err: ErrInvalidComponentReference, Name: c.Source}
		}
		if !seen[c.Target] {
			return &ValidationError{Err: ErrInvalidComponentReference, Name: c.Target}
		}
	}

	return nil
}

// checkNil names the first nil entry by its position, e.g. "connections[2]".
func (a *Architecture) checkNil() error {
	nilAt := func(format string, args ...any) error {
		return &ValidationError{Err: ErrNilElement, Name: fmt.Sprintf(format, args...)}
	}
	for i, c := range a.Components {
		if c == nil {
			return nilAt("components[%d]", i)
		}
		for j, it := range c.Provided {
			if it == nil {
				return nilAt("components[%d].provided[%d]", i, j)
			}
		}
		for j, it := range c.Required {
			if it == nil {
				return nilAt("components[%d].required[%d]", i, j)
			}
		}
	}
	for i, c := range a.Connections {
		if c == nil {
			return nilAt("connections[%d]", i)
		}
	}
	for i, p := range a.Properties {
		if p == nil {
			return nilAt("properties[%d]", i)
		}
	}
	return nil
}
