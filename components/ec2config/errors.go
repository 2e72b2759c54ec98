package ec2config

import (
	"errors"
	"fmt"
)

// Kind classifies every failure raised while building or resolving a configuration.
type Kind int

const (
	// KindMissing is a required value that is absent.
	KindMissing Kind = iota + 1
	// KindConflict is two mutually exclusive values that are both present.
	KindConflict
	// KindInvalidValue is a present value that fails its format or vocabulary check.
	KindInvalidValue
	// KindNotFound is a locally valid value the provisioner could not resolve.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing configuration"
	case KindConflict:
		return "conflicting configuration"
	case KindInvalidValue:
		return "invalid value"
	case KindNotFound:
		return "not found"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinels to be used with errors.Is.
var (
	ErrMissing      = &Error{Kind: KindMissing}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrInvalidValue = &Error{Kind: KindInvalidValue}
	ErrNotFound     = &Error{Kind: KindNotFound}
)

// Error carries the kind of failure, the offending field and a user facing message.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrMissing) works
// regardless of field and message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, field, format string, args ...any) *Error {
	return &Error{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Missing returns a KindMissing error for field.
func Missing(field, format string, args ...any) *Error {
	return newError(KindMissing, field, format, args...)
}

// Conflict returns a KindConflict error for field.
func Conflict(field, format string, args ...any) *Error {
	return newError(KindConflict, field, format, args...)
}

// InvalidValue returns a KindInvalidValue error for field.
func InvalidValue(field, format string, args ...any) *Error {
	return newError(KindInvalidValue, field, format, args...)
}

// NotFound wraps cause into a KindNotFound error for field.
func NotFound(field string, cause error, format string, args ...any) *Error {
	e := newError(KindNotFound, field, format, args...)
	e.Err = cause
	return e
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ConfigurationError is returned by configuration construction. It keeps the
// original failure reachable through Unwrap.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration validation failed: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is, or wraps, a configuration failure.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return true
	}
	k := KindOf(err)
	return k == KindMissing || k == KindConflict || k == KindInvalidValue
}
