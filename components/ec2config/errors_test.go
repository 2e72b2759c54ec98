package ec2config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	err := InvalidValue(FieldInstanceType, "invalid instance type format: %s", "foo")

	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.NotErrorIs(t, err, ErrMissing)
	assert.Equal(t, FieldInstanceType, err.Field)
	assert.Equal(t, "invalid instance type format: foo", err.Error())

	wrapped := fmt.Errorf("building stack: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidValue)
	assert.Equal(t, KindInvalidValue, KindOf(wrapped))
}

func TestNotFoundKeepsCause(t *testing.T) {
	cause := errors.New("parameter does not exist")
	err := NotFound(FieldAMIParameter, cause, "AMI not found: %s", "/foo")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "AMI not found: /foo: parameter does not exist", err.Error())
	assert.False(t, IsConfigurationError(err))
}

func TestConfigurationError(t *testing.T) {
	err := error(&ConfigurationError{Err: Missing(FieldInstanceType, "instance-type is required")})

	assert.Equal(t, "configuration validation failed: instance-type is required", err.Error())
	assert.ErrorIs(t, err, ErrMissing)
	assert.True(t, IsConfigurationError(err))

	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "missing configuration", KindMissing.String())
	assert.Equal(t, "conflicting configuration", KindConflict.String())
	assert.Equal(t, "invalid value", KindInvalidValue.String())
	assert.Equal(t, "not found", KindNotFound.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, "missing configuration", (&Error{Kind: KindMissing}).Error())
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
}
