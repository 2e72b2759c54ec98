package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
)

func TestReportError(t *testing.T) {
	t.Run("configuration error prints help", func(t *testing.T) {
		_, err := ec2config.NewEC2Configuration(ec2config.Values{InstanceType: "t3.medium"})
		var out bytes.Buffer

		code := reportError(&out, fmt.Errorf("running program: %w", err))

		assert.Equal(t, 1, code)
		assert.Contains(t, out.String(), "Configuration error:")
		assert.Contains(t, out.String(), ec2config.Help())
	})

	t.Run("other errors do not print help", func(t *testing.T) {
		var out bytes.Buffer

		code := reportError(&out, errors.New("boom"))

		assert.Equal(t, 1, code)
		assert.Contains(t, out.String(), "Unexpected error: boom")
		assert.NotContains(t, out.String(), ec2config.Help())
	})
}
