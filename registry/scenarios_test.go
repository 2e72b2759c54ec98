package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenarios(t *testing.T) {
	registry := Scenarios()

	assert.Equal(t, []string{"aws/config-check", "aws/ssm-ec2-rdp"}, registry.List())
	assert.NotNil(t, registry.Get(DefaultScenario))
	assert.NotNil(t, registry.Get("AWS/Config-Check"))
	assert.Nil(t, registry.Get("aws/vm"))
}
