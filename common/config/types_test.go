package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStackConfig(t *testing.T) {
	cfg := NewStackConfig("ap-northeast-1", map[string]any{
		AMIIDParamName:        "ami-0123456789abcdef0",
		AMIParameterParamName: "",
		InstanceTypeParamName: "t3.medium",
		KeyPairNameParamName:  nil,
		UserDataParamName:     map[string]any{"enable_iis": true},
	})

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Equal(t, `config:
    aws:region: ap-northeast-1
    ssmec2:ami-id: ami-0123456789abcdef0
    ssmec2:instance-type: t3.medium
    ssmec2:user-data:
        enable_iis: true
`, out)
}

func TestNewStackConfigWithoutRegion(t *testing.T) {
	cfg := NewStackConfig("", map[string]any{SubnetTypeParamName: "public"})
	assert.Equal(t, map[string]any{"ssmec2:subnet-type": "public"}, cfg.Config)
}

func TestTagListToKeyValueMap(t *testing.T) {
	tags, err := tagListToKeyValueMap([]string{"team:infra", "", "url:https://x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"team": "infra", "url": "https://x"}, tags)

	_, err = tagListToKeyValueMap([]string{"novalue"})
	assert.Error(t, err)
}
