package ec2config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerExtract(t *testing.T) {
	m := NewManager(MapProvider{
		"instance-type": " t3.medium ",
		"ami-id":        "ami-0123456789abcdef0",
		"unrelated":     "ignored",
	})

	assert.Equal(t, map[string]string{
		"ami-id":        "ami-0123456789abcdef0",
		"ami-parameter": "",
		"instance-type": "t3.medium",
		"key-pair-name": "",
	}, m.Extract())

	v, ok := m.ContextValue("unrelated")
	assert.True(t, ok)
	assert.Equal(t, "ignored", v)
	assert.False(t, m.HasContextValue("ami-parameter"))
	assert.True(t, m.HasContextValue("instance-type"))
}

func TestManagerTrimsValues(t *testing.T) {
	m := NewManager(MapProvider{
		"ami-id":        "  ami-0123456789abcdef0\n",
		"ami-parameter": "   ",
		"instance-type": "t3.medium",
	})

	v, ok := m.ContextValue("ami-parameter")
	assert.True(t, ok)
	assert.Empty(t, v)
	assert.False(t, m.HasContextValue("ami-parameter"))

	cfg, err := m.Configuration()
	require.NoError(t, err)
	assert.Equal(t, "ami-0123456789abcdef0", cfg.AMI.AMIID())
}

func TestManagerConfiguration(t *testing.T) {
	t.Run("explicit id", func(t *testing.T) {
		cfg, err := NewManager(MapProvider{
			"instance-type": "t3.medium",
			"ami-id":        "ami-0123456789abcdef0",
		}).Configuration()
		require.NoError(t, err)
		assert.Equal(t, "ami-0123456789abcdef0", cfg.AMI.AMIID())
		assert.Equal(t, "t3.medium", cfg.Instance.InstanceType())
		assert.Equal(t, SubnetPrivate, cfg.Instance.SubnetType())
	})

	t.Run("public subnet and key pair", func(t *testing.T) {
		cfg, err := NewManager(MapProvider{
			"instance-type": "m5.large",
			"ami-parameter": WindowsServer2022JapaneseParameter,
			"key-pair-name": "my-key-pair",
			"subnet-type":   "public",
		}).Configuration()
		require.NoError(t, err)
		assert.Equal(t, WindowsServer2022JapaneseParameter, cfg.AMI.AMIParameter())
		assert.True(t, cfg.Instance.IsPublic())
		assert.Equal(t, "my-key-pair", cfg.Instance.KeyPairName())
	})

	t.Run("conflict", func(t *testing.T) {
		_, err := NewManager(MapProvider{
			"instance-type": "t3.medium",
			"ami-id":        "X",
			"ami-parameter": "Y",
		}).Configuration()
		require.Error(t, err)

		var cfgErr *ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.ErrorIs(t, err, ErrConflict)
		assert.Contains(t, err.Error(), "configuration validation failed")
	})

	t.Run("missing AMI", func(t *testing.T) {
		_, err := NewManager(MapProvider{"instance-type": "t3.medium"}).Configuration()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissing)
		assert.Contains(t, err.Error(), "AMI")
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("invalid instance type after valid AMI", func(t *testing.T) {
		_, err := NewManager(MapProvider{
			"instance-type": "large",
			"ami-id":        "ami-0123456789abcdef0",
		}).Configuration()
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewManager(nil).Configuration()
		assert.ErrorIs(t, err, ErrMissing)
	})
}

func TestManagerCheckCompleteness(t *testing.T) {
	tests := []struct {
		name     string
		values   MapProvider
		complete bool
		missing  []string
	}{
		{
			name:     "complete",
			values:   MapProvider{"instance-type": "t3.medium", "ami-parameter": "/x"},
			complete: true,
		},
		{
			name:    "nothing",
			values:  MapProvider{},
			missing: []string{"instance-type", "ami-id or ami-parameter"},
		},
		{
			name:    "blank instance type",
			values:  MapProvider{"instance-type": "  ", "ami-id": "ami-0123456789abcdef0"},
			missing: []string{"instance-type"},
		},
		{
			name:    "no AMI",
			values:  MapProvider{"instance-type": "t3.medium"},
			missing: []string{"ami-id or ami-parameter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			complete, missing := NewManager(tt.values).CheckCompleteness()
			assert.Equal(t, tt.complete, complete)
			assert.Equal(t, tt.missing, missing)
		})
	}
}

func TestHelp(t *testing.T) {
	help := Help()
	for _, key := range append(ContextKeys, FieldSubnetType) {
		assert.Contains(t, help, key)
	}
	assert.Contains(t, help, AmazonLinux2023Parameter)
}
