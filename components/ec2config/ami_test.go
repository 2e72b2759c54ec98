package ec2config

import (
	"errors"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAMIConfiguration(t *testing.T) {
	tests := []struct {
		name         string
		amiID        string
		amiParameter string
		wantKind     Kind
	}{
		{name: "explicit id", amiID: "ami-0123456789abcdef0"},
		{name: "parameter path", amiParameter: "/aws/service/ami-amazon-linux-latest/al2023-ami-kernel-6.1-x86_64"},
		{name: "both set", amiID: "X", amiParameter: "Y", wantKind: KindConflict},
		{name: "none set", wantKind: KindMissing},
		{name: "short id", amiID: "ami-0123", wantKind: KindInvalidValue},
		{name: "uppercase id", amiID: "ami-0123456789ABCDEF0", wantKind: KindInvalidValue},
		{name: "id without prefix", amiID: "0123456789abcdef0", wantKind: KindInvalidValue},
		{name: "relative path", amiParameter: "aws/service/foo", wantKind: KindInvalidValue},
		{name: "root path", amiParameter: "/", wantKind: KindInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewAMIConfiguration(tt.amiID, tt.amiParameter)
			if tt.wantKind == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.amiID, cfg.AMIID())
				assert.Equal(t, tt.amiParameter, cfg.AMIParameter())
				assert.NotEqual(t, cfg.HasAMIID(), cfg.HasAMIParameter())
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestNewAMIConfigurationMissingNamesAMI(t *testing.T) {
	_, err := NewAMIConfiguration("", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissing))
	assert.Contains(t, err.Error(), "AMI")
}

func TestNewAMIConfigurationConflictBeforeFormat(t *testing.T) {
	// Both selectors are malformed, the conflict still wins.
	_, err := NewAMIConfiguration("not-an-ami", "not-a-path")
	assert.ErrorIs(t, err, ErrConflict)
}

// Every input pair lands in exactly one partition.
func TestNewAMIConfigurationPartitions(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 500; i++ {
		var amiID, amiParameter string
		f.Fuzz(&amiID)
		f.Fuzz(&amiParameter)
		// Bias towards empty and well formed inputs so every partition is hit.
		switch i % 5 {
		case 0:
			amiID = ""
		case 1:
			amiParameter = ""
		case 2:
			amiID, amiParameter = "", ""
		case 3:
			amiID, amiParameter = "ami-0123456789abcdef0", ""
		}

		cfg, err := NewAMIConfiguration(amiID, amiParameter)

		partitions := 0
		for _, sentinel := range []error{ErrMissing, ErrConflict, ErrInvalidValue} {
			if errors.Is(err, sentinel) {
				partitions++
			}
		}
		if err == nil {
			partitions++
			assert.True(t, cfg.HasAMIID() != cfg.HasAMIParameter())
		}
		require.Equal(t, 1, partitions, "id=%q parameter=%q err=%v", amiID, amiParameter, err)

		switch {
		case amiID != "" && amiParameter != "":
			assert.ErrorIs(t, err, ErrConflict)
		case amiID == "" && amiParameter == "":
			assert.ErrorIs(t, err, ErrMissing)
		}
	}
}
