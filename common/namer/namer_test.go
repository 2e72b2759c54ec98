package namer

import (
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
)

func TestResourceName(t *testing.T) {
	for _, tt := range []struct {
		prefix   string
		parts    []string
		expected string
	}{
		{prefix: "", parts: []string{"vpc"}, expected: "vpc"},
		{prefix: "ssmec2", parts: []string{"vpc"}, expected: "ssmec2-vpc"},
		{prefix: "ssmec2", parts: []string{"sg", "", "instance"}, expected: "ssmec2-sg-instance"},
		{prefix: "aws", parts: []string{"endpoint", "ssmmessages"}, expected: "aws-endpoint-ssmmessages"},
	} {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewNamer(nil, tt.prefix).ResourceName(tt.parts...))
		})
	}
}

func TestResourceNameRequiresParts(t *testing.T) {
	assert.Panics(t, func() { NewNamer(nil, "x").ResourceName() })
}

func TestResourceNameWithMaxLen(t *testing.T) {
	n := NewNamer(nil, "ssmec2")
	assert.Equal(t, "ssmec2-role", n.ResourceNameWithMaxLen(64, "role"))

	long := n.ResourceNameWithMaxLen(32, "instance-connect-endpoint", "security-group")
	assert.Len(t, long, 32)
	assert.True(t, strings.HasPrefix(long, "ssmec2-instance-connect-en"))
}

func TestResourceNameJoinsNonEmptyParts(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 6)
	n := NewNamer(nil, "p")
	for i := 0; i < 200; i++ {
		var parts []string
		f.Fuzz(&parts)

		name := n.ResourceName(parts...)

		assert.True(t, strings.HasPrefix(name, "p"))
		var nonEmpty []string
		for _, part := range parts {
			if part != "" {
				nonEmpty = append(nonEmpty, part)
			}
		}
		assert.Equal(t, strings.Join(append([]string{"p"}, nonEmpty...), "-"), name)
	}
}
