package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StrUniqueWithMaxLen(t *testing.T) {
	t.Run("should return the original string when it is not longer than max len", func(t *testing.T) {
		s := "totoro"
		maxLen := 6
		bestEffortHash := StrUniqueWithMaxLen(s, maxLen)
		assert.Equal(t, "totoro", bestEffortHash)
		assert.Equal(t, maxLen, len(bestEffortHash))
	})

	t.Run("should return first chars of the original string plus 3 chars from the hash when it is longer than max len", func(t *testing.T) {
		s := "totoro"
		maxLen := 5
		bestEffortHash := StrUniqueWithMaxLen(s, maxLen)
		assert.Equal(t, maxLen, len(bestEffortHash))
		assert.Equal(t, "t-8bd", bestEffortHash)
	})

	t.Run("should only return the hash when max len is tiny", func(t *testing.T) {
		bestEffortHash := StrUniqueWithMaxLen("ssmec2-instance-profile", 4)
		assert.Equal(t, StrHash("ssmec2-instance-profile")[:4], bestEffortHash)
	})
}

func TestStrHashIsStable(t *testing.T) {
	assert.Equal(t, StrHash("a", "b"), StrHash("ab"))
	assert.NotEqual(t, StrHash("a"), StrHash("b"))
	assert.NotEmpty(t, StrHash("anything"))
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	assert.NotNil(t, StringPtr("key"))
	assert.Equal(t, 3, *Pointer(3))
}
