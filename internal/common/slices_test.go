package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFirstOr(t *testing.T) {
	assert.Equal(t, "x", FirstOr([]string{"x"}, "def"))
	assert.Equal(t, "def", FirstOr([]string{}, "def"))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, Map([]string{"a", "b"}, strings.ToUpper))
	assert.Nil(t, Map([]string(nil), strings.ToUpper))
}
