package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	v, ok := First([]string{"b", "a"})
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{0}))
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"union u": 2, "Bar": 1, "anon": 3})
	assert.Equal(t, []string{"Bar", "anon", "union u"}, keys)

	assert.Empty(t, SortedKeys(map[uint64]bool{}))
}
