package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAliasSet_OrderedAndDeduplicated(t *testing.T) {
	var s AliasSet

	assert.True(t, s.Add("foo_t"))
	assert.True(t, s.Add("Foo"))
	assert.True(t, s.Add("bar"))
	assert.False(t, s.Add("Foo"))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"Foo", "bar", "foo_t"}, s.Values())
	assert.True(t, s.Contains("bar"))
	assert.False(t, s.Contains("baz"))

	first, ok := s.First()
	assert.True(t, ok)
	assert.Equal(t, "Foo", first)
}

func TestAliasSet_RemoveAndPop(t *testing.T) {
	s := NewAliasSet("b", "a", "c", "a")

	assert.True(t, s.Remove("b"))
	assert.False(t, s.Remove("b"))

	v, ok := s.PopFirst()
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = s.PopFirst()
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = s.PopFirst()
	assert.False(t, ok)
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Values())
	assert.Equal(t, AliasSet{}, s)
}

func TestAliasSet_ValuesIsACopy(t *testing.T) {
	s := NewAliasSet("x", "y")
	vals := s.Values()
	vals[0] = "changed"

	assert.Equal(t, []string{"x", "y"}, s.Values())
}
