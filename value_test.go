package pretzyl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_truthy(t *testing.T) {
	for _, tc := range []struct {
		v    interface{}
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0, false},
		{3, true},
		{0.0, false},
		{0.5, true},
		{"", false},
		{"x", true},
		{[]interface{}{}, false},
		{[]interface{}{1}, true},
		{map[string]interface{}{}, false},
		{map[string]interface{}{"k": 1}, true},
		{Reference{"anything"}, true},
	} {
		assert.Equal(t, tc.want, truthy(tc.v), "truthy(%#v)", tc.v)
	}
}

func Test_arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		v, err := addValues(2, 3)
		assert.NoError(t, err)
		assert.Equal(t, 5, v)

		v, err = addValues(2, 0.5)
		assert.NoError(t, err)
		assert.Equal(t, 2.5, v, "a float operand promotes")

		v, err = addValues("foo", "bar")
		assert.NoError(t, err)
		assert.Equal(t, "foobar", v)

		v, err = addValues([]interface{}{1}, []interface{}{2, 3})
		assert.NoError(t, err)
		assert.Equal(t, []interface{}{1, 2, 3}, v)

		_, err = addValues("foo", 1)
		assert.Error(t, err)
	})

	t.Run("mul", func(t *testing.T) {
		v, err := mulValues(6, 7)
		assert.NoError(t, err)
		assert.Equal(t, 42, v)

		v, err = mulValues("ab", 3)
		assert.NoError(t, err)
		assert.Equal(t, "ababab", v, "string repetition")

		v, err = mulValues(2, "ab")
		assert.NoError(t, err)
		assert.Equal(t, "abab", v, "count on either side")

		_, err = mulValues("ab", "cd")
		assert.Error(t, err)
	})

	t.Run("div", func(t *testing.T) {
		v, err := divValues(7, 2)
		assert.NoError(t, err)
		assert.Equal(t, 3, v, "integer division stays integral")

		v, err = divValues(7.0, 2)
		assert.NoError(t, err)
		assert.Equal(t, 3.5, v)

		_, err = divValues(7, 0)
		assert.Error(t, err)
	})
}

func Test_compare_equal(t *testing.T) {
	c, err := compareValues(2, 3)
	assert.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = compareValues(2, 2.0)
	assert.NoError(t, err)
	assert.Equal(t, 0, c, "int and float compare numerically")

	c, err = compareValues("b", "a")
	assert.NoError(t, err)
	assert.Equal(t, 1, c)

	_, err = compareValues("a", 1)
	assert.Error(t, err)

	assert.True(t, equalValues(2, 2.0))
	assert.True(t, equalValues("x", "x"))
	assert.True(t, equalValues([]interface{}{1, "a"}, []interface{}{1, "a"}))
	assert.False(t, equalValues(Reference{"a"}, "a"))
}

func Test_containsValue(t *testing.T) {
	ok, err := containsValue("hello", "ell")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = containsValue([]interface{}{1, 2.0, "x"}, 2)
	assert.NoError(t, err)
	assert.True(t, ok, "numeric membership compares numerically")

	ok, err = containsValue(map[string]interface{}{"k": 1}, "k")
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = containsValue(42, 1)
	assert.Error(t, err)
}

func Test_intValue(t *testing.T) {
	n, ok := intValue(3)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = intValue(3.0)
	assert.True(t, ok)
	assert.Equal(t, 3, n, "whole floats qualify")

	_, ok = intValue(3.5)
	assert.False(t, ok)

	_, ok = intValue("3")
	assert.False(t, ok)
}
