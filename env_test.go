package pretzyl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MapEnv(t *testing.T) {
	env := MapEnv{"name": "Jack"}

	assert.True(t, env.Contains("name"))
	assert.False(t, env.Contains("sammy"))

	v, err := env.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "Jack", v)

	_, err = env.Get("sammy")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func Test_Lookup(t *testing.T) {
	p := New(MapEnv{"name": "Jack"})

	v, err := p.Lookup(Reference{"name"})
	require.NoError(t, err)
	assert.Equal(t, "Jack", v)

	v, err = p.Lookup("literal passes through")
	require.NoError(t, err)
	assert.Equal(t, "literal passes through", v)

	_, err = p.Lookup(Reference{"sammy"})
	assert.ErrorIs(t, err, ErrInvalidReference)

	assert.True(t, p.ValidRef(Reference{"name"}))
	assert.False(t, p.ValidRef(Reference{"sammy"}))
	assert.False(t, p.ValidRef("name"), "only references can be valid refs")
}
