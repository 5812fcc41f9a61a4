package envvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("STREAMTA_TEST_BOOL", "true")
	t.Setenv("STREAMTA_TEST_BAD", "x")

	var b bool
	assert.True(t, SetBool(Key("TEST_BOOL"), &b))
	assert.True(t, b)

	b = true
	assert.False(t, SetBool(Key("TEST_BAD"), &b))
	assert.True(t, b)

	v, ok := Bool(Key("TEST_UNSET"), true)
	assert.False(t, ok)
	assert.True(t, v)

	s, ok := String(Key("TEST_UNSET"), "fallback")
	assert.False(t, ok)
	assert.Equal(t, "fallback", s)
}

func TestEnv(t *testing.T) {
	t.Setenv("STREAMTA_ENV", "")
	assert.Equal(t, EnvDevelopment, Env())
	assert.False(t, IsProduction())

	t.Setenv("STREAMTA_ENV", "production")
	assert.True(t, IsProduction())
	assert.Equal(t, ".env.production.local", DotenvFiles()[0])
}
