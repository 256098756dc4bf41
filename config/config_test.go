package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBool(t *testing.T) {
	c := map[string]string{
		"ENABLED":  "true",
		"DISABLED": "false",
		"GARBAGE":  "not-a-bool",
	}

	assert.True(t, GetBool(c, "ENABLED", false))
	assert.False(t, GetBool(c, "DISABLED", true))
	assert.True(t, GetBool(c, "GARBAGE", true), "unparseable values fall back to the default")
	assert.True(t, GetBool(c, "MISSING", true))
	assert.False(t, GetBool(nil, "ENABLED", false))
}

func TestGetIntFallsBackOnBadValues(t *testing.T) {
	c := map[string]string{
		"PORT": "8080",
		"BAD":  "eighty",
	}

	assert.Equal(t, 8080, GetInt(c, "PORT", 1))
	assert.Equal(t, 42, GetInt(c, "BAD", 42))
	assert.Equal(t, 42, GetInt(c, "MISSING", 42))
}
