package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "value")
	t.Setenv("CONFIG_TEST_EQUALS", "a=b=c")

	cfg := New()

	assert.Equal(t, "value", cfg["CONFIG_TEST_KEY"])
	assert.Equal(t, "a=b=c", cfg["CONFIG_TEST_EQUALS"])
}

func TestGetString(t *testing.T) {
	cfg := map[string]string{"NAME": "portfolio", "EMPTY": ""}

	assert.Equal(t, "portfolio", GetString(cfg, "NAME", "fallback"))
	assert.Equal(t, "", GetString(cfg, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(cfg, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "NAME", "fallback"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"PORT": "8080", "BAD": "not-a-number"}

	assert.Equal(t, 8080, GetInt(cfg, "PORT", 3000))
	assert.Equal(t, 3000, GetInt(cfg, "BAD", 3000))
	assert.Equal(t, 3000, GetInt(cfg, "MISSING", 3000))
	assert.Equal(t, 3000, GetInt(nil, "PORT", 3000))
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{"ON": "true", "OFF": "0", "BAD": "yep"}

	assert.True(t, GetBool(cfg, "ON", false))
	assert.False(t, GetBool(cfg, "OFF", true))
	assert.True(t, GetBool(cfg, "BAD", true))
	assert.False(t, GetBool(cfg, "MISSING", false))
}

func TestGetSeconds(t *testing.T) {
	cfg := map[string]string{"CACHE_TTL_SECONDS": "120"}

	assert.Equal(t, 2*time.Minute, GetSeconds(cfg, "CACHE_TTL_SECONDS", 3600))
	assert.Equal(t, time.Hour, GetSeconds(cfg, "MISSING", 3600))
}
