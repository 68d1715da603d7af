package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "8080", "EMPTY": ""}

	assert.Equal(t, "8080", GetString(cfg, "PORT", "3000"))
	assert.Equal(t, "", GetString(cfg, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(cfg, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"LIMIT": "60", "BAD": "sixty"}

	assert.Equal(t, 60, GetInt(cfg, "LIMIT", 10))
	assert.Equal(t, 10, GetInt(cfg, "BAD", 10))
	assert.Equal(t, 10, GetInt(cfg, "MISSING", 10))
	assert.Equal(t, 10, GetInt(nil, "LIMIT", 10))
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{"ON": "true", "OFF": "0", "BAD": "yes please"}

	assert.True(t, GetBool(cfg, "ON", false))
	assert.False(t, GetBool(cfg, "OFF", true))
	assert.True(t, GetBool(cfg, "BAD", true))
	assert.False(t, GetBool(cfg, "MISSING", false))
}

func TestIsProduction(t *testing.T) {
	assert.True(t, IsProduction(map[string]string{"ENVIRONMENT": "production"}))
	assert.True(t, IsProduction(map[string]string{"ENVIRONMENT": "Production"}))
	assert.False(t, IsProduction(map[string]string{"ENVIRONMENT": "development"}))
	assert.False(t, IsProduction(map[string]string{}))
}

func TestSplit(t *testing.T) {
	key, value := split("DATABASE_URL=postgres://localhost:5432/app?sslmode=disable")
	assert.Equal(t, "DATABASE_URL", key)
	assert.Equal(t, "postgres://localhost:5432/app?sslmode=disable", value)

	key, value = split("NOVALUE")
	assert.Equal(t, "NOVALUE", key)
	assert.Equal(t, "", value)
}
