package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-test-secret-key-0"

func TestNewJWTConfig(t *testing.T) {
	cfg, err := NewJWTConfig(testSecret, 24)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, testSecret, cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	cfg, err := NewJWTConfig("", 24)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Equal(t, "JWT_SECRET is required but not set", err.Error())
}

func TestNewJWTConfig_ShortSecret(t *testing.T) {
	_, err := NewJWTConfig(strings.Repeat("x", minSecretLen-1), 24)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be at least 32 bytes")

	_, err = NewJWTConfig(strings.Repeat("x", minSecretLen), 24)
	assert.NoError(t, err)
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	for _, hours := range []int{0, -1} {
		_, err := NewJWTConfig(testSecret, hours)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_EXPIRATION_HOURS must be at least 1 hour")
	}

	cfg, err := NewJWTConfig(testSecret, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.ExpirationHours)
}

func TestConfig_JWTUsesDefaultExpiration(t *testing.T) {
	t.Setenv("BRANDCRAFT_JWT_SECRET", testSecret)
	t.Setenv("BRANDCRAFT_JWT_EXPIRATION_HOURS", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	v, err := NewViper("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	jwtCfg, err := cfg.JWT()
	require.NoError(t, err)
	assert.Equal(t, 24, jwtCfg.ExpirationHours, "should use default expiration of 24 hours")
}
