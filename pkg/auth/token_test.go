package auth

import (
	"testing"
	"time"

	"github.com/averyhollis/stockroom-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "stockroom-test"}
}

func TestMintParseRoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, err := Mint(cfg, time.Now().UTC(), "avery", 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, "avery", claims.Subject())
}

func TestMintZeroTTLIsAlreadyExpired(t *testing.T) {
	cfg := testJWTConfig()

	token, err := Mint(cfg, time.Now().UTC(), "avery", 0)
	require.NoError(t, err)

	_, err = Parse(cfg, token)
	require.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, err := Mint(cfg, time.Now().UTC(), "avery", time.Hour)
	require.NoError(t, err)

	other := cfg
	other.Secret = "different-secret"
	_, err = Parse(other, token)
	require.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	cfg := testJWTConfig()

	token, err := Mint(cfg, time.Now().UTC(), "avery", time.Hour)
	require.NoError(t, err)

	other := cfg
	other.Issuer = "someone-else"
	_, err = Parse(other, token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse(testJWTConfig(), "not-a-token")
	require.Error(t, err)
}

func TestMintRequiresSubject(t *testing.T) {
	_, err := Mint(testJWTConfig(), time.Now().UTC(), "", time.Hour)
	require.Error(t, err)
}
