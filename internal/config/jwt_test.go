package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	j, err := NewJWT()
	require.NoError(t, err)

	claims := NewSolverClaims(42, "somebody", j.TokenLifetime())
	token, err := j.Sign(claims)
	require.NoError(t, err)

	parsed, err := j.ParseSolverClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.SolverId)
	assert.Equal(t, "somebody", parsed.Username)
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	j, err := NewJWT()
	require.NoError(t, err)

	token, err := j.Sign(NewSolverClaims(1, "somebody", j.TokenLifetime()))
	require.NoError(t, err)

	_, err = j.ParseSolverClaims(token + "x")
	assert.Error(t, err)
}

func TestJWTRequiresSecret(t *testing.T) {
	// t.Setenv registers the restore; unset to exercise the error path.
	t.Setenv("JWT_SECRET", "placeholder")
	os.Unsetenv("JWT_SECRET")

	_, err := NewJWT()
	assert.Error(t, err)
}
