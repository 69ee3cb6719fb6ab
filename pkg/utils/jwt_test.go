package utils_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/pkg/utils"
)

// The signing key must be read after the environment is populated, not at
// package init, so secrets loaded from .env at startup take effect.
func TestToken_UsesSecretSetAfterInit(t *testing.T) {
	t.Setenv("JWT_SECRET", "late-bound-secret")

	userId := uuid.New()
	token, err := utils.CreateToken(userId, "traveler@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userId.String(), claims.UserID)
	assert.Equal(t, "traveler@example.com", claims.Email)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := utils.CreateToken(uuid.New(), "traveler@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	claims, err := utils.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
