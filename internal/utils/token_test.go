package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tetteam4/swimming-project/internal/utils"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := utils.GenerateToken(42, true, false)
	assert.NoError(t, err)

	claims, err := utils.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, true, claims["is_staff"])
	assert.Equal(t, false, claims["is_superuser"])
	assert.Equal(t, "access", claims["token_type"])

	_, err = utils.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestValidateRefreshToken(t *testing.T) {
	refresh, err := utils.GenerateRefreshToken(7)
	assert.NoError(t, err)

	userID, err := utils.ValidateRefreshToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	// Access tokens are rejected on the refresh path.
	access, err := utils.GenerateToken(7, false, false)
	assert.NoError(t, err)
	_, err = utils.ValidateRefreshToken(access)
	assert.EqualError(t, err, "not a refresh token")
}
