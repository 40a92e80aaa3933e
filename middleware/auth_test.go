package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestExtractUserIDFromFloat(t *testing.T) {
	// JSON numbers decode as float64
	id, err := ExtractUserID(jwt.MapClaims{"id": float64(42)})

	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestExtractUserIDFromString(t *testing.T) {
	id, err := ExtractUserID(jwt.MapClaims{"id": "17"})

	assert.NoError(t, err)
	assert.Equal(t, uint(17), id)
}

func TestExtractUserIDMissing(t *testing.T) {
	_, err := ExtractUserID(jwt.MapClaims{})
	assert.Error(t, err)
}

func TestExtractUserIDBadString(t *testing.T) {
	_, err := ExtractUserID(jwt.MapClaims{"id": "not-a-number"})
	assert.Error(t, err)
}

func TestExtractRoleFromString(t *testing.T) {
	role, err := ExtractRole(jwt.MapClaims{"role": "provider"})

	assert.NoError(t, err)
	assert.Equal(t, "provider", role)
}

func TestExtractRoleFromObject(t *testing.T) {
	role, err := ExtractRole(jwt.MapClaims{"role": map[string]interface{}{"name": "admin"}})

	assert.NoError(t, err)
	assert.Equal(t, "admin", role)
}

func TestExtractRoleMissing(t *testing.T) {
	_, err := ExtractRole(jwt.MapClaims{})
	assert.Error(t, err)
}
