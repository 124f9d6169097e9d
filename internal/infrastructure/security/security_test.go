package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken(42, "admin", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)

	id, ok := AdminIDFromClaims(claims)
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "admin_auth", claims["type"])
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAdminToken(1, "admin", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateAdminToken(1, "admin", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pearl2024")
	require.NoError(t, err)
	assert.NotEqual(t, "pearl2024", hash)

	assert.True(t, CheckPassword(hash, "pearl2024"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestGenerateVisitorID(t *testing.T) {
	id := GenerateVisitorID()
	assert.True(t, strings.HasPrefix(id, "v_"))
	assert.Equal(t, strings.ToLower(id), id)
	assert.NotEqual(t, id, GenerateVisitorID())
}

func TestGenerateUploadFilename(t *testing.T) {
	name := GenerateUploadFilename("", "JPEG")
	assert.True(t, strings.HasSuffix(name, ".jpg"), "jpeg normalizes to jpg, got %s", name)
	assert.NotContains(t, name, "-")

	withPrefix := GenerateUploadFilename("gallery", ".png")
	assert.True(t, strings.HasPrefix(withPrefix, "gallery_"))
	assert.True(t, strings.HasSuffix(withPrefix, ".png"))

	assert.NotEqual(t, GenerateUploadFilename("", "jpg"), GenerateUploadFilename("", "jpg"))
}
