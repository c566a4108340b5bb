package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taskforge/todo-service/internal/auth/service"
	"github.com/taskforge/todo-service/pkg/constant"
)

func newTokenService() *service.TokenService {
	return service.NewTokenService("access-secret", "refresh-secret", 60, 10080, 43200)
}

func TestTokenService_Generate_Success(t *testing.T) {
	ts := newTokenService()

	pair, err := ts.Generate("user-1", constant.RoleTodoUser, "session-1", false)

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))
}

func TestTokenService_Generate_UnknownRole(t *testing.T) {
	ts := newTokenService()

	pair, err := ts.Generate("user-1", "superuser", "session-1", false)

	assert.Error(t, err)
	assert.Nil(t, pair)
}

func TestTokenService_Generate_StayLoggedInExtendsRefreshExpiry(t *testing.T) {
	ts := newTokenService()

	short, err := ts.Generate("user-1", constant.RoleTodoUser, "session-1", false)
	assert.NoError(t, err)

	long, err := ts.Generate("user-1", constant.RoleTodoUser, "session-2", true)
	assert.NoError(t, err)

	assert.True(t, long.RefreshExpiresAt.After(short.RefreshExpiresAt))
}

func TestTokenService_Generate_RefreshTokensAreUnique(t *testing.T) {
	ts := newTokenService()

	first, err := ts.Generate("user-1", constant.RoleTodoUser, "session-1", false)
	assert.NoError(t, err)

	second, err := ts.Generate("user-1", constant.RoleTodoUser, "session-1", false)
	assert.NoError(t, err)

	// Same user, same session, back to back: the strings must still differ
	// because the stored hash identifies exactly one chain link.
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestTokenService_VerifyAccessToken_RoundTrip(t *testing.T) {
	ts := newTokenService()

	pair, err := ts.Generate("user-1", constant.RoleSystemAdmin, "session-1", false)
	assert.NoError(t, err)

	claims, err := ts.VerifyAccessToken(pair.AccessToken)

	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, constant.RoleSystemAdmin, claims.Role)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestTokenService_VerifyAccessToken_WrongSecret(t *testing.T) {
	ts := newTokenService()
	other := service.NewTokenService("different-secret", "refresh-secret", 60, 10080, 43200)

	pair, err := ts.Generate("user-1", constant.RoleTodoUser, "session-1", false)
	assert.NoError(t, err)

	claims, err := other.VerifyAccessToken(pair.AccessToken)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyAccessToken_RejectsRefreshToken(t *testing.T) {
	ts := newTokenService()

	pair, err := ts.Generate("user-1", constant.RoleTodoUser, "session-1", false)
	assert.NoError(t, err)

	claims, err := ts.VerifyAccessToken(pair.RefreshToken)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestTokenService_VerifyAccessToken_Expired(t *testing.T) {
	ts := newTokenService()

	claims := service.JWTCustomClaims{
		UserID:    "user-1",
		Role:      constant.RoleTodoUser,
		SessionID: "session-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	assert.NoError(t, err)

	parsed, err := ts.VerifyAccessToken(expired)

	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestTokenService_RefreshTokenTTL(t *testing.T) {
	ts := newTokenService()

	assert.Equal(t, 10080*time.Minute, ts.RefreshTokenTTL(false))
	assert.Equal(t, 43200*time.Minute, ts.RefreshTokenTTL(true))
	assert.Equal(t, 60*time.Minute, ts.AccessTokenTTL())
}
