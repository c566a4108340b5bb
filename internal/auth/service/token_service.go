package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/taskforge/todo-service/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskforge/todo-service/pkg/constant"
)

type TokenGenerator interface {
	Generate(userID, role, sessionID string, stayLoggedIn bool) (*TokenPair, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
	AccessTokenTTL() time.Duration
	RefreshTokenTTL(stayLoggedIn bool) time.Duration
}

// TokenPair bundles the signed tokens with their expiries. The refresh token
// string is the correlation key for the stored chain record; its signature is
// only a secondary integrity check.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
}

type TokenService struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	StaySignedInExpiry time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessMinutes, refreshMinutes, stayMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret:  accessSecret,
		RefreshTokenSecret: refreshSecret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
		StaySignedInExpiry: time.Duration(stayMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(userID, role, sessionID string, stayLoggedIn bool) (*TokenPair, error) {
	if !constant.ValidRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	now := time.Now()
	accessExpiry := now.Add(ts.AccessTokenExpiry)
	refreshExpiry := now.Add(ts.RefreshTokenTTL(stayLoggedIn))

	accessClaims := JWTCustomClaims{
		UserID:    userID,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	refreshClaims := JWTCustomClaims{
		UserID:    userID,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
			IssuedAt:  jwt.NewNumericDate(now),
			// jti keeps every issued refresh token string unique, so the
			// stored hash can be the chain's correlation key.
			ID: uuid.NewString(),
		},
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(ts.AccessTokenSecret))
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		refreshClaims).SignedString([]byte(ts.RefreshTokenSecret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExpiry,
		RefreshExpiresAt: refreshExpiry,
	}, nil
}

func (ts *TokenService) AccessTokenTTL() time.Duration {
	return ts.AccessTokenExpiry
}

func (ts *TokenService) RefreshTokenTTL(stayLoggedIn bool) time.Duration {
	if stayLoggedIn {
		return ts.StaySignedInExpiry
	}
	return ts.RefreshTokenExpiry
}

// VerifyAccessToken parses and validates the given access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AccessTokenSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
