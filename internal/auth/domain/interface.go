package domain

import (
	"context"
	"time"
)

// AuthRepository is the persistence surface for the auth module. Methods that
// touch multiple rows (session create + chain root, rotate, revoke cascade)
// are transactional: either every row changes or none does.
type AuthRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByIDWithRole(ctx context.Context, id string) (*User, error)
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string, at time.Time) error

	RecordLoginAttempt(ctx context.Context, attempt *LoginAttempt) error
	CountRecentFailedAttempts(ctx context.Context, email, ip string, windowMinutes int) (int, error)

	CreateSessionWithRootToken(ctx context.Context, session *Session, root *RefreshToken) error
	GetSessionByID(ctx context.Context, id string) (*Session, error)
	GetLatestActiveSessionByUserID(ctx context.Context, userID string, now time.Time) (*Session, error)
	ListActiveSessionsByUserID(ctx context.Context, userID, excludeSessionID string, now time.Time) ([]Session, error)
	ListSessionsByUserID(ctx context.Context, userID string) ([]Session, error)

	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	// RotateRefreshToken marks the old token rotated and inserts its successor
	// in one transaction. Returns ErrTokenNoLongerActive when the old token was
	// already rotated or revoked by a concurrent caller.
	RotateRefreshToken(ctx context.Context, oldTokenID string, rotatedAt time.Time, next *RefreshToken) error
	ListRefreshTokensBySessionID(ctx context.Context, sessionID string) ([]RefreshToken, error)

	// RevokeSessionCascade revokes the session, upserts its revocation record
	// (keeping any existing one intact) and revokes every still-unrevoked
	// refresh token under it, atomically. Idempotent.
	RevokeSessionCascade(ctx context.Context, rev *SessionRevocation) error
	GetSessionRevocation(ctx context.Context, sessionID string) (*SessionRevocation, error)
	GetLatestRevocationByUserID(ctx context.Context, userID string) (*SessionRevocation, error)
}
