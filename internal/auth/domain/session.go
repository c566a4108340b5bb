package domain

import "time"

// Session is one authenticated login context. It is never hard-deleted; it
// leaves service by revocation or soft delete only.
type Session struct {
	ID            string
	UserID        string
	IPAddress     string
	UserAgent     *string
	IssuedAt      time.Time
	ExpiresAt     time.Time
	RevokedAt     *time.Time
	RevokedReason *string
	DeletedAt     *time.Time
}

// Active reports whether the session can still back token refreshes.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && s.DeletedAt == nil && s.ExpiresAt.After(now)
}

// SessionRevocation is the audit companion to a revoked session. At most one
// exists per session; re-revoking must not replace it.
type SessionRevocation struct {
	ID        string
	SessionID string
	RevokedAt time.Time
	RevokedBy string
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
