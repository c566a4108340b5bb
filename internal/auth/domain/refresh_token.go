package domain

import "time"

// RefreshToken is one link of a session's rotation chain. ParentID is nil only
// for the chain root created at login. RotatedAt and RevokedAt are one-way:
// once set they are never cleared.
type RefreshToken struct {
	ID            string
	SessionID     string
	ParentID      *string
	TokenHash     string
	IssuedAt      time.Time
	ExpiresAt     time.Time
	RotatedAt     *time.Time
	RevokedAt     *time.Time
	RevokedReason *string
	DeletedAt     *time.Time
}

// Active reports whether this is the current token of its chain. Expiry is
// checked separately so that an expired-but-current token is not mistaken for
// a replayed one.
func (rt *RefreshToken) Active() bool {
	return rt.RotatedAt == nil && rt.RevokedAt == nil && rt.DeletedAt == nil
}

func (rt *RefreshToken) Expired(now time.Time) bool {
	return !rt.ExpiresAt.After(now)
}

// Status renders the chain state for read surfaces.
func (rt *RefreshToken) Status() string {
	switch {
	case rt.RevokedAt != nil:
		return "revoked"
	case rt.RotatedAt != nil:
		return "rotated"
	default:
		return "active"
	}
}
