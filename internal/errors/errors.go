package errors

import (
	"errors"
)

var (
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrTokenReuseDetected   = errors.New("refresh token reuse detected")
	ErrTokenNoLongerActive  = errors.New("refresh token no longer active")
	ErrSessionNotFound      = errors.New("session not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrTodoNotFound         = errors.New("todo not found")
	ErrFlagNotFound         = errors.New("feature flag not found")
	ErrFlagKeyTaken         = errors.New("feature flag key already in use")
)

// Unauthorized groups every credential/token failure that must surface to the
// caller as the same generic 401, with no hint of which check failed.
func Unauthorized(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrRefreshTokenNotFound) ||
		errors.Is(err, ErrRefreshTokenExpired) ||
		errors.Is(err, ErrTokenReuseDetected) ||
		errors.Is(err, ErrTokenNoLongerActive) ||
		errors.Is(err, ErrSessionNotFound)
}
