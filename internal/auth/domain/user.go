package domain

import "time"

type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Status        string
	EmailVerified bool
	RoleName      string
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type LoginAttempt struct {
	ID            string
	UserID        *string
	Email         string
	IPAddress     string
	UserAgent     *string
	Successful    bool
	FailureReason *string
	AttemptTime   time.Time
}
