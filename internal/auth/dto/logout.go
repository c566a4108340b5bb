package dto

import "time"

type LogoutInput struct {
	Reason string `json:"reason"`
}

type LogoutOutput struct {
	SessionID string     `json:"session_id"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	RevokedBy string     `json:"revoked_by,omitempty"`
	Reason    string     `json:"reason,omitempty"`
}

type RevokeOthersInput struct {
	IncludeCurrent bool   `json:"include_current"`
	Reason         string `json:"reason"`
}

type ChangePasswordInput struct {
	CurrentPassword     string `json:"current_password" validate:"required"`
	NewPassword         string `json:"new_password" validate:"required,min=8"`
	RevokeOtherSessions bool   `json:"revoke_other_sessions"`
}
