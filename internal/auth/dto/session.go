package dto

import "time"

type SessionOutput struct {
	ID        string     `json:"id"`
	IPAddress string     `json:"ip_address"`
	UserAgent string     `json:"user_agent,omitempty"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
	Active    bool       `json:"active"`
}

type RefreshTokenOutput struct {
	ID        string    `json:"id"`
	ParentID  string    `json:"parent_id,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Status    string    `json:"status"`
}

type SessionDetailOutput struct {
	SessionOutput
	RefreshChain []RefreshTokenOutput `json:"refresh_chain"`
}
