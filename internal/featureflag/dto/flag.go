package dto

import "time"

type CreateFlagInput struct {
	Key         string `json:"key" validate:"required,max=120"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

type UpdateFlagInput struct {
	Enabled     *bool   `json:"enabled"`
	Description *string `json:"description"`
}

type FlagOutput struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Enabled     bool      `json:"enabled"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EvaluationOutput struct {
	Key     string `json:"key"`
	Enabled bool   `json:"enabled"`
}
