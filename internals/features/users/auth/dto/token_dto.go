package dto

import (
	"strings"
	"time"
)

// IssueTokenRequest carries either a plain email or a Google ID token.
type IssueTokenRequest struct {
	Email   string `json:"email" validate:"omitempty,email"`
	IDToken string `json:"id_token"`
}

func (r *IssueTokenRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.IDToken = strings.TrimSpace(r.IDToken)
}

type IssueTokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
