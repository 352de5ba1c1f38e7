package service

import (
	"fmt"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"

	helper "soundwave_backend/internals/helpers"
)

// GoogleVerifier resolves a Google ID token to the signed-in email.
type GoogleVerifier interface {
	EmailFromIDToken(idToken string) (string, error)
}

type googleIDTokenVerifier struct {
	clientID string
}

// NewGoogleVerifier returns nil when no client id is configured, which turns
// Google sign-in off.
func NewGoogleVerifier(clientID string) GoogleVerifier {
	if strings.TrimSpace(clientID) == "" {
		return nil
	}
	return &googleIDTokenVerifier{clientID: clientID}
}

func (g *googleIDTokenVerifier) EmailFromIDToken(idToken string) (string, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{g.clientID}); err != nil {
		return "", fmt.Errorf("invalid Google ID token: %w", helper.ErrUnauthorized)
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return "", fmt.Errorf("decode Google ID token: %w", helper.ErrUnauthorized)
	}
	if strings.TrimSpace(claimSet.Email) == "" {
		return "", fmt.Errorf("google ID token has no email: %w", helper.ErrUnauthorized)
	}
	return claimSet.Email, nil
}
