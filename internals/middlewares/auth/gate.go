package auth

import "github.com/gofiber/fiber/v2"

// Gate bundles the token verifier and role store so route tables can declare
// the guard of every endpoint in one place.
type Gate struct {
	Tokens TokenVerifier
	Roles  RoleStore
}

func NewGate(tokens TokenVerifier, roles RoleStore) Gate {
	return Gate{Tokens: tokens, Roles: roles}
}

// Authenticated requires a valid bearer token.
func (g Gate) Authenticated() fiber.Handler {
	return AuthJWT(g.Tokens)
}

// Role requires a valid token and the given persisted role.
func (g Gate) Role(role, feature string) []fiber.Handler {
	return []fiber.Handler{AuthJWT(g.Tokens), RequireRole(g.Roles, role, feature)}
}
