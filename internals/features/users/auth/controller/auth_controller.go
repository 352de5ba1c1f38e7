package controller

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"soundwave_backend/internals/features/users/auth/dto"
	authService "soundwave_backend/internals/features/users/auth/service"
	helper "soundwave_backend/internals/helpers"
)

// RoleLookup resolves the persisted role embedded into new tokens.
type RoleLookup interface {
	RoleOf(ctx context.Context, email string) (string, error)
}

type AuthController struct {
	Tokens   *authService.TokenService
	Roles    RoleLookup
	Google   authService.GoogleVerifier
	validate *validator.Validate
}

func NewAuthController(tokens *authService.TokenService, roles RoleLookup, google authService.GoogleVerifier) *AuthController {
	return &AuthController{
		Tokens:   tokens,
		Roles:    roles,
		Google:   google,
		validate: validator.New(),
	}
}

// POST /jwt
func (ac *AuthController) IssueToken(c *fiber.Ctx) error {
	var req dto.IssueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if req.Email == "" && req.IDToken == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email or id_token is required")
	}
	if err := ac.validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := req.Email
	if req.IDToken != "" {
		if ac.Google == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Google sign-in is not configured")
		}
		verified, err := ac.Google.EmailFromIDToken(req.IDToken)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		email = verified
	}

	role, err := ac.Roles.RoleOf(c.UserContext(), email)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	token, exp, err := ac.Tokens.Issue(authService.Identity{Email: email, Role: role})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	log.Printf("[INFO] token issued for %s (role=%s)", email, role)

	return helper.JsonOK(c, "Token issued", dto.IssueTokenResponse{
		Token:     token,
		TokenType: "Bearer",
		Email:     email,
		Role:      role,
		ExpiresAt: exp,
	})
}
