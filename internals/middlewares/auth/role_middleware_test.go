package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"

	"soundwave_backend/internals/constants"
	authService "soundwave_backend/internals/features/users/auth/service"
)

type memRoles struct {
	mu    sync.Mutex
	roles map[string]string
	err   error
}

func (m *memRoles) RoleOf(_ context.Context, email string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	return m.roles[email], nil
}

func (m *memRoles) set(email, role string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[email] = role
}

func newGateApp(gate Gate) *fiber.App {
	app := fiber.New()
	app.Get("/admin-only", append(gate.Role(constants.RoleAdmin, "admin area"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})...)
	app.Get("/me", gate.Authenticated(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp.StatusCode
}

func TestRequireRoleUsesCurrentRole(t *testing.T) {
	tokens := authService.NewTokenService("secret")
	roles := &memRoles{roles: map[string]string{"boss@example.com": constants.RoleAdmin}}
	app := newGateApp(NewGate(tokens, roles))

	// token carries the admin role at issuance time
	raw, _, err := tokens.Issue(authService.Identity{Email: "boss@example.com", Role: constants.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if got := doGet(t, app, "/admin-only", raw); got != fiber.StatusOK {
		t.Fatalf("expected 200 before downgrade, got %d", got)
	}

	roles.set("boss@example.com", constants.RoleNone)
	if got := doGet(t, app, "/admin-only", raw); got != fiber.StatusForbidden {
		t.Fatalf("expected 403 with stale token, got %d", got)
	}

	// plain authentication is unaffected by the downgrade
	if got := doGet(t, app, "/me", raw); got != fiber.StatusOK {
		t.Fatalf("expected 200 on authenticated route, got %d", got)
	}
}

func TestRequireRoleIgnoresTokenRole(t *testing.T) {
	tokens := authService.NewTokenService("secret")
	roles := &memRoles{roles: map[string]string{}}
	app := newGateApp(NewGate(tokens, roles))

	// claims say admin, the store does not know the user
	raw, _, err := tokens.Issue(authService.Identity{Email: "mallory@example.com", Role: constants.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if got := doGet(t, app, "/admin-only", raw); got != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", got)
	}
}

func TestGateStatusCodes(t *testing.T) {
	tokens := authService.NewTokenService("secret")
	valid, _, err := tokens.Issue(authService.Identity{Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		token    string
		storeErr error
		want     int
	}{
		{"no token on role route", "/admin-only", "", nil, fiber.StatusUnauthorized},
		{"garbage token", "/admin-only", "abc.def.ghi", nil, fiber.StatusUnauthorized},
		{"no token on auth route", "/me", "", nil, fiber.StatusUnauthorized},
		{"role lookup fails", "/admin-only", valid, errors.New("db down"), fiber.StatusInternalServerError},
		{"wrong role", "/admin-only", valid, nil, fiber.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			roles := &memRoles{roles: map[string]string{"ana@example.com": constants.RoleInstructor}, err: tc.storeErr}
			app := newGateApp(NewGate(tokens, roles))
			if got := doGet(t, app, tc.path, tc.token); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
