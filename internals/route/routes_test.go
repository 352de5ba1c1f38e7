package routes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soundwave_backend/internals/constants"
	cartController "soundwave_backend/internals/features/carts/controller"
	cartService "soundwave_backend/internals/features/carts/service"
	classController "soundwave_backend/internals/features/classes/controller"
	instructorController "soundwave_backend/internals/features/instructors/controller"
	paymentController "soundwave_backend/internals/features/payments/controller"
	authController "soundwave_backend/internals/features/users/auth/controller"
	authService "soundwave_backend/internals/features/users/auth/service"
	userController "soundwave_backend/internals/features/users/users/controller"
	authMiddleware "soundwave_backend/internals/middlewares/auth"
)

type staticRoles map[string]string

func (s staticRoles) RoleOf(_ context.Context, email string) (string, error) {
	return s[email], nil
}

type stubHealth struct{ err error }

func (s stubHealth) Ping(*fiber.Ctx) error { return s.err }

var testRoles = staticRoles{
	"admin@example.com":      constants.RoleAdmin,
	"instructor@example.com": constants.RoleInstructor,
	"student@example.com":    constants.RoleNone,
}

// newTestApp mounts the real route table. Services behind role-gated
// handlers are nil: a request that reaches them would panic, so a passing
// gate test also proves the handler was never called.
func newTestApp(t *testing.T, health HealthChecker) (*fiber.App, *authService.TokenService) {
	t.Helper()
	tokens := authService.NewTokenService("test-secret")
	h := Handlers{
		Gate:        authMiddleware.NewGate(tokens, testRoles),
		Health:      health,
		Auth:        authController.NewAuthController(tokens, testRoles, nil),
		Users:       userController.NewUserController(nil),
		Classes:     classController.NewClassController(nil),
		Carts:       cartController.NewCartController(cartService.NewCartService(nil, nil)),
		Instructors: instructorController.NewInstructorController(nil),
		Payments:    paymentController.NewPaymentController(nil),
	}
	app := fiber.New()
	Mount(app, h)
	return app, tokens
}

func tokenFor(t *testing.T, tokens *authService.TokenService, email string) string {
	t.Helper()
	raw, _, err := tokens.Issue(authService.Identity{Email: email, Role: testRoles[email]})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return raw
}

func send(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestMutationsAreGated(t *testing.T) {
	app, tokens := newTestApp(t, stubHealth{})
	student := tokenFor(t, tokens, "student@example.com")
	instructor := tokenFor(t, tokens, "instructor@example.com")
	id := uuid.NewString()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"list users anonymous", http.MethodGet, "/users", "", fiber.StatusUnauthorized},
		{"list users as student", http.MethodGet, "/users", student, fiber.StatusForbidden},
		{"make instructor anonymous", http.MethodPut, "/users/instructors/" + id, "", fiber.StatusUnauthorized},
		{"make instructor as instructor", http.MethodPut, "/users/instructors/" + id, instructor, fiber.StatusForbidden},
		{"make admin as student", http.MethodPatch, "/users/admin/" + id, student, fiber.StatusForbidden},
		{"check admin anonymous", http.MethodGet, "/users/admin/student@example.com", "", fiber.StatusUnauthorized},
		{"create class anonymous", http.MethodPost, "/classes", "", fiber.StatusUnauthorized},
		{"create class as student", http.MethodPost, "/classes", student, fiber.StatusForbidden},
		{"my classes as student", http.MethodGet, "/classes/mine", student, fiber.StatusForbidden},
		{"approve class as instructor", http.MethodPut, "/classes/approved/" + id, instructor, fiber.StatusForbidden},
		{"deny class anonymous", http.MethodPut, "/classes/denied/" + id, "", fiber.StatusUnauthorized},
		{"cart anonymous", http.MethodGet, "/carts", "", fiber.StatusUnauthorized},
		{"add to cart anonymous", http.MethodPost, "/carts", "", fiber.StatusUnauthorized},
		{"remove from cart anonymous", http.MethodDelete, "/carts/" + id, "", fiber.StatusUnauthorized},
		{"payment intent anonymous", http.MethodPost, "/create-payment-intent", "", fiber.StatusUnauthorized},
		{"settle anonymous", http.MethodPost, "/payments", "", fiber.StatusUnauthorized},
		{"list payments as instructor", http.MethodGet, "/payments", instructor, fiber.StatusForbidden},
		{"payment history anonymous", http.MethodGet, "/payments/history", "", fiber.StatusUnauthorized},
		{"forged token", http.MethodGet, "/users", "x.y.z", fiber.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := send(t, app, tc.method, tc.path, tc.token, "")
			if resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}

func TestCartSelfCheck(t *testing.T) {
	app, tokens := newTestApp(t, stubHealth{})
	student := tokenFor(t, tokens, "student@example.com")

	resp := send(t, app, http.MethodGet, "/carts", student, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 without email, got %d", resp.StatusCode)
	}
	var body struct {
		Data  []any `json:"data"`
		Count int   `json:"count"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := sonic.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data == nil || len(body.Data) != 0 || body.Count != 0 {
		t.Fatalf("expected empty cart, got %s", raw)
	}

	resp = send(t, app, http.MethodGet, "/carts?email=admin@example.com", student, "")
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for someone else's cart, got %d", resp.StatusCode)
	}
}

func TestIssueTokenEndpoint(t *testing.T) {
	app, tokens := newTestApp(t, stubHealth{})

	resp := send(t, app, http.MethodPost, "/jwt", "", `{"email":"Instructor@Example.com"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Data struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := sonic.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id, err := tokens.Verify(body.Data.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if id.Email != "instructor@example.com" || body.Data.Role != constants.RoleInstructor {
		t.Fatalf("unexpected identity %+v (role %q)", id, body.Data.Role)
	}

	for _, payload := range []string{`{}`, `{"email":"not-an-email"}`, `{"id_token":"abc"}`} {
		resp := send(t, app, http.MethodPost, "/jwt", "", payload)
		if resp.StatusCode < 400 || resp.StatusCode >= 500 {
			t.Fatalf("payload %s: expected client error, got %d", payload, resp.StatusCode)
		}
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"db up", nil, fiber.StatusOK},
		{"db down", errors.New("connection refused"), fiber.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, _ := newTestApp(t, stubHealth{err: tc.err})
			if resp := send(t, app, http.MethodGet, "/health", "", ""); resp.StatusCode != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, resp.StatusCode)
			}
		})
	}
}
