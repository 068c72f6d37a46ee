// File: /controllers/auth_controller_test.go
package controllers_test

import (
	"net/http"
	"testing"

	"carbontrack-api/repositories"
)

func TestRegisterCreatesUserAndToken(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "Secret123",
	}
	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}

	data := decodeData(t, w)
	token, ok := data["token"].(string)
	if !ok || token == "" {
		t.Errorf("register response has no token")
	}
	if userID, ok := data["userId"].(float64); !ok || userID != 1 {
		t.Errorf("userId = %v, want 1", data["userId"])
	}

	user, err := env.users.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user.PasswordHash == "Secret123" {
		t.Errorf("password stored in clear text")
	}

	// The issued token must work against protected routes.
	if w := env.do(t, http.MethodGet, "/api/v1/carbon/records", token, nil); w.Code != http.StatusOK {
		t.Errorf("records with register token: status = %d, want 200", w.Code)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "taken@example.com")

	body := map[string]string{
		"username": "bob",
		"email":    "taken@example.com",
		"password": "Secret123",
	}
	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", body)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"username": "x", "password": "Secret123"}},
		{"bad email", map[string]string{"username": "x", "email": "not-an-email", "password": "Secret123"}},
		{"short password", map[string]string{"username": "x", "email": "x@example.com", "password": "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "login@example.com") // password Secret123

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "Secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if token, ok := data["token"].(string); !ok || token == "" {
		t.Errorf("login response has no token")
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "victim@example.com")

	tests := []struct {
		name  string
		email string
	}{
		{"wrong password", "victim@example.com"},
		{"unknown email", "nobody@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
				"email":    tt.email,
				"password": "WrongPass",
			})
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}

	if _, err := env.users.FindByEmail("nobody@example.com"); err != repositories.ErrNotFound {
		t.Errorf("failed login must not create a user, FindByEmail = %v", err)
	}
}
