package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ValeRico287/GateG/utils"
)

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	next, called := okHandler()
	req := httptest.NewRequest("GET", "http://example.local/api/tasks", nil)
	rec := httptest.NewRecorder()

	AuthMiddleware(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if *called {
		t.Fatal("next handler should not run without a token")
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	next, called := okHandler()
	req := httptest.NewRequest("GET", "http://example.local/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	AuthMiddleware(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if *called {
		t.Fatal("next handler should not run with an invalid token")
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateAccessToken(3, "EMP003", "Empleado")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	var gotID uint
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetEmployeeID(r)
		gotRole = GetEmployeeRole(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "http://example.local/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != 3 {
		t.Fatalf("employee id in context = %d, want 3", gotID)
	}
	if gotRole != "Empleado" {
		t.Fatalf("role in context = %q, want Empleado", gotRole)
	}
}

func TestSupervisorAuthMiddleware_RoleGate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cases := []struct {
		role string
		want int
	}{
		{"Empleado", http.StatusForbidden},
		{"Supervisor", http.StatusOK},
		{"Administrador", http.StatusOK},
	}
	for _, tc := range cases {
		token, err := utils.GenerateAccessToken(1, "X001", tc.role)
		if err != nil {
			t.Fatalf("GenerateAccessToken(%s): %v", tc.role, err)
		}
		next, _ := okHandler()
		req := httptest.NewRequest("GET", "http://example.local/api/admin/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		AuthMiddleware(SupervisorAuthMiddleware(next)).ServeHTTP(rec, req)

		if rec.Code != tc.want {
			t.Fatalf("role %s: expected %d, got %d", tc.role, tc.want, rec.Code)
		}
	}
}
