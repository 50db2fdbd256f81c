package utils

import (
	"strings"
	"testing"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken(7, "EMP007", "Empleado")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if got := ClaimUint(claims, "employeeId"); got != 7 {
		t.Fatalf("employeeId = %d, want 7", got)
	}
	if code, _ := claims["employeeCode"].(string); code != "EMP007" {
		t.Fatalf("employeeCode = %q, want EMP007", code)
	}
	if role, _ := claims["role"].(string); role != "Empleado" {
		t.Fatalf("role = %q, want Empleado", role)
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatal("expected a non-empty jti claim")
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateAccessToken(1, "EMP001", "Empleado")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := ValidateAccessToken(token); err == nil {
		t.Fatal("expected validation failure with a different secret")
	}
}

func TestValidateAccessToken_Tampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateAccessToken(1, "EMP001", "Empleado")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := ValidateAccessToken(tampered); err == nil {
		t.Fatal("expected validation failure for tampered signature")
	}
}

func TestClaimUint_StringNumber(t *testing.T) {
	claims := map[string]interface{}{"employeeId": "42"}
	if got := ClaimUint(claims, "employeeId"); got != 42 {
		t.Fatalf("ClaimUint = %d, want 42", got)
	}
}
