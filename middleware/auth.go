package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ValeRico287/GateG/models"
	"github.com/ValeRico287/GateG/utils"
)

// AuthMiddleware requires a valid bearer token. A missing header is 401, an
// invalid, expired or revoked token is 403. Claims land in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			utils.WriteError(w, http.StatusUnauthorized, "Token de acceso requerido")
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		claims, err := utils.ValidateAccessToken(tokenStr)
		if err != nil {
			utils.WriteError(w, http.StatusForbidden, "Token inválido")
			return
		}

		employeeID := utils.ClaimUint(claims, "employeeId")
		var employeeCode, role string
		if s, ok := claims["employeeCode"].(string); ok {
			employeeCode = s
		}
		if s, ok := claims["role"].(string); ok {
			role = s
		}

		ctx := context.WithValue(r.Context(), utils.EmployeeIDKey, employeeID)
		ctx = context.WithValue(ctx, utils.EmployeeCodeKey, employeeCode)
		ctx = context.WithValue(ctx, utils.EmployeeRoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SupervisorAuthMiddleware gates the admin task registry. The role claim is
// trusted as issued; a downgraded employee keeps admin access until the token
// expires.
func SupervisorAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(utils.EmployeeRoleKey).(string)
		if !models.IsSupervisorRole(role) {
			utils.WriteError(w, http.StatusForbidden, "No tienes permisos para acceder a esta función")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetEmployeeID reads the authenticated employee id from the request context.
func GetEmployeeID(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(utils.EmployeeIDKey).(uint)
	return id, ok
}

// GetEmployeeRole reads the token role from the request context.
func GetEmployeeRole(r *http.Request) string {
	role, _ := r.Context().Value(utils.EmployeeRoleKey).(string)
	return role
}
