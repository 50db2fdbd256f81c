package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/ValeRico287/GateG/utils"
)

// POST /api/auth/logout
//
// Revokes the access token's jti so the token stops validating before its
// natural expiry. Runs behind AuthMiddleware, so the header has already been
// validated once; parsing it again here is how we get at the jti and exp.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

	claims, err := utils.ValidateAccessToken(tokenStr)
	if err != nil {
		utils.WriteError(w, http.StatusForbidden, "Token inválido")
		return
	}

	jti, _ := claims["jti"].(string)
	if jti != "" {
		var ttl time.Duration
		if expRaw, ok := claims["exp"].(float64); ok {
			ttl = time.Until(time.Unix(int64(expRaw), 0))
		}
		if ttl < 0 {
			ttl = 0
		}
		if err := utils.RevokeJTI(jti, ttl); err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
			return
		}
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Sesión cerrada exitosamente",
	})
}
