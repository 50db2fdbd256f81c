package auth

import (
	"errors"
	"net/http"

	"github.com/ValeRico287/GateG/database"
	"github.com/ValeRico287/GateG/middleware"
	"github.com/ValeRico287/GateG/models"
	"github.com/ValeRico287/GateG/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	EmployeeCode string `json:"employee_code" validate:"required,empcode"`
	Pin          string `json:"pin" validate:"required,pin"`
}

// POST /api/auth/login
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB

	var employee models.Employee
	err := db.Where("employee_code = ? AND is_active = ?", req.EmployeeCode, true).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusUnauthorized, "Credenciales inválidas")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	if locked, retry := middleware.IsAccountLocked(employee.ID); locked {
		utils.WriteJSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"error":               "Demasiados intentos fallidos. Inténtalo más tarde.",
			"retry_after_seconds": int(retry.Seconds()),
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PinHash), []byte(req.Pin)); err != nil {
		middleware.RecordFailedLogin(employee.ID)
		utils.WriteError(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	middleware.ResetFailedLogin(employee.ID)

	token, err := utils.GenerateAccessToken(employee.ID, employee.EmployeeCode, employee.Role)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"employee": map[string]interface{}{
			"id":            employee.ID,
			"employee_code": employee.EmployeeCode,
			"first_name":    employee.FirstName,
			"last_name":     employee.LastName,
			"role":          employee.Role,
			"team_id":       employee.TeamID,
			"points":        employee.Points,
			"level":         employee.Level,
		},
	})
}
