package employees

import (
	"errors"
	"net/http"

	"github.com/ValeRico287/GateG/database"
	"github.com/ValeRico287/GateG/middleware"
	"github.com/ValeRico287/GateG/models"
	"github.com/ValeRico287/GateG/utils"

	"gorm.io/gorm"
)

// GET /api/employee/profile
func ProfileHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetEmployeeID(r)
	if !ok || uid == 0 {
		utils.WriteError(w, http.StatusUnauthorized, "Token de acceso requerido")
		return
	}

	db := database.DB

	var row struct {
		models.Employee
		TeamName *string `gorm:"column:team_name"`
	}
	err := db.Table("employees AS e").
		Select("e.*, t.name AS team_name").
		Joins("LEFT JOIN teams t ON e.team_id = t.id").
		Where("e.id = ?", uid).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Empleado no encontrado")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"id":            row.ID,
		"employee_code": row.EmployeeCode,
		"first_name":    row.FirstName,
		"last_name":     row.LastName,
		"role":          row.Role,
		"team_id":       row.TeamID,
		"team_name":     row.TeamName,
		"points":        row.Points,
		"level":         row.Level,
		"is_active":     row.IsActive,
	})
}
