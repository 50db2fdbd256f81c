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

// GET /api/tasks
//
// Lists the task definitions visible to the caller: those scoped to the
// caller's team plus global ones (team_id IS NULL).
func TaskListHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetEmployeeID(r)
	if !ok || uid == 0 {
		utils.WriteError(w, http.StatusUnauthorized, "Token de acceso requerido")
		return
	}

	db := database.DB

	var employee models.Employee
	if err := db.Select("team_id").First(&employee, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Empleado no encontrado")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	var tasks []models.TaskDefinition
	query := db.Order("id ASC")
	if employee.TeamID != nil {
		query = query.Where("team_id = ? OR team_id IS NULL", *employee.TeamID)
	} else {
		query = query.Where("team_id IS NULL")
	}
	if err := query.Find(&tasks).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, tasks)
}
