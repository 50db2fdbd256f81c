package admins

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ValeRico287/GateG/database"
	"github.com/ValeRico287/GateG/models"
	"github.com/ValeRico287/GateG/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type TaskRequest struct {
	Name                      string  `json:"name"`
	Description               string  `json:"description"`
	TeamID                    *uint   `json:"team_id"`
	StandardTimeSeconds       int64   `json:"standard_time_seconds"`
	PointsBase                float64 `json:"points_base"`
	PointsBonusPerSecondSaved float64 `json:"points_bonus_per_second_saved"`
}

func (req *TaskRequest) validate() error {
	if req.Name == "" || req.StandardTimeSeconds == 0 || req.PointsBase == 0 {
		return errors.New("Campos requeridos: name, standard_time_seconds, points_base")
	}
	return nil
}

// applyDefaults mirrors the create defaults: empty description, global scope,
// bonus rate 1 when omitted or zero.
func (req *TaskRequest) applyDefaults() {
	if req.PointsBonusPerSecondSaved == 0 {
		req.PointsBonusPerSecondSaved = 1
	}
}

// GET /api/admin/tasks
func TaskListHandler(w http.ResponseWriter, r *http.Request) {
	db := database.DB

	var rows []struct {
		models.TaskDefinition
		TeamName *string `gorm:"column:team_name" json:"team_name"`
	}
	if err := db.Table("task_definitions AS td").
		Select("td.*, t.name AS team_name").
		Joins("LEFT JOIN teams t ON td.team_id = t.id").
		Order("td.name ASC").
		Scan(&rows).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, rows)
}

// POST /api/admin/tasks
func CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.applyDefaults()

	task := models.TaskDefinition{
		Name:                      req.Name,
		Description:               req.Description,
		TeamID:                    req.TeamID,
		StandardTimeSeconds:       req.StandardTimeSeconds,
		PointsBase:                req.PointsBase,
		PointsBonusPerSecondSaved: req.PointsBonusPerSecondSaved,
	}

	db := database.DB
	if err := db.Create(&task).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, task)
}

// PUT /api/admin/tasks/{id}
func UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.applyDefaults()

	db := database.DB

	var task models.TaskDefinition
	if err := db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Tarea no encontrada")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	task.Name = req.Name
	task.Description = req.Description
	task.TeamID = req.TeamID
	task.StandardTimeSeconds = req.StandardTimeSeconds
	task.PointsBase = req.PointsBase
	task.PointsBonusPerSecondSaved = req.PointsBonusPerSecondSaved

	if err := db.Save(&task).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, task)
}

// DELETE /api/admin/tasks/{id}
//
// A definition referenced by any work log cannot be deleted, whatever the
// log's status.
func DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "ID inválido")
		return
	}

	db := database.DB

	var task models.TaskDefinition
	if err := db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Tarea no encontrada")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	var count int64
	if err := db.Model(&models.WorkLog{}).Where("task_definition_id = ?", id).Count(&count).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	if count > 0 {
		utils.WriteError(w, http.StatusBadRequest, "No se puede eliminar la tarea porque tiene registros de trabajo asociados")
		return
	}

	if err := db.Delete(&task).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Tarea eliminada exitosamente",
	})
}

func taskID(r *http.Request) (uint, error) {
	idStr := mux.Vars(r)["id"]
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id64 == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id64), nil
}
