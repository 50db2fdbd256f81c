package worklogs

import (
	"errors"
	"net/http"
	"time"

	"github.com/ValeRico287/GateG/database"
	"github.com/ValeRico287/GateG/middleware"
	"github.com/ValeRico287/GateG/models"
	"github.com/ValeRico287/GateG/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StartRequest struct {
	TaskDefinitionID uint `json:"task_definition_id"`
}

type CompleteRequest struct {
	WorkLogID uint `json:"work_log_id"`
}

var errActiveTaskExists = errors.New("active task exists")

// POST /api/work-logs/start
//
// An employee holds at most one active work log. The check and the insert run
// inside one transaction with the employee's active rows locked, so two
// devices starting at once cannot both get an active row.
func StartHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetEmployeeID(r)
	if !ok || uid == 0 {
		utils.WriteError(w, http.StatusUnauthorized, "Token de acceso requerido")
		return
	}

	var req StartRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.TaskDefinitionID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "task_definition_id es requerido")
		return
	}

	db := database.DB

	var created models.WorkLog
	err := db.Transaction(func(tx *gorm.DB) error {
		var active []models.WorkLog
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("employee_id = ? AND status = ?", uid, models.WorkLogActive).
			Find(&active).Error; err != nil {
			return err
		}
		if len(active) > 0 {
			return errActiveTaskExists
		}
		created = models.WorkLog{
			EmployeeID:       uid,
			TaskDefinitionID: req.TaskDefinitionID,
			Status:           models.WorkLogActive,
			StartTime:        time.Now(),
			PointsEarned:     0,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		if errors.Is(err, errActiveTaskExists) {
			utils.WriteError(w, http.StatusBadRequest, "Ya tienes una tarea activa. Completa la tarea actual antes de iniciar una nueva.")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	// Return the created row joined with the task's name and description.
	var row struct {
		models.WorkLog
		TaskName        string `gorm:"column:task_name" json:"task_name"`
		TaskDescription string `gorm:"column:task_description" json:"task_description"`
	}
	if err := db.Table("work_logs AS wl").
		Select("wl.*, td.name AS task_name, td.description AS task_description").
		Joins("JOIN task_definitions td ON wl.task_definition_id = td.id").
		Where("wl.id = ?", created.ID).
		Take(&row).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"work_log": row,
		"message":  "Tarea iniciada exitosamente",
	})
}

// POST /api/work-logs/complete
//
// Completes the caller's active work log, computes the reward and credits the
// employee's cumulative points in the same transaction. A second complete on
// the same id finds no active row and returns 404.
func CompleteHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetEmployeeID(r)
	if !ok || uid == 0 {
		utils.WriteError(w, http.StatusUnauthorized, "Token de acceso requerido")
		return
	}

	var req CompleteRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	if req.WorkLogID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "work_log_id es requerido")
		return
	}

	db := database.DB

	var pointsEarned float64
	var durationSeconds int64
	err := db.Transaction(func(tx *gorm.DB) error {
		var workLog models.WorkLog
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND employee_id = ? AND status = ?", req.WorkLogID, uid, models.WorkLogActive).
			First(&workLog).Error; err != nil {
			return err
		}

		var task models.TaskDefinition
		if err := tx.First(&task, workLog.TaskDefinitionID).Error; err != nil {
			return err
		}

		endTime := time.Now()
		durationSeconds = DurationSeconds(workLog.StartTime, endTime)
		pointsEarned = PointsEarned(task.PointsBase, task.PointsBonusPerSecondSaved, task.StandardTimeSeconds, durationSeconds)

		if err := tx.Model(&workLog).Updates(map[string]interface{}{
			"status":           models.WorkLogCompleted,
			"end_time":         endTime,
			"duration_seconds": durationSeconds,
			"points_earned":    pointsEarned,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Employee{}).
			Where("id = ?", uid).
			Update("points", gorm.Expr("points + ?", pointsEarned)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusNotFound, "Work log no encontrado o ya completado")
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"points_earned":    pointsEarned,
		"duration_seconds": durationSeconds,
		"message":          "Tarea completada exitosamente",
	})
}
