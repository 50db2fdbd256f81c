package controllers

import (
	"net/http"

	"github.com/ValeRico287/GateG/database"
	"github.com/ValeRico287/GateG/models"
	"github.com/ValeRico287/GateG/utils"
)

// GET /api/levels
//
// Read-only threshold table. Employee levels are stored fields; nothing here
// recomputes them from point totals.
func LevelListHandler(w http.ResponseWriter, r *http.Request) {
	db := database.DB

	var levels []models.GamificationLevel
	if err := db.Order("level ASC").Find(&levels).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, levels)
}
