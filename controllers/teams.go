package controllers

import (
	"net/http"

	"github.com/ValeRico287/GateG/database"
	"github.com/ValeRico287/GateG/models"
	"github.com/ValeRico287/GateG/utils"
)

// GET /api/teams
func TeamListHandler(w http.ResponseWriter, r *http.Request) {
	db := database.DB

	var teams []models.Team
	if err := db.Order("name ASC").Find(&teams).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, teams)
}
