package controllers

import (
	"net/http"

	"github.com/ValeRico287/GateG/database"
	"github.com/ValeRico287/GateG/models"
	"github.com/ValeRico287/GateG/utils"
)

// GET /api/badges
func BadgeListHandler(w http.ResponseWriter, r *http.Request) {
	db := database.DB

	var badges []models.Badge
	if err := db.Order("id ASC").Find(&badges).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	utils.WriteJSON(w, http.StatusOK, badges)
}
