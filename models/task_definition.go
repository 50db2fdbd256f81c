package models

import "time"

type TaskDefinition struct {
	ID                        uint      `gorm:"primaryKey" json:"id"`
	Name                      string    `gorm:"size:100;not null" json:"name"`
	Description               string    `gorm:"size:255" json:"description"`
	TeamID                    *uint     `gorm:"column:team_id" json:"team_id"`
	StandardTimeSeconds       int64     `gorm:"not null" json:"standard_time_seconds"`
	PointsBase                float64   `gorm:"type:decimal(10,2);not null" json:"points_base"`
	PointsBonusPerSecondSaved float64   `gorm:"column:points_bonus_per_second_saved;type:decimal(10,2);default:1" json:"points_bonus_per_second_saved"`
	CreatedAt                 time.Time `json:"-"`
	UpdatedAt                 time.Time `json:"-"`
}

func (TaskDefinition) TableName() string {
	return "task_definitions"
}
