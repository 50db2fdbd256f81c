package models

import "time"

// Work log lifecycle states. Status strings match the stored enum values.
const (
	WorkLogActive    = "activo"
	WorkLogCompleted = "completado"
	WorkLogCancelled = "cancelado"
)

type WorkLog struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	EmployeeID       uint       `gorm:"index;not null" json:"employee_id"`
	TaskDefinitionID uint       `gorm:"index;not null" json:"task_definition_id"`
	Status           string     `gorm:"type:enum('activo','completado','cancelado');default:'activo'" json:"status"`
	StartTime        time.Time  `gorm:"not null" json:"start_time"`
	EndTime          *time.Time `gorm:"column:end_time" json:"end_time"`
	DurationSeconds  *int64     `gorm:"column:duration_seconds" json:"duration_seconds"`
	PointsEarned     float64    `gorm:"type:decimal(10,2);default:0" json:"points_earned"`
}

func (WorkLog) TableName() string {
	return "work_logs"
}
