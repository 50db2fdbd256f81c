package models

import "time"

type Team struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	SupervisorID *uint     `gorm:"column:supervisor_id" json:"supervisor_id"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (Team) TableName() string {
	return "teams"
}
