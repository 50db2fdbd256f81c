package models

import "time"

type Badge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	IconURL     string    `gorm:"column:icon_url;size:255" json:"icon_url"`
	Criteria    string    `gorm:"type:json" json:"criteria"`
	CreatedAt   time.Time `json:"-"`
}

func (Badge) TableName() string {
	return "badges"
}
