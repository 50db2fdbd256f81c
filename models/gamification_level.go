package models

type GamificationLevel struct {
	Level          uint   `gorm:"primaryKey;autoIncrement:false" json:"level"`
	PointsRequired int64  `gorm:"not null" json:"points_required"`
	Title          string `gorm:"size:50;not null" json:"title"`
}

func (GamificationLevel) TableName() string {
	return "gamification_levels"
}
