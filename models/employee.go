package models

import "time"

// Role values stored on employees and embedded in access tokens.
const (
	RoleEmployee      = "Empleado"
	RoleSupervisor    = "Supervisor"
	RoleAdministrator = "Administrador"
)

type Employee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EmployeeCode string    `gorm:"size:20;uniqueIndex;not null" json:"employee_code"`
	FirstName    string    `gorm:"size:100;not null" json:"first_name"`
	LastName     string    `gorm:"size:100;not null" json:"last_name"`
	PinHash      string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"type:enum('Empleado','Supervisor','Administrador');default:'Empleado'" json:"role"`
	TeamID       *uint     `gorm:"column:team_id" json:"team_id"`
	Points       float64   `gorm:"type:decimal(12,2);default:0" json:"points"`
	Level        uint      `gorm:"default:1" json:"level"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}

// IsSupervisorRole reports whether the role may use the admin task registry.
func IsSupervisorRole(role string) bool {
	return role == RoleSupervisor || role == RoleAdministrator
}
