package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedEmployee struct {
	Code      string
	FirstName string
	LastName  string
	Pin       string
	Role      string
	TeamID    interface{} // nil for employees without a team
	Points    float64
	Level     uint
}

var seedEmployees = []seedEmployee{
	{"EMP001", "Ana", "García", "1234", "Empleado", 1, 850, 1},
	{"EMP002", "Carlos", "López", "1234", "Empleado", 1, 1200, 2},
	{"SUP001", "María", "Rodríguez", "1234", "Supervisor", 1, 3500, 3},
	{"ADM001", "Juan", "Martínez", "1234", "Administrador", nil, 5000, 4},
}

// Seed inserts the baseline data set. Every statement is INSERT IGNORE so the
// seeder can run repeatedly against a populated database.
func Seed(db *gorm.DB) error {
	log.Println("[seed] inserting teams")
	if err := db.Exec(`
		INSERT IGNORE INTO teams (id, name) VALUES
		(1, 'Línea de Empaquetado 1'),
		(2, 'Control de Calidad'),
		(3, 'Logística')
	`).Error; err != nil {
		return fmt.Errorf("seeding teams: %w", err)
	}

	log.Println("[seed] inserting gamification levels")
	if err := db.Exec(`
		INSERT IGNORE INTO gamification_levels (level, points_required, title) VALUES
		(1, 0, 'Novato'),
		(2, 1000, 'Eficiente'),
		(3, 2500, 'Experto'),
		(4, 5000, 'Maestro'),
		(5, 10000, 'Leyenda')
	`).Error; err != nil {
		return fmt.Errorf("seeding gamification levels: %w", err)
	}

	log.Println("[seed] inserting employees")
	for _, emp := range seedEmployees {
		pinHash, err := bcrypt.GenerateFromPassword([]byte(emp.Pin), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing PIN for %s: %w", emp.Code, err)
		}
		if err := db.Exec(`
			INSERT IGNORE INTO employees
			(employee_code, first_name, last_name, pin_hash, role, team_id, points, level, is_active)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, TRUE)
		`, emp.Code, emp.FirstName, emp.LastName, string(pinHash), emp.Role, emp.TeamID, emp.Points, emp.Level).Error; err != nil {
			return fmt.Errorf("seeding employee %s: %w", emp.Code, err)
		}
	}

	log.Println("[seed] assigning supervisor")
	if err := db.Exec(`
		UPDATE teams SET supervisor_id =
		(SELECT id FROM employees WHERE employee_code = 'SUP001') WHERE id = 1
	`).Error; err != nil {
		return fmt.Errorf("assigning supervisor: %w", err)
	}

	log.Println("[seed] inserting task definitions")
	if err := db.Exec(`
		INSERT IGNORE INTO task_definitions
		(name, description, team_id, standard_time_seconds, points_base, points_bonus_per_second_saved) VALUES
		('Empaquetado Básico', 'Empaquetar productos en cajas estándar', 1, 300, 50, 1),
		('Control de Calidad', 'Revisar productos antes del empaquetado', 1, 180, 30, 2),
		('Etiquetado', 'Aplicar etiquetas de envío', 1, 120, 25, 1),
		('Inventario Rápido', 'Contar productos en almacén', 2, 600, 80, 1)
	`).Error; err != nil {
		return fmt.Errorf("seeding task definitions: %w", err)
	}

	log.Println("[seed] inserting badges")
	if err := db.Exec(`
		INSERT IGNORE INTO badges (id, name, description, icon_url, criteria) VALUES
		(1, 'Velocista', 'Completa 10 tareas en tiempo récord', 'https://example.com/badges/speed.png', '{"tasks_completed": 10, "time_improvement": "15%"}'),
		(2, 'Consistente', 'Trabaja 5 días consecutivos sin faltas', 'https://example.com/badges/consistent.png', '{"consecutive_days": 5}'),
		(3, 'Colaborador', 'Ayuda a 3 compañeros diferentes', 'https://example.com/badges/team.png', '{"helped_colleagues": 3}')
	`).Error; err != nil {
		return fmt.Errorf("seeding badges: %w", err)
	}

	log.Println("[seed] inserting sample work logs")
	if err := db.Exec(`
		INSERT IGNORE INTO work_logs
		(employee_id, task_definition_id, status, start_time, end_time, duration_seconds, points_earned) VALUES
		((SELECT id FROM employees WHERE employee_code = 'EMP001'), 1, 'completado', '2025-10-26 08:00:00', '2025-10-26 08:04:30', 270, 80),
		((SELECT id FROM employees WHERE employee_code = 'EMP001'), 2, 'completado', '2025-10-26 08:15:00', '2025-10-26 08:18:00', 180, 30),
		((SELECT id FROM employees WHERE employee_code = 'EMP002'), 1, 'completado', '2025-10-26 09:00:00', '2025-10-26 09:04:00', 240, 110)
	`).Error; err != nil {
		return fmt.Errorf("seeding work logs: %w", err)
	}

	var employees, teams, tasks int64
	db.Table("employees").Count(&employees)
	db.Table("teams").Count(&teams)
	db.Table("task_definitions").Count(&tasks)
	log.Printf("[seed] done: %d employees, %d teams, %d task definitions", employees, teams, tasks)

	return nil
}
