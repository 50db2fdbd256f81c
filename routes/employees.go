package routes

import (
	"net/http"
	"time"

	"github.com/ValeRico287/GateG/controllers"
	"github.com/ValeRico287/GateG/controllers/auth"
	"github.com/ValeRico287/GateG/controllers/employees"
	"github.com/ValeRico287/GateG/controllers/worklogs"
	"github.com/ValeRico287/GateG/middleware"

	"github.com/gorilla/mux"
)

// EmployeeRoutes registers the login and employee-facing endpoints.
func EmployeeRoutes(api *mux.Router) {
	// Rate limiter login: 30 per IP per 5 minutes; the lockout tracker handles
	// per-account abuse separately.
	loginLimiter := middleware.NewIPRateLimiter(30, 5*time.Minute)

	api.Handle("/auth/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/auth/logout", middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutHandler))).Methods(http.MethodPost)

	api.Handle("/employee/profile", middleware.AuthMiddleware(http.HandlerFunc(employees.ProfileHandler))).Methods(http.MethodGet)
	api.Handle("/tasks", middleware.AuthMiddleware(http.HandlerFunc(employees.TaskListHandler))).Methods(http.MethodGet)

	api.Handle("/work-logs/start", middleware.AuthMiddleware(http.HandlerFunc(worklogs.StartHandler))).Methods(http.MethodPost)
	api.Handle("/work-logs/complete", middleware.AuthMiddleware(http.HandlerFunc(worklogs.CompleteHandler))).Methods(http.MethodPost)

	api.Handle("/teams", middleware.AuthMiddleware(http.HandlerFunc(controllers.TeamListHandler))).Methods(http.MethodGet)
	api.Handle("/levels", middleware.AuthMiddleware(http.HandlerFunc(controllers.LevelListHandler))).Methods(http.MethodGet)
	api.Handle("/badges", middleware.AuthMiddleware(http.HandlerFunc(controllers.BadgeListHandler))).Methods(http.MethodGet)
}
