package router

import (
	"github.com/labstack/echo/v4"

	"github.com/nehawork/smart-attendence/internal/handler"
	"github.com/nehawork/smart-attendence/internal/middleware"
	"github.com/nehawork/smart-attendence/internal/model"
)

// RegisterAdmin registers the admin-only management routes: teacher
// accounts and roster creation.
func RegisterAdmin(e *echo.Echo, a *handler.AuthHandler, r *handler.RosterHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin))

	g.POST("/teachers", a.RegisterTeacher)
	g.GET("/teachers", a.ListTeachers)
	g.POST("/students", r.AddStudent)
}

// RegisterAPI registers the routes shared by both roles: roster and
// section listings, attendance marking and reports, and leave
// management. The cache middleware wraps only the read-only report
// endpoints; with no Redis configured it is a pass-through.
func RegisterAPI(e *echo.Echo, r *handler.RosterHandler, at *handler.AttendanceHandler, l *handler.LeaveHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleTeacher))

	// Roster views
	g.GET("/students", r.ListStudents)
	g.GET("/sections", r.ListSections)
	g.GET("/classes", r.ListClasses)
	g.GET("/classes/:class/divisions", r.ListDivisions)

	// Attendance
	g.POST("/attendance/class", at.MarkClass)
	g.POST("/attendance", at.MarkOne)
	g.GET("/attendance/summary", at.Summary, cache)
	g.GET("/attendance/detail", at.Detail, cache)
	g.GET("/attendance", at.Filter, cache)

	// Leave
	g.POST("/leaves", l.Submit)
	g.GET("/leaves", l.List, cache)
	g.GET("/leaves/export", l.Export)
	g.GET("/leaves/classes", l.Classes)
	g.GET("/leaves/classes/:class/divisions", l.Divisions)
	g.GET("/leaves/students", l.Students)
}
