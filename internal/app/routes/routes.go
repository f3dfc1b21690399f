// Package routes wires the HTTP endpoints to their controllers and
// access rules.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjoly/scolaris/internal/app/controllers"
	"github.com/mjoly/scolaris/internal/app/models"
	"github.com/mjoly/scolaris/internal/middleware"
)

// Controllers groups the handlers the router needs.
type Controllers struct {
	Auth      *controllers.AuthController
	Course    *controllers.CourseController
	Student   *controllers.StudentController
	Grade     *controllers.GradeController
	Dashboard *controllers.DashboardController
}

// Register sets up all routes. Every route under the authenticated
// group passes the JWT gate first; write routes add a role allow-list
// on top. Student self-access on :studentId routes is enforced in the
// services, not here.
func Register(router *gin.Engine, ctrl Controllers, authMW *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public endpoints
	v1.POST("/auth/login", ctrl.Auth.Login)
	v1.POST("/auth/register", ctrl.Auth.Register)

	authenticated := v1.Group("")
	authenticated.Use(authMW.JWTAuth())

	authenticated.GET("/auth/me", ctrl.Auth.Me)

	staff := authMW.RolesRequired(models.RoleAdmin, models.RoleRegistrar)
	adminOnly := authMW.RolesRequired(models.RoleAdmin)

	courses := authenticated.Group("/courses")
	{
		courses.GET("", ctrl.Course.List)
		courses.POST("", staff, ctrl.Course.Create)
		courses.PATCH("/:id", staff, ctrl.Course.Update)
		courses.DELETE("/:id", adminOnly, ctrl.Course.Delete)
	}

	students := authenticated.Group("/students")
	{
		students.GET("", staff, ctrl.Student.List)
		students.GET("/:id", ctrl.Student.GetByID)
		students.POST("", staff, ctrl.Student.Create)
		students.PATCH("/:id", staff, ctrl.Student.Update)
		students.DELETE("/:id", adminOnly, ctrl.Student.Delete)
	}

	grades := authenticated.Group("/grades")
	{
		grades.GET("", staff, ctrl.Grade.List)
		grades.GET("/student/:studentId", ctrl.Grade.ListByStudent)
		grades.POST("", staff, ctrl.Grade.Create)
		grades.PATCH("/:id", staff, ctrl.Grade.Update)
		grades.DELETE("/:id", adminOnly, ctrl.Grade.Delete)
	}

	dashboard := authenticated.Group("/dashboard")
	{
		dashboard.GET("/admin", adminOnly, ctrl.Dashboard.AdminOverview)
		dashboard.GET("/student/:studentId", ctrl.Dashboard.StudentOverview)
	}
}
