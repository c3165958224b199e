package routes

import (
	"hr-payroll-backend/internal/api/handlers"
	"hr-payroll-backend/internal/api/middleware"
	"hr-payroll-backend/internal/config"
	"hr-payroll-backend/internal/metrics"
	"hr-payroll-backend/internal/repository"
	"hr-payroll-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	services, err := service.NewServices(repository.NewStore(db), cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(metrics.GinMiddleware)

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterAPI(router.Group("/api/v1"), services)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// RegisterAPI mounts the record and payroll endpoints on v1
func RegisterAPI(v1 *gin.RouterGroup, services *service.Services) {
	employeeHandler := handlers.NewEmployeeHandler(services.Employees)
	teamHandler := handlers.NewTeamHandler(services.Teams)
	assignmentHandler := handlers.NewAssignmentHandler(services.Assignments)
	financialsHandler := handlers.NewFinancialsHandler(services.Financials)

	employees := v1.Group("/employees")
	{
		employees.GET("", employeeHandler.ListEmployees)
		employees.POST("", employeeHandler.CreateEmployee)
		employees.PUT("/:employee_id", employeeHandler.UpdateEmployee)
		employees.DELETE("/:employee_id", employeeHandler.DeleteEmployee)
	}

	teams := v1.Group("/teams")
	{
		teams.GET("", teamHandler.ListTeams)
		teams.POST("", teamHandler.CreateTeam)
		teams.PUT("/:name", teamHandler.RenameTeam)
		teams.DELETE("/:name", teamHandler.DeleteTeam)
	}

	relations := v1.Group("/team-employee-relations")
	{
		relations.GET("", assignmentHandler.ListAssignments)
		relations.POST("", assignmentHandler.CreateAssignment)
		relations.PUT("", assignmentHandler.UpdateAssignment)
		relations.DELETE("", assignmentHandler.DeleteAssignment)
	}

	v1.GET("/financials", financialsHandler.GetFinancials)
}
