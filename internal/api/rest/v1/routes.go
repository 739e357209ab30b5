package v1

import (
	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	userService users.UserService,
	metricsService users.UserMetricsService,
	activityService activities.ActivityService) {

	v1 := r.Group(BasePath) // lookup in version file
	v1.Use(RequestID())

	// Echo Route
	echoHandler := NewEchoHandler()
	v1.POST("/echo", RequireJSON(), echoHandler.Echo)

	// Users Routes
	userHandler := NewUserHandler(userService, activityService)
	v1.POST("/users", RequireJSON(), userHandler.Create)
	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.GetByID)
	v1.PATCH("/users/:id", RequireJSON(), userHandler.UpdateByID)
	v1.DELETE("/users/:id", userHandler.DeleteByID)
	v1.DELETE("/users", userHandler.Delete)
	v1.POST("/users/:id/activities", RequireJSON(), userHandler.RecordActivity)

	// Metrics Routes
	metricsHandler := NewMetricsHandler(metricsService)
	v1.GET("/metrics/users/recent-registrations", metricsHandler.RecentRegistrations)
	v1.GET("/metrics/users/longest-names", metricsHandler.LongestNames)
	v1.GET("/metrics/users/email-domain", metricsHandler.EmailDomainShare)
}
