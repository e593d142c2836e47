package routes

import (
	"crewdesk/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers all endpoints for the availability engine.
func RegisterAvailabilityRoutes(r *gin.Engine, availabilityHandler *handlers.AvailabilityHandler, calendarHandler *handlers.CalendarHandler) {
	api := r.Group("/api")
	{
		api.GET("/availability", availabilityHandler.ResolveHandler)
		api.GET("/availability/:employeeID/absent", availabilityHandler.IsAbsentHandler)
		api.GET("/availability/:employeeID/working", availabilityHandler.IsWorkingHandler)
		api.GET("/calendar", calendarHandler.EntriesHandler)
	}
}
