// File: crewdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crewdesk/config"
	"crewdesk/cron"
	"crewdesk/database"
	absenceRepo "crewdesk/database/repository/absence"
	assignmentRepo "crewdesk/database/repository/assignment"
	employeeRepo "crewdesk/database/repository/employee"
	"crewdesk/handlers"
	"crewdesk/middleware"
	"crewdesk/routes"
	"crewdesk/services/availability"
	"crewdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	if len(config.AppConfig.DefaultActiveStatuses) > 0 {
		availability.DefaultActiveStatuses = config.AppConfig.DefaultActiveStatuses
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	absences := absenceRepo.NewMongoAbsenceRepo()
	assignments := assignmentRepo.NewMongoAssignmentRepo()
	employees := employeeRepo.NewMongoEmployeeRepo()

	// services.
	engine := &availability.DefaultEngine{
		Absences:    absences,
		Assignments: assignments,
		Employees:   employees,
	}
	calendar := &availability.DefaultCalendarService{
		Absences:    absences,
		Assignments: assignments,
		Employees:   employees,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(engine, logger)
	calendarHandler := handlers.NewCalendarHandler(calendar, logger)
	routes.RegisterAvailabilityRoutes(router, availabilityHandler, calendarHandler)

	cron.InitReminderWorker(engine, employees)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	logger.Info("main: server stopped")
}
