package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"crewdesk/config"
	employeeRepo "crewdesk/database/repository/employee"
	"crewdesk/models"
	"crewdesk/services/availability"
	"crewdesk/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background. The worker does no
// interval reasoning of its own; it asks the availability engine whether the
// employee is still committed before firing, so reminders for since-cancelled
// engagements are dropped.
func InitReminderWorker(engine availability.Engine, employees employeeRepo.EmployeeRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(engine, employees))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(engine availability.Engine, employees employeeRepo.EmployeeRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		fireDate, err := availability.ParseDate(p.FireDate)
		if err != nil {
			log.Printf("[ReminderHandler] invalid fire date %q: %v", p.FireDate, err)
			return nil
		}

		working, err := engine.IsWorking(p.EmployeeID, fireDate)
		if err != nil {
			log.Printf("[ReminderHandler] failed to check schedule for %s: %v", p.EmployeeID, err)
			return err
		}
		if !working {
			log.Printf("[ReminderHandler] employee %s no longer committed on %s, dropping reminder %s",
				p.EmployeeID, p.FireDate, p.ReminderID)
			return nil
		}

		name := p.EmployeeID
		if emp, err := employees.GetByID(p.EmployeeID); err == nil {
			name = emp.Name
		}

		// Dispatch belongs to the notification layer; the worker only emits
		// the trigger.
		log.Printf("[ReminderHandler] reminder %s for %s event %s: %s",
			p.ReminderID, name, p.EventID, p.Title)
		return nil
	}
}
