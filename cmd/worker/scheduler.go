package main

import (
	"log"

	"amana-bookstore/internal/infrastructure/queue"
	"amana-bookstore/pkg/container"
)

// asynqScheduler wraps queue.Scheduler with shutdown helpers.
type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler creates, registers and starts the cron scheduler.
func setupScheduler(c *container.Container) *asynqScheduler {
	scheduler := queue.NewScheduler(c.Config.Redis.Addr, c.Config.Worker)

	if err := scheduler.RegisterCartJobs(); err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

// Shutdown stops the scheduler.
func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] Stopped")
}
