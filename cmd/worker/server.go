package main

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"amana-bookstore/internal/shared"
	"amana-bookstore/pkg/container"
)

// asynqServer wraps asynq.Server with shutdown helpers.
type asynqServer struct {
	*asynq.Server
}

// setupAsynqServer creates and starts the Asynq server.
func setupAsynqServer(c *container.Container, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Queues: map[string]int{
				shared.QueueCart: 10,
				"default":        5,
			},
			Concurrency:     c.Config.Worker.Concurrency,
			ShutdownTimeout: 30 * time.Second,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Printf("[Asynq] Task failed - Type: %s, Error: %v", task.Type(), err)
			}),
		},
	)

	go func() {
		log.Println("[Worker] Starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown stops the server. asynq waits for in-flight tasks up to the
// configured ShutdownTimeout before returning.
func (s *asynqServer) Shutdown() {
	log.Println("[Worker] Shutting down (waiting max 30s)...")
	s.Server.Shutdown()
	log.Println("[Worker] Gracefully stopped")
}
