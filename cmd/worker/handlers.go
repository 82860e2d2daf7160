package main

import (
	"github.com/hibiken/asynq"

	cartJob "amana-bookstore/internal/domains/cart/job"
	"amana-bookstore/internal/shared"
	"amana-bookstore/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	compactFragmented *cartJob.CompactFragmentedHandler
	purgeStale        *cartJob.PurgeStaleHandler
}

// initializeHandlers creates all job handlers with their dependencies.
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		compactFragmented: cartJob.NewCompactFragmentedHandler(c.CartRepo),
		purgeStale:        cartJob.NewPurgeStaleHandler(c.CartRepo),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeCompactFragmentedCarts, h.compactFragmented.ProcessTask)
	mux.HandleFunc(shared.TypePurgeStaleCartItems, h.purgeStale.ProcessTask)
}
