package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"amana-bookstore/internal/domains/cart/model"
	"amana-bookstore/internal/domains/cart/repository"
	"amana-bookstore/internal/shared/utils"
	"amana-bookstore/pkg/logger"
)

const defaultRetentionDays = 90

// PurgeStaleHandler removes cart rows older than the retention window.
// Abandoned guest carts never get cleared by a user action, so the store
// would otherwise grow without bound.
type PurgeStaleHandler struct {
	cartRepo repository.RepositoryInterface
}

func NewPurgeStaleHandler(cartRepo repository.RepositoryInterface) *PurgeStaleHandler {
	return &PurgeStaleHandler{
		cartRepo: cartRepo,
	}
}

func (h *PurgeStaleHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.PurgeStaleCartItemsPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	days := payload.OlderThanDays
	if days <= 0 {
		days = defaultRetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	removed, err := h.cartRepo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge stale cart items: %w", err)
	}

	logger.Info("purged stale cart items", map[string]interface{}{
		"older_than_days": days,
		"removed":         removed,
	})

	return nil
}
