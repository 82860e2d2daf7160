package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"amana-bookstore/internal/domains/cart/repository"
	"amana-bookstore/pkg/logger"
)

// CompactFragmentedHandler collapses every (user, book) group backed by
// more than one row into a single row with the summed quantity. Merge-on-read
// already hides fragmentation from readers; this job just keeps the store
// from accumulating rows indefinitely.
type CompactFragmentedHandler struct {
	cartRepo repository.RepositoryInterface
}

func NewCompactFragmentedHandler(cartRepo repository.RepositoryInterface) *CompactFragmentedHandler {
	return &CompactFragmentedHandler{
		cartRepo: cartRepo,
	}
}

func (h *CompactFragmentedHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	groups, err := h.cartRepo.ListFragmented(ctx)
	if err != nil {
		return fmt.Errorf("list fragmented groups: %w", err)
	}

	if len(groups) == 0 {
		logger.Debug("no fragmented cart groups found")
		return nil
	}

	logger.Info("compacting fragmented cart groups", map[string]interface{}{
		"groups": len(groups),
	})

	var failed int
	for _, g := range groups {
		if err := h.cartRepo.CompactGroup(ctx, g.UserID, g.BookID); err != nil {
			// keep going; the next run picks up whatever is left
			failed++
			logger.Error("failed to compact cart group", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("compact fragmented carts: %d of %d groups failed", failed, len(groups))
	}

	logger.Info("compacted fragmented cart groups", map[string]interface{}{
		"groups": len(groups),
	})

	return nil
}
