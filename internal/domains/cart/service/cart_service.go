package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"amana-bookstore/internal/domains/cart/model"
	"amana-bookstore/internal/domains/cart/repository"
	catalogservice "amana-bookstore/internal/domains/catalog/service"
	"amana-bookstore/pkg/logger"
)

type CartService struct {
	repo    repository.RepositoryInterface
	catalog catalogservice.ServiceInterface
}

func NewCartService(repo repository.RepositoryInterface, catalog catalogservice.ServiceInterface) ServiceInterface {
	return &CartService{
		repo:    repo,
		catalog: catalog,
	}
}

// ListItems returns the stored rows untouched. Duplicate rows per book are
// part of the contract; merging is the reader's job.
func (s *CartService) ListItems(ctx context.Context, userID string) ([]model.CartItem, error) {
	items, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

// ListMerged applies merge-on-read to the user's rows.
func (s *CartService) ListMerged(ctx context.Context, userID string) ([]model.MergedItem, error) {
	items, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return model.Merge(items), nil
}

// Summary merges the user's rows and joins them with catalog attributes.
// Rows referencing a book the catalog no longer carries are dropped from
// the view but left in storage.
func (s *CartService) Summary(ctx context.Context, userID string) (model.CartSummary, error) {
	merged, err := s.ListMerged(ctx, userID)
	if err != nil {
		return model.CartSummary{}, err
	}

	summary := model.CartSummary{
		UserID: userID,
		Lines:  []model.CartLine{},
		Total:  decimal.Zero,
	}

	for _, item := range merged {
		book, ok := s.catalog.ByID(item.BookID)
		if !ok {
			logger.Warn("cart row references unknown book, skipping", map[string]interface{}{
				"user_id": userID,
				"book_id": item.BookID,
			})
			continue
		}

		lineTotal := book.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		summary.Lines = append(summary.Lines, model.CartLine{
			BookID:     book.ID,
			Title:      book.Title,
			Author:     book.Author,
			UnitPrice:  book.Price,
			Quantity:   item.Quantity,
			LineTotal:  lineTotal,
			Fragmented: item.Fragmented,
		})
		summary.Total = summary.Total.Add(lineTotal)
	}

	return summary, nil
}

// CreateItem validates and inserts one row. Validation failures never reach
// the store.
func (s *CartService) CreateItem(ctx context.Context, req model.CreateCartItemRequest) (model.CartItem, error) {
	if err := req.Validate(); err != nil {
		return model.CartItem{}, fmt.Errorf("%w: %v", model.ErrInvalidQuantity, err)
	}

	item, err := s.repo.Create(ctx, req.UserID, req.BookID, req.Quantity)
	if err != nil {
		return model.CartItem{}, fmt.Errorf("failed to create cart item: %w", err)
	}

	logger.Info("cart item created", map[string]interface{}{
		"item_id": item.ID.String(),
		"user_id": item.UserID,
		"book_id": item.BookID,
	})

	return item, nil
}

// UpdateQuantity validates and sets the quantity of one row.
func (s *CartService) UpdateQuantity(ctx context.Context, req model.UpdateCartItemRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidQuantity, err)
	}

	if err := s.repo.UpdateQuantity(ctx, req.ID, req.Quantity); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	return nil
}

// DeleteItem removes one row by id.
func (s *CartService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// Clear deletes every row of the user's cart, fanning the per-row deletes
// out in parallel. A row that vanishes mid-clear is not an error.
func (s *CartService) Clear(ctx context.Context, userID string) (int, error) {
	items, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to list cart items: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, item := range items {
		itemID := item.ID
		g.Go(func() error {
			err := s.repo.DeleteByID(gctx, itemID)
			if err != nil && !errors.Is(err, model.ErrItemNotFound) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	logger.Info("cart cleared", map[string]interface{}{
		"user_id": userID,
		"rows":    len(items),
	})

	return len(items), nil
}
