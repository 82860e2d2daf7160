package service

import (
	"context"

	"github.com/google/uuid"

	"amana-bookstore/internal/domains/cart/model"
)

// ServiceInterface exposes cart operations over the raw row store. Reads
// come in two shapes: ListItems returns the rows exactly as stored (the
// wire contract clients merge themselves), Summary returns the merged,
// catalog-joined view.
type ServiceInterface interface {
	ListItems(ctx context.Context, userID string) ([]model.CartItem, error)
	ListMerged(ctx context.Context, userID string) ([]model.MergedItem, error)
	Summary(ctx context.Context, userID string) (model.CartSummary, error)
	CreateItem(ctx context.Context, req model.CreateCartItemRequest) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, req model.UpdateCartItemRequest) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	Clear(ctx context.Context, userID string) (int, error)
}
