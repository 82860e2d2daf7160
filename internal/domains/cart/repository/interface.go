package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"amana-bookstore/internal/domains/cart/model"
)

// FragmentedGroup identifies a (user, book) pair backed by more than one
// stored row.
type FragmentedGroup struct {
	UserID string
	BookID string
	Rows   int
}

// RepositoryInterface is the cart store accessor: plain CRUD over the
// cart_items collection. It never retries and never merges; duplicate rows
// per (user, book) are permitted and repaired by readers or by the
// compaction job.
type RepositoryInterface interface {
	// ListForUser returns every row for the user. No ordering guarantee.
	ListForUser(ctx context.Context, userID string) ([]model.CartItem, error)

	// Create inserts a new row. The store generates id and added_at.
	// Callers validate quantity before reaching here.
	Create(ctx context.Context, userID, bookID string, quantity int) (model.CartItem, error)

	// UpdateQuantity sets the quantity of one row.
	// Returns model.ErrItemNotFound when the row is missing.
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error

	// DeleteByID removes one row.
	// Returns model.ErrItemNotFound when the row is missing.
	DeleteByID(ctx context.Context, itemID uuid.UUID) error

	// ListFragmented reports every (user, book) group with more than one row.
	ListFragmented(ctx context.Context) ([]FragmentedGroup, error)

	// CompactGroup transactionally replaces all rows of one (user, book)
	// group with a single row holding the summed quantity.
	CompactGroup(ctx context.Context, userID, bookID string) error

	// PurgeOlderThan deletes rows added before the cutoff, returning the
	// number removed.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
