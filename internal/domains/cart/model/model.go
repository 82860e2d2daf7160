package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is one persisted cart row. The store does not enforce
// uniqueness on (user_id, book_id): concurrent adds may leave several rows
// for the same book, and readers repair that with Merge.
type CartItem struct {
	ID       uuid.UUID `json:"id" db:"id"`
	UserID   string    `json:"userId" db:"user_id"`
	BookID   string    `json:"bookId" db:"book_id"`
	Quantity int       `json:"quantity" db:"quantity"`
	AddedAt  time.Time `json:"addedAt" db:"added_at"`
}

// MergedItem is one display row after merge-on-read: a single entry per
// book with the summed quantity of every underlying row.
type MergedItem struct {
	CartItem
	// Fragmented marks groups that were backed by more than one stored row.
	Fragmented bool `json:"fragmented"`
	// RowIDs lists every stored row collapsed into this entry, in read order.
	RowIDs []uuid.UUID `json:"rowIds"`
}

// CartLine is a merged row joined with catalog display attributes, used by
// the server-side cart summary.
type CartLine struct {
	BookID     string          `json:"bookId"`
	Title      string          `json:"title"`
	Author     string          `json:"author"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
	Fragmented bool            `json:"fragmented"`
}

// CartSummary is the full server-rendered cart view.
type CartSummary struct {
	UserID string          `json:"userId"`
	Lines  []CartLine      `json:"lines"`
	Total  decimal.Decimal `json:"total"`
}
