// Package sync keeps a UI surface's cart view consistent with the server.
// It implements the add, set-quantity, remove and clear protocols over a
// raw row store: optimistic local updates, rollback by refetching the
// authoritative state, and a change broadcast so sibling surfaces can
// re-read on their own.
package sync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"amana-bookstore/internal/domains/cart/model"
	"amana-bookstore/pkg/events"
)

// Store is the row-level cart boundary the controller drives. The HTTP
// client satisfies it in production; tests substitute an in-memory fake.
type Store interface {
	FetchItems(ctx context.Context) ([]model.CartItem, error)
	CreateItem(ctx context.Context, bookID string, quantity int) (model.CartItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, quantity int) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ClearAll(ctx context.Context) error
}

// Status is the controller's reconciliation state. Pending means an
// optimistic change is visible locally but not yet confirmed; Reconciling
// means a failed change is being rolled back by refetch.
type Status int

const (
	StatusCommitted Status = iota
	StatusPending
	StatusReconciling
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReconciling:
		return "reconciling"
	default:
		return "committed"
	}
}

// Controller owns one surface's merged cart view. A mutex guards the view
// so the surface's render path and the command goroutines its UI framework
// spawns can touch the controller at the same time; store calls run outside
// the lock. Sibling surfaces hold their own Controller and converge through
// the bus, never through shared state.
type Controller struct {
	store Store
	bus   *events.Bus

	mu     sync.Mutex
	items  []model.MergedItem
	status Status
	err    error
}

func NewController(store Store, bus *events.Bus) *Controller {
	return &Controller{
		store:  store,
		bus:    bus,
		status: StatusCommitted,
	}
}

// Items returns a snapshot of the current merged view.
func (c *Controller) Items() []model.MergedItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.MergedItem, len(c.items))
	copy(out, c.items)
	return out
}

// Status reports the reconciliation state of the view.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Err returns the error from the last failed operation, cleared on the next
// successful one.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// TotalQuantity sums the merged view, for badges.
func (c *Controller) TotalQuantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Refresh replaces the local view with the authoritative merged state.
func (c *Controller) Refresh(ctx context.Context) error {
	rows, err := c.store.FetchItems(ctx)
	if err != nil {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.items = model.Merge(rows)
	c.status = StatusCommitted
	c.err = nil
	c.mu.Unlock()
	return nil
}

// Add runs the add-to-cart protocol: read the live rows, increment the
// first raw row for the book if one exists, otherwise create a new row. The
// local view advances optimistically and is rolled back by refetch when the
// server rejects the change.
func (c *Controller) Add(ctx context.Context, bookID string, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	rows, err := c.store.FetchItems(ctx)
	if err != nil {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.applyAddLocally(bookID, quantity)
	c.status = StatusPending
	c.mu.Unlock()
	c.bus.Publish()

	var first *model.CartItem
	for i := range rows {
		if rows[i].BookID == bookID {
			first = &rows[i]
			break
		}
	}

	if first != nil {
		// only the first row's own quantity grows; sibling duplicate rows
		// keep theirs and the read-time merge sums the group
		err = c.store.UpdateItem(ctx, first.ID, first.Quantity+quantity)
	} else {
		_, err = c.store.CreateItem(ctx, bookID, quantity)
	}

	if err != nil {
		return c.rollback(ctx, fmt.Errorf("add to cart: %w", err))
	}

	c.commit()
	return nil
}

// SetQuantity runs the set-quantity protocol. A fragmented group takes the
// repair path: every row is deleted and one fresh row is created with the
// requested quantity, collapsing fragmentation as a side effect of the edit.
func (c *Controller) SetQuantity(ctx context.Context, bookID string, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	c.mu.Lock()
	c.applySetLocally(bookID, quantity)
	c.status = StatusPending
	c.mu.Unlock()
	c.bus.Publish()

	rows, err := c.store.FetchItems(ctx)
	if err != nil {
		return c.rollback(ctx, err)
	}

	var group []model.CartItem
	for _, row := range rows {
		if row.BookID == bookID {
			group = append(group, row)
		}
	}

	switch len(group) {
	case 0:
		// edited row vanished under us; create it fresh
		_, err = c.store.CreateItem(ctx, bookID, quantity)
	case 1:
		err = c.store.UpdateItem(ctx, group[0].ID, quantity)
	default:
		err = c.repairGroup(ctx, group, bookID, quantity)
	}

	if err != nil {
		return c.rollback(ctx, fmt.Errorf("set quantity: %w", err))
	}

	c.commit()
	return nil
}

// repairGroup deletes every row of a fragmented group and recreates a
// single row with the requested quantity. Not atomic as a unit; a failure
// partway through is rolled back by refetch like any other error.
func (c *Controller) repairGroup(ctx context.Context, group []model.CartItem, bookID string, quantity int) error {
	for _, row := range group {
		if err := c.store.DeleteItem(ctx, row.ID); err != nil && !errors.Is(err, model.ErrItemNotFound) {
			return err
		}
	}

	_, err := c.store.CreateItem(ctx, bookID, quantity)
	return err
}

// Remove runs the remove protocol: optimistic local removal, then deletion
// of every stored row for the book.
func (c *Controller) Remove(ctx context.Context, bookID string) error {
	c.mu.Lock()
	c.applyRemoveLocally(bookID)
	c.status = StatusPending
	c.mu.Unlock()
	c.bus.Publish()

	rows, err := c.store.FetchItems(ctx)
	if err != nil {
		return c.rollback(ctx, err)
	}

	for _, row := range rows {
		if row.BookID != bookID {
			continue
		}
		// a row already gone counts as removed
		if err := c.store.DeleteItem(ctx, row.ID); err != nil && !errors.Is(err, model.ErrItemNotFound) {
			return c.rollback(ctx, fmt.Errorf("remove from cart: %w", err))
		}
	}

	c.commit()
	return nil
}

// Clear runs the clear-cart protocol. There is no optimistic phase: the
// local view empties only after the server deletes succeed, and there is no
// rollback; a partial failure leaves the next Refresh to reconcile.
func (c *Controller) Clear(ctx context.Context) error {
	if err := c.store.ClearAll(ctx); err != nil {
		wrapped := fmt.Errorf("clear cart: %w", err)
		c.mu.Lock()
		c.err = wrapped
		c.mu.Unlock()
		return wrapped
	}

	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
	c.commit()
	return nil
}

func (c *Controller) commit() {
	c.mu.Lock()
	c.status = StatusCommitted
	c.err = nil
	c.mu.Unlock()
	c.bus.Publish()
}

// rollback discards the optimistic state by re-reading the authoritative
// rows. The original error is returned either way; a refetch failure is
// attached so the caller sees both.
func (c *Controller) rollback(ctx context.Context, cause error) error {
	c.mu.Lock()
	c.status = StatusReconciling
	c.err = cause
	c.mu.Unlock()
	c.bus.Publish()

	rows, fetchErr := c.store.FetchItems(ctx)
	if fetchErr != nil {
		// stale optimistic state stays visible until the next Refresh
		combined := fmt.Errorf("%w (resync failed: %v)", cause, fetchErr)
		c.mu.Lock()
		c.err = combined
		c.mu.Unlock()
		return combined
	}

	c.mu.Lock()
	c.items = model.Merge(rows)
	c.status = StatusCommitted
	c.mu.Unlock()
	c.bus.Publish()
	return cause
}

// The apply helpers below expect c.mu to be held by the caller.

func (c *Controller) applyAddLocally(bookID string, quantity int) {
	for i := range c.items {
		if c.items[i].BookID == bookID {
			c.items[i].Quantity += quantity
			return
		}
	}

	item := model.MergedItem{}
	item.BookID = bookID
	item.Quantity = quantity
	c.items = append(c.items, item)
}

func (c *Controller) applySetLocally(bookID string, quantity int) {
	for i := range c.items {
		if c.items[i].BookID == bookID {
			c.items[i].Quantity = quantity
			return
		}
	}

	item := model.MergedItem{}
	item.BookID = bookID
	item.Quantity = quantity
	c.items = append(c.items, item)
}

func (c *Controller) applyRemoveLocally(bookID string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.BookID != bookID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}
