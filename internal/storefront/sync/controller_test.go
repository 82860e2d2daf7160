package sync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amana-bookstore/internal/domains/cart/model"
	"amana-bookstore/pkg/events"
)

// fakeStore mimics the server-side row collection: generated ids, no
// uniqueness, benign NotFound on missing targets. Individual call kinds can
// be failed to exercise rollback. Guarded by a mutex so tests can drive the
// controller from more than one goroutine.
type fakeStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]model.CartItem

	failFetch  bool
	failCreate bool
	failUpdate bool
	failDelete bool

	// optional hooks observing the controller mid-protocol; called
	// without the store lock held
	onFetch  func()
	onCreate func()

	fetches int
	creates int
	updates int
	deletes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[uuid.UUID]model.CartItem)}
}

// insert expects f.mu to be held.
func (f *fakeStore) insert(bookID string, quantity int) model.CartItem {
	item := model.CartItem{
		ID:       uuid.New(),
		UserID:   "guest-user",
		BookID:   bookID,
		Quantity: quantity,
		AddedAt:  time.Now(),
	}
	f.rows[item.ID] = item
	return item
}

func (f *fakeStore) seed(bookID string, quantity int) model.CartItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.insert(bookID, quantity)
}

func (f *fakeStore) rowsFor(bookID string) []model.CartItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.CartItem
	for _, item := range f.rows {
		if item.BookID == bookID {
			out = append(out, item)
		}
	}
	return out
}

func (f *fakeStore) FetchItems(context.Context) ([]model.CartItem, error) {
	if f.onFetch != nil {
		f.onFetch()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.failFetch {
		return nil, model.ErrStoreUnavailable
	}
	items := make([]model.CartItem, 0, len(f.rows))
	for _, item := range f.rows {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeStore) CreateItem(_ context.Context, bookID string, quantity int) (model.CartItem, error) {
	if f.onCreate != nil {
		f.onCreate()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.failCreate {
		return model.CartItem{}, model.ErrStoreUnavailable
	}
	return f.insert(bookID, quantity), nil
}

func (f *fakeStore) UpdateItem(_ context.Context, id uuid.UUID, quantity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	if f.failUpdate {
		return model.ErrStoreUnavailable
	}
	item, ok := f.rows[id]
	if !ok {
		return model.ErrItemNotFound
	}
	item.Quantity = quantity
	f.rows[id] = item
	return nil
}

func (f *fakeStore) DeleteItem(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	if f.failDelete {
		return model.ErrStoreUnavailable
	}
	if _, ok := f.rows[id]; !ok {
		return model.ErrItemNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeStore) ClearAll(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete {
		return model.ErrStoreUnavailable
	}
	f.rows = make(map[uuid.UUID]model.CartItem)
	return nil
}

func newTestController(store *fakeStore) (*Controller, *events.Subscription) {
	bus := events.NewBus()
	sub := bus.Subscribe()
	return NewController(store, bus), sub
}

func drainSignals(sub *events.Subscription) int {
	n := 0
	for {
		select {
		case <-sub.C:
			n++
		default:
			return n
		}
	}
}

func TestAddCreatesRowWhenNoneExists(t *testing.T) {
	store := newFakeStore()
	ctrl, sub := newTestController(store)

	err := ctrl.Add(context.Background(), "P1", 3)
	require.NoError(t, err)

	rows := store.rowsFor("P1")
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.Equal(t, 1, store.creates)
	assert.Zero(t, store.updates)

	assert.Equal(t, StatusCommitted, ctrl.Status())
	assert.Equal(t, 3, ctrl.TotalQuantity())
	assert.Positive(t, drainSignals(sub), "mutation must broadcast")
}

func TestAddIncrementsExistingRow(t *testing.T) {
	store := newFakeStore()
	existing := store.seed("P1", 2)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	err := ctrl.Add(context.Background(), "P1", 3)
	require.NoError(t, err)

	rows := store.rowsFor("P1")
	require.Len(t, rows, 1, "no new row when one already exists")
	assert.Equal(t, existing.ID, rows[0].ID)
	assert.Equal(t, 5, rows[0].Quantity)
	assert.Zero(t, store.creates)
	assert.Equal(t, 1, store.updates)
}

func TestAddToFragmentedGroupKeepsTheSum(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	store.seed("P1", 3)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	require.NoError(t, ctrl.Add(context.Background(), "P1", 1))

	// one raw row grew by the delta; its sibling kept its own quantity and
	// the read-time merge still sums the group correctly
	rows := store.rowsFor("P1")
	require.Len(t, rows, 2, "duplicate rows are left for merge-on-read")
	total := 0
	for _, r := range rows {
		total += r.Quantity
	}
	assert.Equal(t, 6, total)
	assert.Equal(t, 6, ctrl.TotalQuantity())

	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.Equal(t, 6, ctrl.TotalQuantity(), "stored sum matches the view after re-reading")
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	store := newFakeStore()
	ctrl, sub := newTestController(store)

	err := ctrl.Add(context.Background(), "P1", 0)
	require.ErrorIs(t, err, model.ErrInvalidQuantity)

	assert.Zero(t, store.fetches, "rejected before any store call")
	assert.Zero(t, store.creates)
	assert.Zero(t, drainSignals(sub))
}

func TestAddRollsBackByRefetchOnFailure(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	store.failUpdate = true
	err := ctrl.Add(context.Background(), "P1", 3)
	require.ErrorIs(t, err, model.ErrStoreUnavailable)

	// local view re-read from the store, optimistic +3 discarded
	assert.Equal(t, StatusCommitted, ctrl.Status())
	assert.Equal(t, 2, ctrl.TotalQuantity())
}

func TestSetQuantityRepairsFragmentedGroup(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	store.seed("P1", 3)
	store.seed("P2", 1)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	err := ctrl.SetQuantity(context.Background(), "P1", 10)
	require.NoError(t, err)

	rows := store.rowsFor("P1")
	require.Len(t, rows, 1, "repair path collapses the group")
	assert.Equal(t, 10, rows[0].Quantity, "new quantity, not the sum")

	require.Len(t, store.rowsFor("P2"), 1, "other books untouched")
	assert.Equal(t, StatusCommitted, ctrl.Status())
}

func TestSetQuantityUpdatesSingleRowInPlace(t *testing.T) {
	store := newFakeStore()
	existing := store.seed("P1", 2)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	err := ctrl.SetQuantity(context.Background(), "P1", 7)
	require.NoError(t, err)

	rows := store.rowsFor("P1")
	require.Len(t, rows, 1)
	assert.Equal(t, existing.ID, rows[0].ID, "single row is edited, not recreated")
	assert.Equal(t, 7, rows[0].Quantity)
	assert.Zero(t, store.creates)
}

func TestSetQuantityRejectsNonPositive(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	err := ctrl.SetQuantity(context.Background(), "P1", 0)
	require.ErrorIs(t, err, model.ErrInvalidQuantity)

	assert.Equal(t, 2, store.rowsFor("P1")[0].Quantity)
	assert.Equal(t, 2, ctrl.TotalQuantity(), "optimistic state untouched")
}

func TestSetQuantityRollbackRestoresAuthoritativeState(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	store.failUpdate = true
	err := ctrl.SetQuantity(context.Background(), "P1", 9)
	require.Error(t, err)

	assert.Equal(t, 2, ctrl.TotalQuantity(), "optimistic 9 rolled back to stored 2")
	assert.Equal(t, StatusCommitted, ctrl.Status())
	assert.Error(t, ctrl.Err())
}

func TestRollbackKeepsErrorWhenRefetchAlsoFails(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	store.failUpdate = true
	store.failFetch = true
	err := ctrl.SetQuantity(context.Background(), "P1", 9)
	require.Error(t, err)

	// resync failed: the view stays reconciling until a manual Refresh
	assert.Equal(t, StatusReconciling, ctrl.Status())

	store.failFetch = false
	store.failUpdate = false
	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.Equal(t, StatusCommitted, ctrl.Status())
	assert.Equal(t, 2, ctrl.TotalQuantity())
}

func TestRemoveDeletesAllRowsForBookOnly(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	store.seed("P1", 3)
	keep := store.seed("P2", 1)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	err := ctrl.Remove(context.Background(), "P1")
	require.NoError(t, err)

	assert.Empty(t, store.rowsFor("P1"))
	rows := store.rowsFor("P2")
	require.Len(t, rows, 1)
	assert.Equal(t, keep.ID, rows[0].ID)

	assert.Equal(t, 1, ctrl.TotalQuantity())
}

func TestRemoveToleratesAlreadyDeletedRows(t *testing.T) {
	store := newFakeStore()
	item := store.seed("P1", 2)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	// another surface deleted the row first
	delete(store.rows, item.ID)

	err := ctrl.Remove(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, StatusCommitted, ctrl.Status())
}

func TestClearEmptiesViewOnlyAfterServerConfirms(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	store.seed("P2", 1)
	ctrl, sub := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))
	drainSignals(sub)

	err := ctrl.Clear(context.Background())
	require.NoError(t, err)

	assert.Empty(t, store.rows)
	assert.Empty(t, ctrl.Items())
	assert.Positive(t, drainSignals(sub))
}

func TestClearFailureLeavesViewIntact(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	store.failDelete = true
	err := ctrl.Clear(context.Background())
	require.Error(t, err)

	// no optimistic phase: the local view still shows the rows
	assert.Equal(t, 2, ctrl.TotalQuantity())
}

func TestStatusIsPendingWhileTheWriteIsInFlight(t *testing.T) {
	store := newFakeStore()
	ctrl, _ := newTestController(store)

	var midFlight Status
	store.onCreate = func() {
		midFlight = ctrl.Status()
	}

	require.NoError(t, ctrl.Add(context.Background(), "P1", 1))

	assert.Equal(t, StatusPending, midFlight, "optimistic state visible before the server confirms")
	assert.Equal(t, StatusCommitted, ctrl.Status())
}

func TestStatusIsReconcilingDuringRollback(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	ctrl, _ := newTestController(store)
	require.NoError(t, ctrl.Refresh(context.Background()))

	var duringResync Status
	store.failUpdate = true
	store.onFetch = func() {
		duringResync = ctrl.Status()
	}

	err := ctrl.SetQuantity(context.Background(), "P1", 9)
	require.Error(t, err)

	assert.Equal(t, StatusReconciling, duringResync)
	assert.Equal(t, StatusCommitted, ctrl.Status())
}

func TestConcurrentRefreshDuringAddConverges(t *testing.T) {
	store := newFakeStore()
	store.seed("P1", 2)
	bus := events.NewBus()
	ctrl := NewController(store, bus)
	require.NoError(t, ctrl.Refresh(context.Background()))

	// one goroutine mutates while another re-reads and renders, the way a
	// UI framework runs commands while reacting to bus signals
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			assert.NoError(t, ctrl.Add(context.Background(), "P1", 1))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			_ = ctrl.Refresh(context.Background())
			_ = ctrl.Items()
			_ = ctrl.Status()
			_ = ctrl.TotalQuantity()
		}
	}()
	wg.Wait()

	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.Equal(t, 12, ctrl.TotalQuantity(), "every add landed exactly once")
	assert.Equal(t, StatusCommitted, ctrl.Status())
}

func TestSubscribersConvergeByRereading(t *testing.T) {
	store := newFakeStore()
	bus := events.NewBus()

	acting := NewController(store, bus)
	passive := NewController(store, bus)
	sub := bus.Subscribe()

	require.NoError(t, acting.Add(context.Background(), "P1", 4))

	// the sibling surface reacts to the signal with its own read
	<-sub.C
	require.NoError(t, passive.Refresh(context.Background()))

	assert.Equal(t, 4, passive.TotalQuantity())
}
