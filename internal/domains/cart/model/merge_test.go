package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(bookID string, quantity int) CartItem {
	return CartItem{
		ID:       uuid.New(),
		UserID:   "guest-user",
		BookID:   bookID,
		Quantity: quantity,
		AddedAt:  time.Now(),
	}
}

func TestMergeSumsFragmentedGroups(t *testing.T) {
	rows := []CartItem{
		row("P1", 2),
		row("P1", 3),
		row("P2", 1),
	}

	merged := Merge(rows)

	require.Len(t, merged, 2)
	assert.Equal(t, "P1", merged[0].BookID)
	assert.Equal(t, 5, merged[0].Quantity)
	assert.True(t, merged[0].Fragmented)
	assert.Len(t, merged[0].RowIDs, 2)

	assert.Equal(t, "P2", merged[1].BookID)
	assert.Equal(t, 1, merged[1].Quantity)
	assert.False(t, merged[1].Fragmented)
}

func TestMergeIsIdempotent(t *testing.T) {
	rows := []CartItem{
		row("P1", 2),
		row("P1", 3),
		row("P2", 1),
	}

	once := Merge(rows)

	// re-merging the merged rows must change nothing
	flattened := make([]CartItem, len(once))
	for i, m := range once {
		flattened[i] = m.CartItem
	}
	twice := Merge(flattened)

	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, once[i].BookID, twice[i].BookID)
		assert.Equal(t, once[i].Quantity, twice[i].Quantity)
		assert.False(t, twice[i].Fragmented)
	}
}

func TestMergeQuantityEqualsSumPerBook(t *testing.T) {
	rows := []CartItem{
		row("A", 1),
		row("B", 4),
		row("A", 2),
		row("C", 7),
		row("A", 3),
		row("B", 1),
	}

	sums := map[string]int{}
	for _, r := range rows {
		sums[r.BookID] += r.Quantity
	}

	merged := Merge(rows)
	require.Len(t, merged, len(sums))

	seen := map[string]bool{}
	for _, m := range merged {
		assert.False(t, seen[m.BookID], "book %s appears twice after merge", m.BookID)
		seen[m.BookID] = true
		assert.Equal(t, sums[m.BookID], m.Quantity)
	}
}

func TestMergePreservesFirstSeenOrder(t *testing.T) {
	rows := []CartItem{
		row("B", 1),
		row("A", 1),
		row("B", 2),
	}

	merged := Merge(rows)

	require.Len(t, merged, 2)
	assert.Equal(t, "B", merged[0].BookID)
	assert.Equal(t, "A", merged[1].BookID)
}

func TestMergeEmptyInput(t *testing.T) {
	assert.Empty(t, Merge(nil))
	assert.Empty(t, Merge([]CartItem{}))
}
