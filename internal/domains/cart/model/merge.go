package model

import "github.com/google/uuid"

// Merge collapses raw cart rows into one display row per book. Quantities
// within a group are summed; the first row seen for a book supplies the
// identity and timestamp of the merged entry, and rows keep their first-seen
// order so repeated reads render stably.
//
// Merge is idempotent: running it over the rows of an already merged set
// returns the same set. Storage is never mutated here; fragmentation repair
// at the store level is a separate, explicit operation.
func Merge(rows []CartItem) []MergedItem {
	index := make(map[string]int, len(rows))
	merged := make([]MergedItem, 0, len(rows))

	for _, row := range rows {
		if i, ok := index[row.BookID]; ok {
			merged[i].Quantity += row.Quantity
			merged[i].Fragmented = true
			merged[i].RowIDs = append(merged[i].RowIDs, row.ID)
			continue
		}

		index[row.BookID] = len(merged)
		merged = append(merged, MergedItem{
			CartItem: row,
			RowIDs:   []uuid.UUID{row.ID},
		})
	}

	return merged
}
