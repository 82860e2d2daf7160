package model

// CompactFragmentedPayload drives the periodic fragmentation repair job.
// Empty today; kept as a struct so the task schema can grow.
type CompactFragmentedPayload struct{}

// PurgeStaleCartItemsPayload drives the stale-row cleanup job.
type PurgeStaleCartItemsPayload struct {
	OlderThanDays int `json:"olderThanDays"`
}
