package model

import "errors"

// Error codes surfaced to API clients.
const (
	CodeItemNotFound     = "ITEM_NOT_FOUND"
	CodeInvalidQuantity  = "INVALID_QUANTITY"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)

var (
	// ErrItemNotFound means an update or delete targeted a row that no
	// longer exists. The sync layer treats this as benign.
	ErrItemNotFound = errors.New("cart item not found")

	// ErrInvalidQuantity rejects non-positive quantities before any store call.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrStoreUnavailable wraps transient store failures. Callers surface it
	// with a retry affordance; nothing below the UI retries automatically.
	ErrStoreUnavailable = errors.New("cart store unavailable")
)
