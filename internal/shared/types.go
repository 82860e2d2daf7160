package shared

// GuestUserID is the single hard-coded identity the storefront shops under.
// There is no session model; user identity is an opaque input everywhere
// below the HTTP boundary.
const GuestUserID = "guest-user"

// Task types handled by the worker.
const (
	TypeCompactFragmentedCarts = "cart:compact_fragmented"
	TypePurgeStaleCartItems    = "cart:purge_stale"
)

// Queue names.
const (
	QueueCart = "cart"
)
