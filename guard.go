package ravy

import (
	"context"
)

// PermissionSource supplies the caller's current granted permission
// snapshot. The Client implements it; tests and embedders can supply
// their own.
type PermissionSource interface {
	GrantedPermissions() GrantedSet
}

// Guard gates endpoint calls behind a permission check. It captures no
// mutable state of its own, so a single Guard is safe for concurrent use;
// each check reads whatever snapshot the source exposes at call time.
type Guard struct {
	source PermissionSource
}

// NewGuard creates a Guard reading snapshots from source.
func NewGuard(source PermissionSource) *Guard {
	return &Guard{source: source}
}

// Check verifies that the source's current snapshot satisfies the required
// permission. It returns nil on success and an *AccessError on denial.
//
// Check panics if the snapshot is unset. An unset snapshot at check time
// means the calling program never ran SyncPermissions (or invalidated the
// snapshot unexpectedly); that is a session-lifecycle bug, not an
// authorization failure, and retrying the same call cannot fix it.
func (g *Guard) Check(required string) error {
	granted := g.source.GrantedPermissions()

	if !granted.Synced() {
		panic("ravy: permission set is unset; were permissions not yet fetched or unexpectedly modified?")
	}

	if !granted.Has(required) {
		return NewAccessError(required)
	}

	return nil
}

// Guarded wraps an endpoint call with a permission pre-check, preserving
// its signature. On denial the wrapped call is never invoked and no
// network traffic happens; on success its result and error pass through
// untouched.
//
// Example:
//
//	lookup := ravy.Guarded(guard, "users.bans", func(ctx context.Context) ([]ravy.BanEntry, error) {
//	    return fetchBans(ctx, userID)
//	})
//	bans, err := lookup(ctx)
func Guarded[T any](g *Guard, required string, fn func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		if err := g.Check(required); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}
