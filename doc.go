// Package ravy provides a client for the Ravy anti-abuse API.
//
// The client is built around two independent pieces that compose at call
// time: route paths, which deterministically map logical resources to API
// path strings, and the permission guard, which gates every endpoint call
// behind a hierarchical permission check before any network traffic
// happens.
//
// # Permissions
//
// A permission is a dot-separated string ordered from most general to most
// specific, e.g. "users.bans". Holding a broader permission implies every
// narrower one: a token granted "users" satisfies a requirement of
// "users.bans". Matching truncates the required string segment by segment
// and tests exact membership against the granted set; granted entries are
// never decomposed and there is no wildcard expansion.
//
// The granted set is a snapshot fetched from the API once per session via
// [Client.SyncPermissions]. Until that happens the set is unset, which is
// different from empty: calling a guarded endpoint with an unset snapshot
// is a lifecycle bug in the calling program and panics, while an
// insufficient snapshot returns an [*AccessError].
//
// # Basic Usage
//
//	client, err := ravy.New(os.Getenv("RAVY_TOKEN"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Fetch the token's granted permissions before the first guarded call.
//	if err := client.SyncPermissions(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	user, err := client.Users.Get(ctx, 123456789012345678)
//	if ravy.IsAccessDenied(err) {
//	    // The token lacks the "users" permission.
//	}
//
// # Route Paths
//
// Path construction is exposed separately from the endpoint services for
// callers that build their own requests:
//
//	paths := ravy.NewPaths()
//	paths.Users(42).Route()      // "/users/42"
//	paths.Users(42).Bans()       // "/users/42/bans"
//	paths.Guilds(7).Route()      // "/guilds/7"
//	paths.Tokens().Route()       // "/tokens/@current"
//
// Route values are immutable and perform no validation or I/O; identifier
// sanity is the remote service's concern.
//
// # Caching
//
// Lookup-heavy workloads (typically chat bots checking users on join) can
// attach a Redis-backed response cache with [WithRedisCache]. The guard
// check always runs before the cache, so a denied call touches neither the
// network nor Redis.
package ravy
