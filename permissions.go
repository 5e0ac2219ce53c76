package ravy

import (
	"strings"
)

// Permissions required by the guarded endpoint services. Each value is a
// dot-separated string ordered most-general-first; see HasPermissions for
// how broader grants imply narrower ones.
const (
	PermissionAvatars         = "avatars"
	PermissionGuilds          = "guilds"
	PermissionURLs            = "urls"
	PermissionURLsManage      = "admin.urls"
	PermissionUsers           = "users"
	PermissionUsersPronouns   = "users.pronouns"
	PermissionUsersBans       = "users.bans"
	PermissionUsersWhitelists = "users.whitelists"
	PermissionUsersReputation = "users.rep"
)

// HasPermissions reports whether a granted permission set satisfies the
// required permission.
//
// The required string is split on "." and progressively truncated from the
// most specific segment; each joined prefix is tested for exact,
// case-sensitive membership in granted. Granted entries are never
// decomposed and no wildcard expansion happens.
//
// Examples:
//
//	HasPermissions("users.bans", []string{"users"})      // true - broader grant
//	HasPermissions("users.bans", []string{"users.bans"}) // true - exact match
//	HasPermissions("users.bans", []string{"guilds"})     // false
func HasPermissions(required string, granted []string) bool {
	segments := strings.Split(required, ".")

	for len(segments) > 0 {
		candidate := strings.Join(segments, ".")
		for _, grant := range granted {
			if grant == candidate {
				return true
			}
		}
		segments = segments[:len(segments)-1]
	}

	return false
}

// GrantedSet is a snapshot of the permission strings a token currently
// holds, as reported by the API.
//
// The zero value is unset, which is distinct from empty: empty means the
// API granted nothing, unset means the snapshot was never fetched and no
// judgement is possible. The Guard treats the two very differently.
type GrantedSet struct {
	synced  bool
	entries []string
}

// NewGrantedSet creates a synced snapshot from a list of permission
// strings. A nil or empty list yields a synced-but-empty set, not an
// unset one. The input is copied.
func NewGrantedSet(entries []string) GrantedSet {
	copied := make([]string, len(entries))
	copy(copied, entries)
	return GrantedSet{synced: true, entries: copied}
}

// Synced reports whether the snapshot was ever populated.
func (s GrantedSet) Synced() bool {
	return s.synced
}

// Permissions returns a copy of the granted permission strings. It is nil
// for an unset snapshot.
func (s GrantedSet) Permissions() []string {
	if !s.synced {
		return nil
	}
	copied := make([]string, len(s.entries))
	copy(copied, s.entries)
	return copied
}

// Has reports whether the snapshot satisfies a required permission.
// It is always false for an unset snapshot.
func (s GrantedSet) Has(required string) bool {
	if !s.synced {
		return false
	}
	return HasPermissions(required, s.entries)
}
