package ravy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHasPermissions tests hierarchical permission matching
func TestHasPermissions(t *testing.T) {
	tests := []struct {
		name     string
		required string
		granted  []string
		expected bool
	}{
		{
			name:     "Broader grant matches ancestor",
			required: "guilds.bans.read",
			granted:  []string{"guilds"},
			expected: true,
		},
		{
			name:     "Intermediate grant matches",
			required: "guilds.bans.read",
			granted:  []string{"guilds.bans"},
			expected: true,
		},
		{
			name:     "Unrelated grant does not match",
			required: "guilds.bans.read",
			granted:  []string{"tokens"},
			expected: false,
		},
		{
			name:     "Verbatim membership matches",
			required: "users.pronouns",
			granted:  []string{"guilds", "users.pronouns"},
			expected: true,
		},
		{
			name:     "Granted entries are never decomposed",
			required: "guilds",
			granted:  []string{"guilds.bans"},
			expected: false,
		},
		{
			name:     "Matching is case-sensitive",
			required: "users.bans",
			granted:  []string{"Users"},
			expected: false,
		},
		{
			name:     "No wildcard expansion",
			required: "users.bans",
			granted:  []string{"*", "users.*"},
			expected: false,
		},
		{
			name:     "Empty required against empty grant entry",
			required: "",
			granted:  []string{""},
			expected: true,
		},
		{
			name:     "Empty required against empty set",
			required: "",
			granted:  []string{},
			expected: false,
		},
		{
			name:     "Empty set denies everything",
			required: "users",
			granted:  []string{},
			expected: false,
		},
		{
			name:     "Nil set denies everything",
			required: "users",
			granted:  nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasPermissions(tt.required, tt.granted))
		})
	}
}

// TestHasPermissionsMonotonic tests that adding grants never revokes a match
func TestHasPermissionsMonotonic(t *testing.T) {
	base := []string{"guilds"}
	superset := []string{"tokens", "guilds", "urls", "users.rep"}

	assert.True(t, HasPermissions("guilds.bans.read", base))
	assert.True(t, HasPermissions("guilds.bans.read", superset))
}

// TestGrantedSet tests the unset/empty/populated sentinel states
func TestGrantedSet(t *testing.T) {
	t.Run("Zero value is unset", func(t *testing.T) {
		var set GrantedSet
		assert.False(t, set.Synced())
		assert.Nil(t, set.Permissions())
		assert.False(t, set.Has("users"))
		assert.False(t, set.Has(""))
	})

	t.Run("Empty set is synced but grants nothing", func(t *testing.T) {
		set := NewGrantedSet(nil)
		assert.True(t, set.Synced())
		assert.Empty(t, set.Permissions())
		assert.False(t, set.Has("users"))
	})

	t.Run("Populated set grants hierarchically", func(t *testing.T) {
		set := NewGrantedSet([]string{"users", "guilds.bans"})
		assert.True(t, set.Synced())
		assert.True(t, set.Has("users.whitelists"))
		assert.True(t, set.Has("guilds.bans"))
		assert.False(t, set.Has("guilds"))
	})

	t.Run("Input and output slices are copies", func(t *testing.T) {
		source := []string{"users"}
		set := NewGrantedSet(source)

		source[0] = "guilds"
		assert.True(t, set.Has("users"))

		leaked := set.Permissions()
		leaked[0] = "tokens"
		assert.True(t, set.Has("users"))
	})
}

// BenchmarkHasPermissions benchmarks the truncation loop on a miss,
// the worst case
func BenchmarkHasPermissions(b *testing.B) {
	granted := []string{"tokens", "urls", "users.pronouns", "guilds.bans"}
	for i := 0; i < b.N; i++ {
		HasPermissions("admin.urls.manage.extra", granted)
	}
}
