package ravy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPermissionSource struct {
	set GrantedSet
}

func (s stubPermissionSource) GrantedPermissions() GrantedSet {
	return s.set
}

// TestGuardCheck tests the pre-check against populated snapshots
func TestGuardCheck(t *testing.T) {
	tests := []struct {
		name     string
		granted  []string
		required string
		denied   bool
	}{
		{
			name:     "Exact grant passes",
			granted:  []string{"users"},
			required: "users",
			denied:   false,
		},
		{
			name:     "Broader grant passes",
			granted:  []string{"users"},
			required: "users.bans",
			denied:   false,
		},
		{
			name:     "Empty set denies",
			granted:  []string{},
			required: "users",
			denied:   true,
		},
		{
			name:     "Narrower grant denies broader requirement",
			granted:  []string{"users.bans"},
			required: "users",
			denied:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuard(stubPermissionSource{set: NewGrantedSet(tt.granted)})
			err := guard.Check(tt.required)

			if tt.denied {
				require.Error(t, err)
				assert.True(t, IsAccessDenied(err))

				var accessErr *AccessError
				require.ErrorAs(t, err, &accessErr)
				assert.Equal(t, tt.required, accessErr.Required)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestGuardPanicsWhenUnset tests that an unfetched snapshot is treated as
// a lifecycle bug, not an authorization failure
func TestGuardPanicsWhenUnset(t *testing.T) {
	guard := NewGuard(stubPermissionSource{})

	calls := 0
	wrapped := Guarded(guard, "users", func(ctx context.Context) (int, error) {
		calls++
		return 0, nil
	})

	assert.Panics(t, func() {
		_, _ = wrapped(context.Background())
	})
	assert.Equal(t, 0, calls, "wrapped operation must never run on an unset snapshot")
}

// TestGuardedDenied tests the local short-circuit on denial
func TestGuardedDenied(t *testing.T) {
	guard := NewGuard(stubPermissionSource{set: NewGrantedSet(nil)})

	calls := 0
	wrapped := Guarded(guard, "x", func(ctx context.Context) (string, error) {
		calls++
		return "result", nil
	})

	result, err := wrapped(context.Background())

	require.Error(t, err)
	assert.True(t, IsAccessDenied(err))

	var accessErr *AccessError
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, "x", accessErr.Required)

	assert.Empty(t, result)
	assert.Equal(t, 0, calls, "wrapped operation must never run on denial")
}

// TestGuardedPassThrough tests transparent delegation on success
func TestGuardedPassThrough(t *testing.T) {
	guard := NewGuard(stubPermissionSource{set: NewGrantedSet([]string{"x"})})

	calls := 0
	wrapped := Guarded(guard, "x.y", func(ctx context.Context) (int, error) {
		calls++
		return 42, nil
	})

	result, err := wrapped(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 1, calls, "wrapped operation must run exactly once")
}

// TestGuardedErrorPassThrough tests that wrapped-operation errors surface verbatim
func TestGuardedErrorPassThrough(t *testing.T) {
	guard := NewGuard(stubPermissionSource{set: NewGrantedSet([]string{"x"})})

	boom := errors.New("transport exploded")
	wrapped := Guarded(guard, "x", func(ctx context.Context) (int, error) {
		return 0, boom
	})

	_, err := wrapped(context.Background())

	assert.Equal(t, boom, err, "guard must not wrap or transform the operation's error")
}

// TestGuardObservesSnapshotAtCallTime tests that each check reads the
// source fresh rather than capturing a set at wrap time
func TestGuardObservesSnapshotAtCallTime(t *testing.T) {
	source := &mutablePermissionSource{set: NewGrantedSet(nil)}
	guard := NewGuard(source)

	wrapped := Guarded(guard, "users", func(ctx context.Context) (bool, error) {
		return true, nil
	})

	_, err := wrapped(context.Background())
	assert.True(t, IsAccessDenied(err))

	source.set = NewGrantedSet([]string{"users"})

	ok, err := wrapped(context.Background())
	assert.NoError(t, err)
	assert.True(t, ok)
}

type mutablePermissionSource struct {
	set GrantedSet
}

func (s *mutablePermissionSource) GrantedPermissions() GrantedSet {
	return s.set
}
