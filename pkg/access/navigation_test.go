package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func navPaths(items []NavItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Path
	}
	return out
}

func TestNavigationFor_Admin(t *testing.T) {
	items := NavigationFor(RoleAdmin)
	require.Len(t, items, 13)
	assert.Equal(t, []string{
		"/", "/transactions", "/accounts", "/categories", "/reports",
		"/search", "/budgets", "/goals", "/bills", "/transfers",
		"/import-export", "/allowances", "/users",
	}, navPaths(items))
}

func TestNavigationFor_Member(t *testing.T) {
	items := NavigationFor(RoleMember)
	require.Len(t, items, 11)
	paths := navPaths(items)
	assert.NotContains(t, paths, "/users")
	assert.NotContains(t, paths, "/allowances")
	assert.Contains(t, paths, "/budgets")
	assert.Contains(t, paths, "/import-export")
}

func TestNavigationFor_Child(t *testing.T) {
	items := NavigationFor(RoleChild)
	require.Len(t, items, 7)
	assert.Equal(t, []string{
		"/", "/transactions", "/accounts", "/categories", "/reports",
		"/search", "/allowances",
	}, navPaths(items))
}

// Every returned item must be visible to the requested role, every omitted
// item must not be, and declaration order must be preserved.
func TestNavigationFor_StableFilterProperty(t *testing.T) {
	master := NavItems()
	for _, role := range Roles {
		items := NavigationFor(role)

		for _, item := range items {
			assert.True(t, item.VisibleTo(role), "%s returned for %s", item.Path, role)
		}

		// Order: walk the master list and check the filtered list is the
		// subsequence of visible entries.
		idx := 0
		for _, m := range master {
			if !m.VisibleTo(role) {
				continue
			}
			require.Less(t, idx, len(items))
			assert.Equal(t, m.Path, items[idx].Path, "order for role %s", role)
			idx++
		}
		assert.Equal(t, idx, len(items), "no extra entries for role %s", role)
	}
}

func TestNavigationFor_Truncation(t *testing.T) {
	full := NavigationFor(RoleAdmin)
	compact := full[:5]
	assert.Equal(t, []string{"/", "/transactions", "/accounts", "/categories", "/reports"},
		navPaths(compact))
	// Slicing must not disturb the full list.
	assert.Equal(t, 13, len(full))
}

func TestNavItems_NoEmptyRoleSets(t *testing.T) {
	for _, item := range NavItems() {
		assert.NotEmpty(t, item.Roles, "nav item %s must be gated to at least one role", item.Path)
	}
}

func TestNavItems_ReturnsCopy(t *testing.T) {
	items := NavItems()
	items[0].Label = "mutated"
	assert.Equal(t, "Dashboard", NavItems()[0].Label)
}
