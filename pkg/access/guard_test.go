package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restricted(roles ...Role) RouteRequirement {
	return RouteRequirement{Path: "/x", AllowedRoles: roles}
}

func TestEvaluate_PendingWhileResolving(t *testing.T) {
	reqs := []RouteRequirement{
		{Path: "/"},
		restricted(RoleAdmin),
		restricted(RoleAdmin, RoleMember),
	}
	sessions := []Session{
		{Resolving: true},
		{Resolving: true, Principal: &Principal{Role: RoleAdmin}},
		{Resolving: true, Principal: &Principal{Role: RoleChild}},
	}
	for _, s := range sessions {
		for _, rr := range reqs {
			assert.Equal(t, Pending, Evaluate(s, rr))
		}
	}
}

func TestEvaluate_DenyUnauthenticated(t *testing.T) {
	s := Session{Resolving: false}
	assert.Equal(t, DenyUnauthenticated, Evaluate(s, RouteRequirement{Path: "/"}))
	assert.Equal(t, DenyUnauthenticated, Evaluate(s, restricted(RoleAdmin)))
}

func TestEvaluate_DenyForbidden(t *testing.T) {
	s := Session{Principal: &Principal{Role: RoleChild}}
	assert.Equal(t, DenyForbidden, Evaluate(s, restricted(RoleAdmin, RoleMember)))
}

func TestEvaluate_AllowUnrestricted(t *testing.T) {
	for _, role := range Roles {
		s := Session{Principal: &Principal{Role: role}}
		assert.Equal(t, Allow, Evaluate(s, RouteRequirement{Path: "/"}))
	}
}

func TestEvaluate_AllowMatchingRole(t *testing.T) {
	s := Session{Principal: &Principal{Role: RoleMember}}
	assert.Equal(t, Allow, Evaluate(s, restricted(RoleAdmin, RoleMember)))
}

func TestRouteTable_OneRequirementPerNavPath(t *testing.T) {
	seen := map[string]int{}
	for _, rr := range RouteRequirements() {
		seen[rr.Path]++
	}
	for _, item := range NavItems() {
		assert.Equal(t, 1, seen[item.Path], "path %s", item.Path)
	}
	assert.Len(t, seen, len(NavItems()))
}

// The route table and the navigation table must agree: a role that can see a
// nav entry must be admitted by that path's requirement, with the unrestricted
// pages open to every role.
func TestRouteTable_ConsistentWithNavigation(t *testing.T) {
	for _, item := range NavItems() {
		rr, ok := RequirementFor(item.Path)
		require.True(t, ok, "missing requirement for %s", item.Path)
		for _, role := range Roles {
			if item.VisibleTo(role) {
				assert.True(t, rr.Allows(role), "%s should admit %s", item.Path, role)
			}
		}
	}
}

func TestRequirementFor_UnknownPath(t *testing.T) {
	_, ok := RequirementFor("/nope")
	assert.False(t, ok)
}

func TestParseRole(t *testing.T) {
	for _, role := range Roles {
		parsed, err := ParseRole(string(role))
		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}
	_, err := ParseRole("owner")
	assert.Error(t, err)
}

func TestCapabilities(t *testing.T) {
	assert.True(t, CanManageCategories(RoleAdmin))
	assert.True(t, CanManageCategories(RoleMember))
	assert.False(t, CanManageCategories(RoleChild))

	for _, check := range []func(Role) bool{
		CanEditCategories, CanManageAllowances, CanManageBills,
		CanManageBudgets, CanCompareFamily,
	} {
		assert.True(t, check(RoleAdmin))
		assert.False(t, check(RoleMember))
		assert.False(t, check(RoleChild))
	}
}
