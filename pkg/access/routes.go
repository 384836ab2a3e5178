package access

// RouteRequirement declares which roles may reach a navigable path.
// A nil AllowedRoles means unrestricted: any authenticated principal,
// any role.
type RouteRequirement struct {
	Path         string
	AllowedRoles []Role
}

// Unrestricted reports whether any authenticated principal may reach the path.
func (rr RouteRequirement) Unrestricted() bool {
	return rr.AllowedRoles == nil
}

// Allows reports whether the requirement admits the given role.
func (rr RouteRequirement) Allows(r Role) bool {
	if rr.Unrestricted() {
		return true
	}
	for _, allowed := range rr.AllowedRoles {
		if allowed == r {
			return true
		}
	}
	return false
}

// routeRequirements is the central route table: exactly one entry per
// navigable path. Guard decisions consult this table instead of per-route
// conditional wrapping, so the policy stays auditable in one place.
var routeRequirements = []RouteRequirement{
	{Path: "/"},
	{Path: "/transactions"},
	{Path: "/accounts"},
	{Path: "/categories"},
	{Path: "/reports"},
	{Path: "/search"},
	{Path: "/budgets", AllowedRoles: []Role{RoleAdmin, RoleMember}},
	{Path: "/goals", AllowedRoles: []Role{RoleAdmin, RoleMember}},
	{Path: "/bills", AllowedRoles: []Role{RoleAdmin, RoleMember}},
	{Path: "/transfers", AllowedRoles: []Role{RoleAdmin, RoleMember}},
	{Path: "/import-export", AllowedRoles: []Role{RoleAdmin, RoleMember}},
	{Path: "/allowances", AllowedRoles: []Role{RoleAdmin, RoleChild}},
	{Path: "/users", AllowedRoles: []Role{RoleAdmin}},
}

// RouteRequirements returns a copy of the route table.
func RouteRequirements() []RouteRequirement {
	out := make([]RouteRequirement, len(routeRequirements))
	copy(out, routeRequirements)
	return out
}

// RequirementFor looks up the requirement for a navigable path.
func RequirementFor(path string) (RouteRequirement, bool) {
	for _, rr := range routeRequirements {
		if rr.Path == path {
			return rr, true
		}
	}
	return RouteRequirement{}, false
}
