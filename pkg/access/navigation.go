package access

// NavItem is a single entry in the role-filtered navigation menu.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
	Roles []Role `json:"roles"`
}

// allRoles gates an item to every authenticated role.
var allRoles = []Role{RoleAdmin, RoleMember, RoleChild}

// navItems is the master navigation list. Declaration order is the display
// order everywhere; NavigationFor must never re-sort it. Every item is gated
// to at least one role.
var navItems = []NavItem{
	{Label: "Dashboard", Path: "/", Icon: "LayoutDashboard", Roles: allRoles},
	{Label: "Transactions", Path: "/transactions", Icon: "ArrowLeftRight", Roles: allRoles},
	{Label: "Accounts", Path: "/accounts", Icon: "Wallet", Roles: allRoles},
	{Label: "Categories", Path: "/categories", Icon: "Tag", Roles: allRoles},
	{Label: "Reports", Path: "/reports", Icon: "BarChart3", Roles: allRoles},
	{Label: "Search", Path: "/search", Icon: "Search", Roles: allRoles},
	{Label: "Budgets", Path: "/budgets", Icon: "PiggyBank", Roles: []Role{RoleAdmin, RoleMember}},
	{Label: "Goals", Path: "/goals", Icon: "Target", Roles: []Role{RoleAdmin, RoleMember}},
	{Label: "Bills", Path: "/bills", Icon: "Receipt", Roles: []Role{RoleAdmin, RoleMember}},
	{Label: "Transfers", Path: "/transfers", Icon: "ArrowRightLeft", Roles: []Role{RoleAdmin, RoleMember}},
	{Label: "Import/Export", Path: "/import-export", Icon: "FileUpDown", Roles: []Role{RoleAdmin, RoleMember}},
	{Label: "Allowances", Path: "/allowances", Icon: "HandCoins", Roles: []Role{RoleAdmin, RoleChild}},
	{Label: "Users", Path: "/users", Icon: "Users", Roles: []Role{RoleAdmin}},
}

// NavItems returns a copy of the master navigation list in declaration order.
func NavItems() []NavItem {
	out := make([]NavItem, len(navItems))
	copy(out, navItems)
	return out
}

// VisibleTo reports whether the item's role set contains r.
func (n NavItem) VisibleTo(r Role) bool {
	for _, allowed := range n.Roles {
		if allowed == r {
			return true
		}
	}
	return false
}

// NavigationFor returns the ordered navigation entries visible to the given
// role. The filter is stable: declaration order is preserved, and compact
// presentations may slice the result (e.g. the first five entries for a
// bottom-tab layout) without changing its semantics.
func NavigationFor(r Role) []NavItem {
	var out []NavItem
	for _, item := range navItems {
		if item.VisibleTo(r) {
			out = append(out, item)
		}
	}
	return out
}
