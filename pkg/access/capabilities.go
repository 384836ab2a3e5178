package access

// Page-level capability rules. These are finer-grained than navigation
// visibility but ride on the same role value; the server services enforce
// them and the client uses them to hide actions it could never perform.

// CanManageCategories reports whether the role may create categories.
func CanManageCategories(r Role) bool {
	return r == RoleAdmin || r == RoleMember
}

// CanEditCategories reports whether the role may update or delete categories.
func CanEditCategories(r Role) bool {
	return r == RoleAdmin
}

// CanManageAllowances reports whether the role may create or edit allowances.
func CanManageAllowances(r Role) bool {
	return r == RoleAdmin
}

// CanManageBills reports whether the role may create, edit, or delete bill
// reminders. Marking a bill as paid only needs access to the Bills page.
func CanManageBills(r Role) bool {
	return r == RoleAdmin
}

// CanManageBudgets reports whether the role may create, edit, or delete
// budgets and saving goals.
func CanManageBudgets(r Role) bool {
	return r == RoleAdmin
}

// CanCompareFamily reports whether the role may see the family comparison
// report.
func CanCompareFamily(r Role) bool {
	return r == RoleAdmin
}
