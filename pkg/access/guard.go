package access

// Session is the guard's view of the authentication state: who is logged in,
// and whether the startup identity resolution is still in flight.
type Session struct {
	Principal *Principal
	Resolving bool
}

// Decision is the outcome of evaluating a navigation target against the
// current session. Decisions are routing outcomes, not errors.
type Decision int

const (
	// Pending means identity resolution has not finished; callers must
	// render nothing rather than redirect.
	Pending Decision = iota
	// DenyUnauthenticated means no principal is established; callers
	// redirect to the login entry point, replacing history.
	DenyUnauthenticated
	// DenyForbidden means the principal lacks a required role; callers
	// redirect to the default landing path, replacing history.
	DenyForbidden
	// Allow means the caller may render the guarded target.
	Allow
)

// String returns a stable name for logging.
func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case DenyUnauthenticated:
		return "deny_unauthenticated"
	case DenyForbidden:
		return "deny_forbidden"
	case Allow:
		return "allow"
	}
	return "unknown"
}

// Evaluate decides whether the session may reach a guarded target. It is a
// pure function of its arguments. While the session is resolving the answer
// is always Pending — never DenyUnauthenticated — so a slow startup identity
// check cannot bounce the user to the login page.
func Evaluate(s Session, rr RouteRequirement) Decision {
	if s.Resolving {
		return Pending
	}
	if s.Principal == nil {
		return DenyUnauthenticated
	}
	if !rr.Allows(s.Principal.Role) {
		return DenyForbidden
	}
	return Allow
}
