package domain

// Action is the closed set of gated views and operations.
type Action string

const (
	ActionViewCatalog   Action = "view_catalog"
	ActionPurchase      Action = "purchase"
	ActionViewOwnOrders Action = "view_own_orders"
	ActionManageCatalog Action = "manage_catalog"
)

// Decision is the outcome of an access policy evaluation.
type Decision int

const (
	Allow Decision = iota
	DenyNeedsLogin
	DenyWrongRole
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyNeedsLogin:
		return "deny_needs_login"
	case DenyWrongRole:
		return "deny_wrong_role"
	default:
		return "unknown"
	}
}

// Evaluate maps (session, action) to an access decision. session is nil for
// an anonymous actor. It is consulted both when deciding what to render and
// again immediately before dispatching any mutating call — the UI having
// hidden a control is never trusted.
func Evaluate(session *Session, action Action) Decision {
	if action == ActionViewCatalog {
		return Allow
	}

	if session == nil {
		return DenyNeedsLogin
	}

	switch action {
	case ActionPurchase, ActionViewOwnOrders:
		if session.Role == RoleCustomer {
			return Allow
		}
		return DenyWrongRole
	case ActionManageCatalog:
		if session.Role == RoleAdmin {
			return Allow
		}
		return DenyWrongRole
	default:
		return DenyWrongRole
	}
}
