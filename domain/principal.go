package domain

// Principal is the authenticated user a request acts on behalf of.
type Principal struct {
	TenantID string
	Address  string
	Role     Role
	// Name is the display name stamped on outgoing messages
	Name string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
