package domain

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleStandard Role = "Standard"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStandard
}

// Contact is a member of staff. Identity is (TenantID, Address).
type Contact struct {
	TenantID     string
	Address      string
	Group        string
	PasswordHash string `cbor:"PasswordHash" json:"-"`
	Role         Role
	FirstName    string
	LastName     string
}

// DisplayName falls back to the address when no name is known.
func (c Contact) DisplayName() string {
	switch {
	case c.FirstName != "" && c.LastName != "":
		return c.FirstName + " " + c.LastName
	case c.FirstName != "":
		return c.FirstName
	default:
		return c.Address
	}
}

func (c Contact) IsAdmin() bool {
	return c.Role == RoleAdmin
}
