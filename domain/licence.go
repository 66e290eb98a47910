package domain

// Licence grants a tenant a number of colleague seats until it expires.
type Licence struct {
	TenantID  string
	Key       string
	Seats     int
	ExpiresAt string // timestamp format, empty means no expiry
}

// ActiveAt reports whether the licence is still valid at the given timestamp.
// Both sides use the naive timestamp format, which sorts lexicographically.
func (l Licence) ActiveAt(now string) bool {
	return l.ExpiresAt == "" || l.ExpiresAt > now
}

// Device is a handheld terminal registered to a tenant, optionally assigned
// to one contact.
type Device struct {
	TenantID   string
	ID         string
	Label      string
	AssignedTo string
	CreatedAt  string
}
