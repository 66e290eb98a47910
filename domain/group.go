package domain

// Group is a named set of contacts inside a tenant. Identity is (TenantID, Name),
// so a rename is a delete followed by an insert.
type Group struct {
	TenantID string
	Name     string
	// Message is the free-text welcome message attached to the group.
	Message string
}

// TenantScope decides whether group lookups honour the tenant boundary.
type TenantScope string

const (
	// TenantScoped restricts group existence checks and orphan reassignment
	// to the caller's tenant.
	TenantScoped TenantScope = "tenant"
	// GlobalScope matches group names across every tenant, as the legacy
	// portal did.
	GlobalScope TenantScope = "global"
)

func (s TenantScope) Valid() bool {
	return s == TenantScoped || s == GlobalScope
}
