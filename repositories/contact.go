//go:generate go run go.uber.org/mock/mockgen -source=contact.go -destination=../mocks/mock_contact_repository.go -package=mocks
package repositories

import (
	"context"
	"warehouse-portal/domain"
	"warehouse-portal/storage"

	"github.com/dgraph-io/badger/v4"
)

// ContactFilter selects contacts. An empty TenantID matches every tenant,
// which only the legacy global group scope relies on.
type ContactFilter struct {
	TenantID       string
	Group          string
	ExcludeAddress string
}

func (f ContactFilter) match(c domain.Contact) bool {
	if f.TenantID != "" && c.TenantID != f.TenantID {
		return false
	}
	if f.Group != "" && c.Group != f.Group {
		return false
	}
	return f.ExcludeAddress == "" || c.Address != f.ExcludeAddress
}

type IContactRepository interface {
	CreateContact(ctx context.Context, contact domain.Contact) error
	GetContact(ctx context.Context, tenantID, address string) (domain.Contact, error)
	FindContacts(ctx context.Context, filter ContactFilter) ([]domain.Contact, error)
	SetContactGroup(ctx context.Context, tenantID, address, group string) error
	UpdateContact(ctx context.Context, tenantID, address, group string, role domain.Role) error
	DeleteContact(ctx context.Context, tenantID, address string) error
}

type ContactRepository struct {
	table storage.Table[domain.Contact]
}

func NewContactRepository(db *badger.DB, config storage.Config) *ContactRepository {
	return &ContactRepository{table: storage.NewTable[domain.Contact](db, config.ContactsTable, config.PageSize)}
}

// CreateContact fails with ErrAlreadyExists when the address is taken in the tenant.
func (r *ContactRepository) CreateContact(ctx context.Context, contact domain.Contact) error {
	return r.table.Create(ctx, contact, contact.TenantID, contact.Address)
}

func (r *ContactRepository) GetContact(ctx context.Context, tenantID, address string) (domain.Contact, error) {
	return r.table.Get(ctx, tenantID, address)
}

// FindContacts scans the tenant range, or the whole table when the filter
// has no tenant.
func (r *ContactRepository) FindContacts(ctx context.Context, filter ContactFilter) ([]domain.Contact, error) {
	if filter.TenantID == "" {
		return r.table.Scan(ctx, filter.match)
	}
	return r.table.Scan(ctx, filter.match, filter.TenantID)
}

func (r *ContactRepository) SetContactGroup(ctx context.Context, tenantID, address, group string) error {
	return r.table.Update(ctx, func(c *domain.Contact) error {
		c.Group = group
		return nil
	}, tenantID, address)
}

func (r *ContactRepository) UpdateContact(ctx context.Context, tenantID, address, group string, role domain.Role) error {
	return r.table.Update(ctx, func(c *domain.Contact) error {
		c.Group = group
		c.Role = role
		return nil
	}, tenantID, address)
}

func (r *ContactRepository) DeleteContact(ctx context.Context, tenantID, address string) error {
	return r.table.Delete(ctx, tenantID, address)
}
