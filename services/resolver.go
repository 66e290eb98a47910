package services

import (
	"context"
	"errors"
	"log/slog"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"
	"warehouse-portal/repositories"
)

type IRecipientResolver interface {
	ResolveDestination(ctx context.Context, tenantID, token string) bool
	ListGroupMembers(ctx context.Context, tenantID, groupName, excludeAddress string) ([]domain.Contact, error)
}

// RecipientResolver decides whether a destination token names a group and
// enumerates the members of a group.
type RecipientResolver struct {
	log      *slog.Logger
	groups   repositories.IGroupRepository
	contacts repositories.IContactRepository
	scope    domain.TenantScope
}

func NewRecipientResolver(log *slog.Logger, groups repositories.IGroupRepository,
	contacts repositories.IContactRepository, scope domain.TenantScope) *RecipientResolver {
	return &RecipientResolver{log: log, groups: groups, contacts: contacts, scope: scope}
}

// ResolveDestination reports whether token is an existing group. Under
// GlobalScope a group of any tenant with that name counts. A lookup failure
// is logged and the token is treated as an individual address.
func (r *RecipientResolver) ResolveDestination(ctx context.Context, tenantID, token string) bool {
	if r.scope == domain.GlobalScope {
		groups, err := r.groups.FindGroupsByName(ctx, token)
		if err != nil {
			r.log.Error("Group lookup failed", "tenant", tenantID, "token", token, "error", err)
			return false
		}
		return len(groups) > 0
	}

	_, err := r.groups.GetGroup(ctx, tenantID, token)
	switch {
	case err == nil:
		return true
	case errors.Is(err, apperr.ErrNotFound):
		return false
	default:
		r.log.Error("Group lookup failed", "tenant", tenantID, "token", token, "error", err)
		return false
	}
}

// ListGroupMembers returns the tenant's contacts in groupName other than
// excludeAddress, in storage order. Membership is always tenant scoped:
// a send never reaches another warehouse.
func (r *RecipientResolver) ListGroupMembers(ctx context.Context, tenantID, groupName, excludeAddress string) ([]domain.Contact, error) {
	return r.contacts.FindContacts(ctx, repositories.ContactFilter{
		TenantID:       tenantID,
		Group:          groupName,
		ExcludeAddress: excludeAddress,
	})
}
