package services

import (
	"context"
	"errors"
	"fmt"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"
)

// BootstrapAdmin provisions the first administrator of a tenant together
// with its group. Rows that already exist are left untouched, so it can run
// at every boot.
func BootstrapAdmin(ctx context.Context, groups IGroupService, colleagues IColleagueService,
	tenantID, group, address, password string) error {
	if err := groups.AddGroup(ctx, tenantID, group, ""); err != nil && !errors.Is(err, apperr.ErrAlreadyExists) {
		return fmt.Errorf("bootstrap group %s: %w", group, err)
	}
	err := colleagues.AddColleague(ctx, domain.AddColleagueCommand{
		TenantID: tenantID,
		Address:  address,
		Group:    group,
		Password: password,
		Role:     domain.RoleAdmin,
	})
	if err != nil && !errors.Is(err, apperr.ErrAlreadyExists) {
		return fmt.Errorf("bootstrap admin %s: %w", address, err)
	}
	return nil
}
