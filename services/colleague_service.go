package services

import (
	"context"
	"fmt"
	"log/slog"
	"warehouse-portal/auth"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"
	"warehouse-portal/repositories"
)

type IColleagueService interface {
	AddColleague(ctx context.Context, command domain.AddColleagueCommand) error
	EditColleague(ctx context.Context, command domain.EditColleagueCommand) error
	DeleteColleague(ctx context.Context, tenantID, address string) error
	ListColleagues(ctx context.Context, tenantID, group string) ([]domain.Contact, error)
}

type ColleagueService struct {
	log          *slog.Logger
	contacts     repositories.IContactRepository
	groups       repositories.IGroupRepository
	licences     repositories.ILicenceRepository
	enforceSeats bool
	now          domain.Clock
}

func NewColleagueService(log *slog.Logger, contacts repositories.IContactRepository, groups repositories.IGroupRepository,
	licences repositories.ILicenceRepository, enforceSeats bool, now domain.Clock) *ColleagueService {
	return &ColleagueService{
		log:          log,
		contacts:     contacts,
		groups:       groups,
		licences:     licences,
		enforceSeats: enforceSeats,
		now:          now,
	}
}

// AddColleague creates a contact in an existing group. The password is
// checked against the policy and only its hash is stored.
func (s *ColleagueService) AddColleague(ctx context.Context, command domain.AddColleagueCommand) error {
	if err := auth.Validate(command); err != nil {
		return err
	}
	if err := auth.ValidatePassword(command.Password); err != nil {
		return err
	}
	if _, err := s.groups.GetGroup(ctx, command.TenantID, command.Group); err != nil {
		return err
	}
	if s.enforceSeats {
		if err := s.checkSeats(ctx, command.TenantID); err != nil {
			return err
		}
	}

	hash, err := auth.HashPassword(command.Password)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}
	err = s.contacts.CreateContact(ctx, domain.Contact{
		TenantID:     command.TenantID,
		Address:      command.Address,
		Group:        command.Group,
		PasswordHash: hash,
		Role:         command.Role,
		FirstName:    command.FirstName,
		LastName:     command.LastName,
	})
	if err != nil {
		return err
	}
	s.log.Info("Colleague added", "tenant", command.TenantID, "address", command.Address, "group", command.Group)
	return nil
}

// checkSeats fails when the tenant already has as many contacts as its
// unexpired licences grant.
func (s *ColleagueService) checkSeats(ctx context.Context, tenantID string) error {
	licences, err := s.licences.ListLicences(ctx, tenantID)
	if err != nil {
		return err
	}
	now := domain.FormatTimestamp(s.now())
	seats := 0
	for _, licence := range licences {
		if licence.ActiveAt(now) {
			seats += licence.Seats
		}
	}
	contacts, err := s.contacts.FindContacts(ctx, repositories.ContactFilter{TenantID: tenantID})
	if err != nil {
		return err
	}
	if len(contacts) >= seats {
		return fmt.Errorf("%w: %d of %d seats used", apperr.ErrLicenceExhausted, len(contacts), seats)
	}
	return nil
}

func (s *ColleagueService) EditColleague(ctx context.Context, command domain.EditColleagueCommand) error {
	if err := auth.Validate(command); err != nil {
		return err
	}
	if _, err := s.groups.GetGroup(ctx, command.TenantID, command.Group); err != nil {
		return err
	}
	return s.contacts.UpdateContact(ctx, command.TenantID, command.Address, command.Group, command.Role)
}

func (s *ColleagueService) DeleteColleague(ctx context.Context, tenantID, address string) error {
	return s.contacts.DeleteContact(ctx, tenantID, address)
}

// ListColleagues returns the contacts of the tenant, restricted to one group
// when group is not empty.
func (s *ColleagueService) ListColleagues(ctx context.Context, tenantID, group string) ([]domain.Contact, error) {
	return s.contacts.FindContacts(ctx, repositories.ContactFilter{TenantID: tenantID, Group: group})
}
