package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"warehouse-portal/auth"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"
	"warehouse-portal/metrics"
	"warehouse-portal/repositories"
)

const DefaultFallbackGroup = "Other"

type IGroupService interface {
	AddGroup(ctx context.Context, tenantID, name, message string) error
	ListGroups(ctx context.Context, tenantID string) ([]domain.Group, error)
	DeleteGroup(ctx context.Context, tenantID, name string) (ReassignReport, error)
	RenameGroup(ctx context.Context, command domain.RenameGroupCommand) (ReassignReport, error)
	EditGroupMessage(ctx context.Context, tenantID, name, message string) error
	ReassignOrphans(ctx context.Context, tenantID, group, fallback string) (ReassignReport, error)
}

// ReassignReport describes the members moved out of a group.
type ReassignReport struct {
	From     string
	To       string
	Moved    int
	Failures []WriteFailure
}

type GroupService struct {
	log      *slog.Logger
	groups   repositories.IGroupRepository
	contacts repositories.IContactRepository
	policy   ConsistencyPolicy
	scope    domain.TenantScope
	fallback string
}

func NewGroupService(log *slog.Logger, groups repositories.IGroupRepository, contacts repositories.IContactRepository,
	policy ConsistencyPolicy, scope domain.TenantScope, fallback string) *GroupService {
	if fallback == "" {
		fallback = DefaultFallbackGroup
	}
	return &GroupService{
		log:      log,
		groups:   groups,
		contacts: contacts,
		policy:   policy,
		scope:    scope,
		fallback: fallback,
	}
}

func (s *GroupService) Fallback() string {
	return s.fallback
}

func (s *GroupService) AddGroup(ctx context.Context, tenantID, name, message string) error {
	if err := auth.Validate(groupName{Name: name}); err != nil {
		return err
	}
	return s.groups.CreateGroup(ctx, domain.Group{TenantID: tenantID, Name: name, Message: message})
}

func (s *GroupService) ListGroups(ctx context.Context, tenantID string) ([]domain.Group, error) {
	return s.groups.ListGroups(ctx, tenantID)
}

// DeleteGroup removes the group row and moves its members to the fallback
// group, which is created in the tenant when missing.
func (s *GroupService) DeleteGroup(ctx context.Context, tenantID, name string) (ReassignReport, error) {
	if name == s.fallback {
		return ReassignReport{}, fmt.Errorf("%w: group %s is the fallback group", apperr.ErrForbidden, name)
	}
	var failures []WriteFailure
	if err := s.groups.DeleteGroup(ctx, tenantID, name); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return ReassignReport{}, err
		}
		failure := s.groupFailure(tenantID, StepDeleteGroup, name, err)
		failures = append(failures, failure)
		if stop := s.policy.OnFailure(failure); stop != nil {
			return ReassignReport{From: name, To: s.fallback, Failures: failures}, stop
		}
	}
	err := s.groups.CreateGroup(ctx, domain.Group{TenantID: tenantID, Name: s.fallback})
	if err != nil && !errors.Is(err, apperr.ErrAlreadyExists) {
		failure := s.groupFailure(tenantID, StepInsertGroup, s.fallback, err)
		failures = append(failures, failure)
		if stop := s.policy.OnFailure(failure); stop != nil {
			return ReassignReport{From: name, To: s.fallback, Failures: failures}, stop
		}
	}
	report, err := s.ReassignOrphans(ctx, tenantID, name, s.fallback)
	report.Failures = append(failures, report.Failures...)
	return report, err
}

// RenameGroup replaces the group row, since the name is part of its
// identity, keeps its welcome message and moves the members to the new name.
func (s *GroupService) RenameGroup(ctx context.Context, command domain.RenameGroupCommand) (ReassignReport, error) {
	if err := auth.Validate(command); err != nil {
		return ReassignReport{}, err
	}
	old, err := s.groups.GetGroup(ctx, command.TenantID, command.OldName)
	if err != nil {
		return ReassignReport{}, err
	}
	if _, err = s.groups.GetGroup(ctx, command.TenantID, command.NewName); err == nil {
		return ReassignReport{}, fmt.Errorf("%w: group %s", apperr.ErrAlreadyExists, command.NewName)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return ReassignReport{}, err
	}

	var failures []WriteFailure
	if err = s.groups.DeleteGroup(ctx, command.TenantID, command.OldName); err != nil {
		failure := s.groupFailure(command.TenantID, StepDeleteGroup, command.OldName, err)
		failures = append(failures, failure)
		if stop := s.policy.OnFailure(failure); stop != nil {
			return ReassignReport{From: command.OldName, To: command.NewName, Failures: failures}, stop
		}
	}
	renamed := domain.Group{TenantID: command.TenantID, Name: command.NewName, Message: old.Message}
	if err = s.groups.CreateGroup(ctx, renamed); err != nil {
		failure := s.groupFailure(command.TenantID, StepInsertGroup, command.NewName, err)
		failures = append(failures, failure)
		if stop := s.policy.OnFailure(failure); stop != nil {
			return ReassignReport{From: command.OldName, To: command.NewName, Failures: failures}, stop
		}
	}
	report, err := s.ReassignOrphans(ctx, command.TenantID, command.OldName, command.NewName)
	report.Failures = append(failures, report.Failures...)
	return report, err
}

// groupFailure logs a failed write on a group row.
func (s *GroupService) groupFailure(tenantID string, step Step, group string, err error) WriteFailure {
	s.log.Error("Group row write failed",
		"tenant", tenantID,
		"step", step,
		"group", group,
		"error", err)
	return WriteFailure{Step: step, Subject: group, Err: err}
}

// EditGroupMessage changes the welcome message in place.
func (s *GroupService) EditGroupMessage(ctx context.Context, tenantID, name, message string) error {
	return s.groups.SetGroupMessage(ctx, tenantID, name, message)
}

// ReassignOrphans moves every contact of group to fallback, one update at a
// time. Under GlobalScope contacts of every tenant are moved.
func (s *GroupService) ReassignOrphans(ctx context.Context, tenantID, group, fallback string) (ReassignReport, error) {
	report := ReassignReport{From: group, To: fallback}
	filter := repositories.ContactFilter{TenantID: tenantID, Group: group}
	if s.scope == domain.GlobalScope {
		filter.TenantID = ""
	}
	orphans, err := s.contacts.FindContacts(ctx, filter)
	if err != nil {
		return report, err
	}

	for _, contact := range orphans {
		if err := s.contacts.SetContactGroup(ctx, contact.TenantID, contact.Address, fallback); err != nil {
			failure := WriteFailure{Step: StepReassign, Subject: contact.Address, Err: err}
			report.Failures = append(report.Failures, failure)
			s.log.Error("Reassigning contact failed",
				"tenant", contact.TenantID,
				"step", StepReassign,
				"address", contact.Address,
				"group", fallback,
				"error", err)
			if stop := s.policy.OnFailure(failure); stop != nil {
				return report, stop
			}
			continue
		}
		report.Moved++
	}
	metrics.OrphansReassignedTotal.Add(float64(report.Moved))
	s.log.Info("Group members reassigned", "tenant", tenantID, "from", group, "to", fallback, "moved", report.Moved)
	return report, nil
}

type groupName struct {
	Name string `validate:"required,notblank"`
}
