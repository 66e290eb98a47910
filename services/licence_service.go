package services

import (
	"context"
	"fmt"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"
	"warehouse-portal/repositories"

	"github.com/google/uuid"
)

type ILicenceService interface {
	AddLicence(ctx context.Context, tenantID string, seats int, expiresAt string) (domain.Licence, error)
	ListLicences(ctx context.Context, tenantID string) ([]domain.Licence, error)
	DeleteLicence(ctx context.Context, tenantID, key string) error
}

type LicenceService struct {
	licences repositories.ILicenceRepository
}

func NewLicenceService(licences repositories.ILicenceRepository) *LicenceService {
	return &LicenceService{licences: licences}
}

// AddLicence issues a licence with a fresh key. expiresAt is empty for a
// licence that never expires.
func (s *LicenceService) AddLicence(ctx context.Context, tenantID string, seats int, expiresAt string) (domain.Licence, error) {
	if seats <= 0 {
		return domain.Licence{}, fmt.Errorf("%w: seats must be positive", apperr.ErrValidation)
	}
	if expiresAt != "" {
		if _, err := domain.ParseTimestamp(expiresAt); err != nil {
			return domain.Licence{}, fmt.Errorf("%w: expiry %q: %v", apperr.ErrValidation, expiresAt, err)
		}
	}
	licence := domain.Licence{TenantID: tenantID, Key: uuid.NewString(), Seats: seats, ExpiresAt: expiresAt}
	if err := s.licences.CreateLicence(ctx, licence); err != nil {
		return domain.Licence{}, err
	}
	return licence, nil
}

func (s *LicenceService) ListLicences(ctx context.Context, tenantID string) ([]domain.Licence, error) {
	return s.licences.ListLicences(ctx, tenantID)
}

func (s *LicenceService) DeleteLicence(ctx context.Context, tenantID, key string) error {
	return s.licences.DeleteLicence(ctx, tenantID, key)
}
