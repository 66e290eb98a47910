package services

import (
	"context"
	"fmt"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"
	"warehouse-portal/repositories"

	"github.com/google/uuid"
)

type IDeviceService interface {
	AddDevice(ctx context.Context, tenantID, label string) (domain.Device, error)
	ListDevices(ctx context.Context, tenantID string) ([]domain.Device, error)
	AssignDevice(ctx context.Context, tenantID, deviceID, address string) error
	DeleteDevice(ctx context.Context, tenantID, deviceID string) error
}

type DeviceService struct {
	devices  repositories.IDeviceRepository
	contacts repositories.IContactRepository
	now      domain.Clock
}

func NewDeviceService(devices repositories.IDeviceRepository, contacts repositories.IContactRepository, now domain.Clock) *DeviceService {
	return &DeviceService{devices: devices, contacts: contacts, now: now}
}

func (s *DeviceService) AddDevice(ctx context.Context, tenantID, label string) (domain.Device, error) {
	if label == "" {
		return domain.Device{}, fmt.Errorf("%w: label", apperr.ErrValidation)
	}
	device := domain.Device{
		TenantID:  tenantID,
		ID:        uuid.NewString(),
		Label:     label,
		CreatedAt: domain.FormatTimestamp(s.now()),
	}
	if err := s.devices.CreateDevice(ctx, device); err != nil {
		return domain.Device{}, err
	}
	return device, nil
}

func (s *DeviceService) ListDevices(ctx context.Context, tenantID string) ([]domain.Device, error) {
	return s.devices.ListDevices(ctx, tenantID)
}

// AssignDevice hands the device to a contact of the same tenant. An empty
// address releases it.
func (s *DeviceService) AssignDevice(ctx context.Context, tenantID, deviceID, address string) error {
	if address != "" {
		if _, err := s.contacts.GetContact(ctx, tenantID, address); err != nil {
			return err
		}
	}
	return s.devices.AssignDevice(ctx, tenantID, deviceID, address)
}

func (s *DeviceService) DeleteDevice(ctx context.Context, tenantID, deviceID string) error {
	return s.devices.DeleteDevice(ctx, tenantID, deviceID)
}
