package repositories

import (
	"context"
	"warehouse-portal/domain"
	"warehouse-portal/storage"

	"github.com/dgraph-io/badger/v4"
)

type IDeviceRepository interface {
	CreateDevice(ctx context.Context, device domain.Device) error
	ListDevices(ctx context.Context, tenantID string) ([]domain.Device, error)
	AssignDevice(ctx context.Context, tenantID, deviceID, address string) error
	DeleteDevice(ctx context.Context, tenantID, deviceID string) error
}

type DeviceRepository struct {
	table storage.Table[domain.Device]
}

func NewDeviceRepository(db *badger.DB, config storage.Config) *DeviceRepository {
	return &DeviceRepository{table: storage.NewTable[domain.Device](db, config.DevicesTable, config.PageSize)}
}

func (r *DeviceRepository) CreateDevice(ctx context.Context, device domain.Device) error {
	return r.table.Create(ctx, device, device.TenantID, device.ID)
}

func (r *DeviceRepository) ListDevices(ctx context.Context, tenantID string) ([]domain.Device, error) {
	return r.table.Scan(ctx, nil, tenantID)
}

// AssignDevice hands the device to a contact. An empty address releases it.
func (r *DeviceRepository) AssignDevice(ctx context.Context, tenantID, deviceID, address string) error {
	return r.table.Update(ctx, func(d *domain.Device) error {
		d.AssignedTo = address
		return nil
	}, tenantID, deviceID)
}

func (r *DeviceRepository) DeleteDevice(ctx context.Context, tenantID, deviceID string) error {
	return r.table.Delete(ctx, tenantID, deviceID)
}
