package repositories

import (
	"context"
	"warehouse-portal/domain"
	"warehouse-portal/storage"

	"github.com/dgraph-io/badger/v4"
)

type ILicenceRepository interface {
	CreateLicence(ctx context.Context, licence domain.Licence) error
	ListLicences(ctx context.Context, tenantID string) ([]domain.Licence, error)
	DeleteLicence(ctx context.Context, tenantID, key string) error
}

type LicenceRepository struct {
	table storage.Table[domain.Licence]
}

func NewLicenceRepository(db *badger.DB, config storage.Config) *LicenceRepository {
	return &LicenceRepository{table: storage.NewTable[domain.Licence](db, config.LicencesTable, config.PageSize)}
}

func (r *LicenceRepository) CreateLicence(ctx context.Context, licence domain.Licence) error {
	return r.table.Create(ctx, licence, licence.TenantID, licence.Key)
}

func (r *LicenceRepository) ListLicences(ctx context.Context, tenantID string) ([]domain.Licence, error) {
	return r.table.Scan(ctx, nil, tenantID)
}

func (r *LicenceRepository) DeleteLicence(ctx context.Context, tenantID, key string) error {
	return r.table.Delete(ctx, tenantID, key)
}
