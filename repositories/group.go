//go:generate go run go.uber.org/mock/mockgen -source=group.go -destination=../mocks/mock_group_repository.go -package=mocks
package repositories

import (
	"context"
	"warehouse-portal/domain"
	"warehouse-portal/storage"

	"github.com/dgraph-io/badger/v4"
)

type IGroupRepository interface {
	CreateGroup(ctx context.Context, group domain.Group) error
	GetGroup(ctx context.Context, tenantID, name string) (domain.Group, error)
	ListGroups(ctx context.Context, tenantID string) ([]domain.Group, error)
	// FindGroupsByName looks a name up in every tenant.
	FindGroupsByName(ctx context.Context, name string) ([]domain.Group, error)
	SetGroupMessage(ctx context.Context, tenantID, name, message string) error
	DeleteGroup(ctx context.Context, tenantID, name string) error
}

type GroupRepository struct {
	table storage.Table[domain.Group]
}

func NewGroupRepository(db *badger.DB, config storage.Config) *GroupRepository {
	return &GroupRepository{table: storage.NewTable[domain.Group](db, config.GroupsTable, config.PageSize)}
}

func (r *GroupRepository) CreateGroup(ctx context.Context, group domain.Group) error {
	return r.table.Create(ctx, group, group.TenantID, group.Name)
}

func (r *GroupRepository) GetGroup(ctx context.Context, tenantID, name string) (domain.Group, error) {
	return r.table.Get(ctx, tenantID, name)
}

func (r *GroupRepository) ListGroups(ctx context.Context, tenantID string) ([]domain.Group, error) {
	return r.table.Scan(ctx, nil, tenantID)
}

func (r *GroupRepository) FindGroupsByName(ctx context.Context, name string) ([]domain.Group, error) {
	return r.table.Scan(ctx, func(g domain.Group) bool {
		return g.Name == name
	})
}

func (r *GroupRepository) SetGroupMessage(ctx context.Context, tenantID, name, message string) error {
	return r.table.Update(ctx, func(g *domain.Group) error {
		g.Message = message
		return nil
	}, tenantID, name)
}

func (r *GroupRepository) DeleteGroup(ctx context.Context, tenantID, name string) error {
	return r.table.Delete(ctx, tenantID, name)
}
