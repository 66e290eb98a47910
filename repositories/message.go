//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"
	"warehouse-portal/domain"
	"warehouse-portal/storage"

	"github.com/dgraph-io/badger/v4"
)

type IMessageRepository interface {
	StoreMessage(ctx context.Context, message domain.Message) error
	ListConversation(ctx context.Context, key domain.MessageKey) ([]domain.Message, error)
	ListMessages(ctx context.Context, tenantID string) ([]domain.Message, error)
	FindByCorrelation(ctx context.Context, tenantID, correlationID string) ([]domain.Message, error)
}

type MessageRepository struct {
	table storage.Table[domain.Message]
}

func NewMessageRepository(db *badger.DB, config storage.Config) *MessageRepository {
	return &MessageRepository{table: storage.NewTable[domain.Message](db, config.MessagesTable, config.PageSize)}
}

// StoreMessage persists a message row.
// The key is (tenant, destination, timestamp, row id): the naive timestamp
// sorts lexicographically, so a conversation scan comes out in send order,
// and the row id keeps two sends in the same millisecond apart.
func (m *MessageRepository) StoreMessage(ctx context.Context, message domain.Message) error {
	return m.table.Put(ctx, message,
		message.Key.TenantID, message.Key.Destination, message.Timestamp, message.ID)
}

// ListConversation returns every row stored under one destination, oldest first.
func (m *MessageRepository) ListConversation(ctx context.Context, key domain.MessageKey) ([]domain.Message, error) {
	return m.table.Scan(ctx, nil, key.TenantID, key.Destination)
}

// ListMessages returns every row of the tenant, grouped by destination.
func (m *MessageRepository) ListMessages(ctx context.Context, tenantID string) ([]domain.Message, error) {
	return m.table.Scan(ctx, nil, tenantID)
}

func (m *MessageRepository) FindByCorrelation(ctx context.Context, tenantID, correlationID string) ([]domain.Message, error) {
	return m.table.Scan(ctx, func(message domain.Message) bool {
		return message.CorrelationID == correlationID
	}, tenantID)
}
