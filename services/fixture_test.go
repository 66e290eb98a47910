package services

import (
	"context"
	"log/slog"
	"testing"
	"time"
	"warehouse-portal/domain"
	"warehouse-portal/repositories"
	"warehouse-portal/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// fixture wires every repository on one in-memory Badger instance.
type fixture struct {
	log      *slog.Logger
	contacts *repositories.ContactRepository
	groups   *repositories.GroupRepository
	messages *repositories.MessageRepository
	receipts *repositories.ReceiptRepository
	licences *repositories.LicenceRepository
	devices  *repositories.DeviceRepository
}

func newFixture(t *testing.T) *fixture {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	config := storage.DefaultConfig()
	// Small pages so every scan crosses page boundaries
	config.PageSize = 2
	return &fixture{
		log:      testLogger(),
		contacts: repositories.NewContactRepository(db, config),
		groups:   repositories.NewGroupRepository(db, config),
		messages: repositories.NewMessageRepository(db, config),
		receipts: repositories.NewReceiptRepository(db, config),
		licences: repositories.NewLicenceRepository(db, config),
		devices:  repositories.NewDeviceRepository(db, config),
	}
}

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

func (f *fixture) resolver(scope domain.TenantScope) *RecipientResolver {
	return NewRecipientResolver(f.log, f.groups, f.contacts, scope)
}

func (f *fixture) messageService(scope domain.TenantScope, now domain.Clock) *MessageService {
	return NewMessageService(f.log, f.resolver(scope), f.messages, f.receipts, BestEffort{}, now)
}

func (f *fixture) groupService(scope domain.TenantScope) *GroupService {
	return NewGroupService(f.log, f.groups, f.contacts, BestEffort{}, scope, DefaultFallbackGroup)
}

func (f *fixture) addGroup(t *testing.T, tenantID, name string) {
	require.NoError(t, f.groups.CreateGroup(context.Background(), domain.Group{TenantID: tenantID, Name: name}))
}

func (f *fixture) addContact(t *testing.T, tenantID, address, group string, role domain.Role) {
	require.NoError(t, f.contacts.CreateContact(context.Background(), domain.Contact{
		TenantID: tenantID,
		Address:  address,
		Group:    group,
		Role:     role,
	}))
}

// tickingClock returns a clock that moves one second forward on every call.
func tickingClock() domain.Clock {
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func fixedClock() domain.Clock {
	return func() time.Time {
		return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	}
}

// stubResolver classifies every destination the same way.
type stubResolver struct {
	isGroup bool
	members []domain.Contact
	err     error
}

func (s stubResolver) ResolveDestination(context.Context, string, string) bool {
	return s.isGroup
}

func (s stubResolver) ListGroupMembers(context.Context, string, string, string) ([]domain.Contact, error) {
	return s.members, s.err
}

func receiptRecipients(receipts []domain.MessageReceipt) []string {
	result := make([]string, 0, len(receipts))
	for _, r := range receipts {
		result = append(result, r.To)
	}
	return result
}
