//go:generate go run go.uber.org/mock/mockgen -source=receipt.go -destination=../mocks/mock_receipt_repository.go -package=mocks
package repositories

import (
	"context"
	"warehouse-portal/domain"
	"warehouse-portal/storage"

	"github.com/dgraph-io/badger/v4"
)

// ReceiptFilter selects receipts of one tenant. Empty fields match anything.
type ReceiptFilter struct {
	TenantID      string
	To            string
	ExcludeStatus domain.ReceiptStatus
	CorrelationID string
}

func (f ReceiptFilter) match(r domain.MessageReceipt) bool {
	if f.To != "" && r.To != f.To {
		return false
	}
	if f.ExcludeStatus != "" && r.Status == f.ExcludeStatus {
		return false
	}
	return f.CorrelationID == "" || r.CorrelationID == f.CorrelationID
}

type IReceiptRepository interface {
	StoreReceipt(ctx context.Context, receipt domain.MessageReceipt) error
	FindReceipts(ctx context.Context, filter ReceiptFilter) ([]domain.MessageReceipt, error)
	MarkRead(ctx context.Context, tenantID, receiptID, readTimestamp string) error
}

type ReceiptRepository struct {
	table storage.Table[domain.MessageReceipt]
}

func NewReceiptRepository(db *badger.DB, config storage.Config) *ReceiptRepository {
	return &ReceiptRepository{table: storage.NewTable[domain.MessageReceipt](db, config.ReceiptsTable, config.PageSize)}
}

func (r *ReceiptRepository) StoreReceipt(ctx context.Context, receipt domain.MessageReceipt) error {
	return r.table.Create(ctx, receipt, receipt.TenantID, receipt.ID)
}

func (r *ReceiptRepository) FindReceipts(ctx context.Context, filter ReceiptFilter) ([]domain.MessageReceipt, error) {
	return r.table.Scan(ctx, filter.match, filter.TenantID)
}

// MarkRead flips the receipt to Read. A receipt that is already Read keeps
// its first read timestamp.
func (r *ReceiptRepository) MarkRead(ctx context.Context, tenantID, receiptID, readTimestamp string) error {
	return r.table.Update(ctx, func(receipt *domain.MessageReceipt) error {
		if receipt.IsRead() {
			return nil
		}
		receipt.Status = domain.Read
		receipt.ReadTimestamp = readTimestamp
		return nil
	}, tenantID, receiptID)
}
