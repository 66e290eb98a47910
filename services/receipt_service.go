package services

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"warehouse-portal/domain"
	"warehouse-portal/metrics"
	"warehouse-portal/repositories"
)

type IReceiptService interface {
	MarkConversationRead(ctx context.Context, tenantID, viewer string) (int, error)
	GroupMessageInfo(ctx context.Context, tenantID, correlationID string) ([]domain.MessageReceipt, error)
}

type ReceiptService struct {
	log      *slog.Logger
	receipts repositories.IReceiptRepository
	now      domain.Clock
}

func NewReceiptService(log *slog.Logger, receipts repositories.IReceiptRepository, now domain.Clock) *ReceiptService {
	return &ReceiptService{log: log, receipts: receipts, now: now}
}

// MarkConversationRead flips every unread receipt addressed to viewer in the
// tenant to Read, whatever conversation it belongs to. It returns how many
// receipts were flipped. A failed flip is logged and skipped; the receipt
// stays Delivered and is picked up again by the next call.
func (s *ReceiptService) MarkConversationRead(ctx context.Context, tenantID, viewer string) (int, error) {
	unread, err := s.receipts.FindReceipts(ctx, repositories.ReceiptFilter{
		TenantID:      tenantID,
		To:            viewer,
		ExcludeStatus: domain.Read,
	})
	if err != nil {
		return 0, err
	}

	readAt := domain.FormatTimestamp(s.now())
	flipped := 0
	for _, receipt := range unread {
		if err := s.receipts.MarkRead(ctx, tenantID, receipt.ID, readAt); err != nil {
			s.log.Error("Marking receipt as read failed",
				"tenant", tenantID,
				"step", StepMarkRead,
				"receipt_id", receipt.ID,
				"error", err)
			continue
		}
		flipped++
	}
	metrics.ReceiptsReadTotal.Add(float64(flipped))
	return flipped, nil
}

// GroupMessageInfo returns every receipt of one logical send, ordered by
// recipient.
func (s *ReceiptService) GroupMessageInfo(ctx context.Context, tenantID, correlationID string) ([]domain.MessageReceipt, error) {
	receipts, err := s.receipts.FindReceipts(ctx, repositories.ReceiptFilter{
		TenantID:      tenantID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(receipts, func(a, b domain.MessageReceipt) int {
		return strings.Compare(a.To, b.To)
	})
	return receipts, nil
}
