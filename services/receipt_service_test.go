package services

import (
	"context"
	"fmt"
	"testing"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"
	"warehouse-portal/mocks"
	"warehouse-portal/repositories"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMarkConversationRead_FlipsEveryConversationOnce(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	f.addGroup(t, "W1", "Sales")
	f.addContact(t, "W1", "alice", "Sales", domain.RoleStandard)
	f.addContact(t, "W1", "bob", "Sales", domain.RoleStandard)
	clock := tickingClock()
	sender := f.messageService(domain.TenantScoped, clock)
	service := NewReceiptService(f.log, f.receipts, clock)

	// One group send and one direct message, both reaching alice
	_, err := sender.SendMessage(ctx, domain.SendMessageCommand{TenantID: "W1", From: "carol", Destination: "Sales", Body: "hello"})
	req.NoError(err)
	_, err = sender.SendMessage(ctx, domain.SendMessageCommand{TenantID: "W1", From: "dave", Destination: "alice", Body: "hi alice"})
	req.NoError(err)

	flipped, err := service.MarkConversationRead(ctx, "W1", "alice")
	req.NoError(err)
	req.Equal(2, flipped)

	aliceReceipts, err := f.receipts.FindReceipts(ctx, repositories.ReceiptFilter{TenantID: "W1", To: "alice"})
	req.NoError(err)
	req.Len(aliceReceipts, 2)
	for _, r := range aliceReceipts {
		req.Equal(domain.Read, r.Status)
		req.NotEmpty(r.ReadTimestamp)
	}

	// bob has not opened anything yet
	bobReceipts, err := f.receipts.FindReceipts(ctx, repositories.ReceiptFilter{TenantID: "W1", To: "bob"})
	req.NoError(err)
	req.Len(bobReceipts, 1)
	req.Equal(domain.Delivered, bobReceipts[0].Status)

	flipped, err = service.MarkConversationRead(ctx, "W1", "alice")
	req.NoError(err)
	req.Zero(flipped)

	again, err := f.receipts.FindReceipts(ctx, repositories.ReceiptFilter{TenantID: "W1", To: "alice"})
	req.NoError(err)
	req.ElementsMatch(aliceReceipts, again)
}

func TestMarkConversationRead_StaysInsideTenant(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	sender := f.messageService(domain.TenantScoped, fixedClock())
	service := NewReceiptService(f.log, f.receipts, fixedClock())

	_, err := sender.SendMessage(ctx, domain.SendMessageCommand{TenantID: "W2", From: "dave", Destination: "alice", Body: "wrong warehouse"})
	req.NoError(err)

	flipped, err := service.MarkConversationRead(ctx, "W1", "alice")
	req.NoError(err)
	req.Zero(flipped)
}

func TestMarkConversationRead_SkipsFailedFlips(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	receipts := mocks.NewMockIReceiptRepository(ctrl)
	service := NewReceiptService(testLogger(), receipts, fixedClock())

	receipts.EXPECT().FindReceipts(gomock.Any(), repositories.ReceiptFilter{
		TenantID: "W1", To: "alice", ExcludeStatus: domain.Read,
	}).Return([]domain.MessageReceipt{{ID: "r1"}, {ID: "r2"}, {ID: "r3"}}, nil)
	receipts.EXPECT().MarkRead(gomock.Any(), "W1", "r1", "2026-03-01 09:00:00.000").Return(nil)
	receipts.EXPECT().MarkRead(gomock.Any(), "W1", "r2", gomock.Any()).Return(fmt.Errorf("%w: conflict", apperr.ErrStorage))
	receipts.EXPECT().MarkRead(gomock.Any(), "W1", "r3", gomock.Any()).Return(nil)

	flipped, err := service.MarkConversationRead(context.Background(), "W1", "alice")
	req.NoError(err)
	req.Equal(2, flipped)
}

func TestGroupMessageInfo(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	f.addGroup(t, "W1", "Sales")
	for _, address := range []string{"zoe", "alice", "mike"} {
		f.addContact(t, "W1", address, "Sales", domain.RoleStandard)
	}
	sender := f.messageService(domain.TenantScoped, fixedClock())
	service := NewReceiptService(f.log, f.receipts, fixedClock())

	first, err := sender.SendMessage(ctx, domain.SendMessageCommand{TenantID: "W1", From: "carol", Destination: "Sales", Body: "one"})
	req.NoError(err)
	_, err = sender.SendMessage(ctx, domain.SendMessageCommand{TenantID: "W1", From: "carol", Destination: "Sales", Body: "two"})
	req.NoError(err)
	_, err = service.MarkConversationRead(ctx, "W1", "mike")
	req.NoError(err)

	info, err := service.GroupMessageInfo(ctx, "W1", first.CorrelationID)
	req.NoError(err)
	req.Equal([]string{"alice", "mike", "zoe"}, receiptRecipients(info))
	req.Equal(domain.Read, info[1].Status)
	req.Equal(domain.Delivered, info[0].Status)

	none, err := service.GroupMessageInfo(ctx, "W2", first.CorrelationID)
	req.NoError(err)
	req.Empty(none)
}
