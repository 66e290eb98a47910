package services

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"warehouse-portal/domain"
	"warehouse-portal/repositories"

	"github.com/samber/lo"
)

type IViewService interface {
	ConversationView(ctx context.Context, viewer domain.Principal, with string) (ConversationView, error)
}

// ConversationView is everything the conversation page shows.
type ConversationView struct {
	Viewer domain.Principal
	Groups []domain.Group
	// Colleagues and Supervisors map a group name to its Standard and Admin
	// members, the viewer excluded.
	Colleagues  map[string][]domain.Contact
	Supervisors map[string][]domain.Contact
	Messages    []ViewMessage
	MarkedRead  int
}

// ViewMessage is one row as seen by the viewer. Counterpart is the group or
// contact on the other side of the conversation.
type ViewMessage struct {
	domain.Message
	Counterpart string
	Outgoing    bool
}

type ViewService struct {
	log      *slog.Logger
	receipts IReceiptService
	groups   repositories.IGroupRepository
	contacts repositories.IContactRepository
	messages repositories.IMessageRepository
}

func NewViewService(log *slog.Logger, receipts IReceiptService, groups repositories.IGroupRepository,
	contacts repositories.IContactRepository, messages repositories.IMessageRepository) *ViewService {
	return &ViewService{log: log, receipts: receipts, groups: groups, contacts: contacts, messages: messages}
}

// ConversationView marks every unread receipt of the viewer as read, then
// gathers the page data. When with is not empty only the conversation with
// that group or contact is kept.
func (s *ViewService) ConversationView(ctx context.Context, viewer domain.Principal, with string) (ConversationView, error) {
	view := ConversationView{Viewer: viewer}

	marked, err := s.receipts.MarkConversationRead(ctx, viewer.TenantID, viewer.Address)
	if err != nil {
		// The page still renders, the receipts are retried on the next view
		s.log.Error("Receipt reconciliation failed", "tenant", viewer.TenantID, "viewer", viewer.Address, "error", err)
	}
	view.MarkedRead = marked

	if view.Groups, err = s.groups.ListGroups(ctx, viewer.TenantID); err != nil {
		return view, err
	}

	contacts, err := s.contacts.FindContacts(ctx, repositories.ContactFilter{
		TenantID:       viewer.TenantID,
		ExcludeAddress: viewer.Address,
	})
	if err != nil {
		return view, err
	}
	byGroup := func(c domain.Contact) string { return c.Group }
	view.Colleagues = lo.GroupBy(lo.Filter(contacts, func(c domain.Contact, _ int) bool {
		return !c.IsAdmin()
	}), byGroup)
	view.Supervisors = lo.GroupBy(lo.Filter(contacts, func(c domain.Contact, _ int) bool {
		return c.IsAdmin()
	}), byGroup)

	messages, err := s.messages.ListMessages(ctx, viewer.TenantID)
	if err != nil {
		return view, err
	}
	view.Messages = lo.FilterMap(messages, func(m domain.Message, _ int) (ViewMessage, bool) {
		row, visible := asSeenBy(m, viewer.Address)
		return row, visible && (with == "" || row.Counterpart == with)
	})
	slices.SortStableFunc(view.Messages, func(a, b ViewMessage) int {
		return strings.Compare(a.Timestamp, b.Timestamp)
	})
	return view, nil
}

// asSeenBy decides whether the viewer sees the row. A viewer sees what was
// addressed to them, fan-out copies included, and the canonical rows they
// sent. Copies of the viewer's own group sends do not exist since the
// sender is never a fan-out recipient.
func asSeenBy(m domain.Message, viewer string) (ViewMessage, bool) {
	switch {
	case m.Key.Destination == viewer && m.IsFanoutCopy():
		return ViewMessage{Message: m, Counterpart: m.GroupName}, true
	case m.Key.Destination == viewer:
		return ViewMessage{Message: m, Counterpart: m.From, Outgoing: m.From == viewer}, true
	case m.From == viewer && !m.IsFanoutCopy():
		return ViewMessage{Message: m, Counterpart: m.Key.Destination, Outgoing: true}, true
	default:
		return ViewMessage{}, false
	}
}
