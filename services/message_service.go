package services

import (
	"context"
	"fmt"
	"log/slog"
	"warehouse-portal/auth"
	"warehouse-portal/domain"
	"warehouse-portal/metrics"
	"warehouse-portal/repositories"

	"github.com/google/uuid"
)

type IMessageService interface {
	SendMessage(ctx context.Context, command domain.SendMessageCommand) (SendReport, error)
}

// SendReport describes what one logical send wrote.
type SendReport struct {
	CorrelationID string
	IsGroup       bool
	Recipients    int // final individual recipients
	Copies        int // fan-out copies written
	Receipts      int // receipts written
	Failures      []WriteFailure
}

func (r SendReport) Complete() bool {
	return len(r.Failures) == 0
}

type MessageService struct {
	log      *slog.Logger
	resolver IRecipientResolver
	messages repositories.IMessageRepository
	receipts repositories.IReceiptRepository
	policy   ConsistencyPolicy
	now      domain.Clock
	newID    func() string
}

func NewMessageService(log *slog.Logger, resolver IRecipientResolver,
	messages repositories.IMessageRepository, receipts repositories.IReceiptRepository,
	policy ConsistencyPolicy, now domain.Clock) *MessageService {
	return &MessageService{
		log:      log,
		resolver: resolver,
		messages: messages,
		receipts: receipts,
		policy:   policy,
		now:      now,
		newID:    uuid.NewString,
	}
}

// SendMessage persists one logical send. A group destination is fanned out
// to every current member except the sender, one copy and one receipt each.
// Writes happen one at a time and are never rolled back; what happens after
// a failed write is up to the consistency policy.
func (s *MessageService) SendMessage(ctx context.Context, command domain.SendMessageCommand) (SendReport, error) {
	if err := auth.Validate(command); err != nil {
		return SendReport{}, err
	}
	// Once accepted the send is carried through even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	isGroup := s.resolver.ResolveDestination(ctx, command.TenantID, command.Destination)
	report := SendReport{CorrelationID: s.newID(), IsGroup: isGroup}
	timestamp := domain.FormatTimestamp(s.now())

	canonical := domain.Message{
		ID:             s.newID(),
		Key:            domain.MessageKey{TenantID: command.TenantID, Destination: command.Destination},
		Timestamp:      timestamp,
		Body:           command.Body,
		From:           command.From,
		SenderName:     command.SenderName,
		IsGroupMessage: isGroup,
		CorrelationID:  report.CorrelationID,
	}
	if err := s.messages.StoreMessage(ctx, canonical); err != nil {
		if stop := s.fail(&report, command, StepCanonical, canonical.Key.String(), err); stop != nil {
			return report, stop
		}
	}

	if !isGroup {
		metrics.MessagesSentTotal.WithLabelValues("individual").Inc()
		report.Recipients = 1
		receipt := s.newReceipt(command, command.Destination, "", timestamp, report.CorrelationID)
		if err := s.receipts.StoreReceipt(ctx, receipt); err != nil {
			if stop := s.fail(&report, command, StepDirectReceipt, command.Destination, err); stop != nil {
				return report, stop
			}
			return report, nil
		}
		report.Receipts++
		metrics.ReceiptsDeliveredTotal.Inc()
		return report, nil
	}

	metrics.MessagesSentTotal.WithLabelValues("group").Inc()
	members, err := s.resolver.ListGroupMembers(ctx, command.TenantID, command.Destination, command.From)
	if err != nil {
		// No member list means nobody to fan out to
		if stop := s.fail(&report, command, StepMembers, command.Destination, err); stop != nil {
			return report, stop
		}
		return report, nil
	}
	report.Recipients = len(members)

	for _, member := range members {
		copyRow := canonical
		copyRow.ID = s.newID()
		copyRow.Key = domain.MessageKey{TenantID: command.TenantID, Destination: member.Address}
		copyRow.GroupName = command.Destination
		// Only the canonical row is flagged, copies point back through GroupName
		copyRow.IsGroupMessage = false
		if err := s.messages.StoreMessage(ctx, copyRow); err != nil {
			if stop := s.fail(&report, command, StepCopy, member.Address, err); stop != nil {
				return report, stop
			}
		} else {
			report.Copies++
			metrics.FanoutCopiesTotal.Inc()
		}

		receipt := s.newReceipt(command, member.Address, command.Destination, timestamp, report.CorrelationID)
		if err := s.receipts.StoreReceipt(ctx, receipt); err != nil {
			if stop := s.fail(&report, command, StepReceipt, member.Address, err); stop != nil {
				return report, stop
			}
			continue
		}
		report.Receipts++
		metrics.ReceiptsDeliveredTotal.Inc()
	}

	if !report.Complete() {
		s.log.Warn("Group send completed with failures",
			"tenant", command.TenantID,
			"group", command.Destination,
			"correlation_id", report.CorrelationID,
			"failures", len(report.Failures))
	}
	return report, nil
}

func (s *MessageService) newReceipt(command domain.SendMessageCommand, to, groupName, timestamp, correlationID string) domain.MessageReceipt {
	return domain.MessageReceipt{
		ID:                 s.newID(),
		TenantID:           command.TenantID,
		GroupName:          groupName,
		DeliveredTimestamp: timestamp,
		From:               command.From,
		To:                 to,
		Status:             domain.Delivered,
		CorrelationID:      correlationID,
	}
}

// fail records a failed write and asks the policy whether to go on.
func (s *MessageService) fail(report *SendReport, command domain.SendMessageCommand, step Step, subject string, err error) error {
	failure := WriteFailure{Step: step, Subject: subject, Err: err}
	report.Failures = append(report.Failures, failure)
	metrics.FanoutWriteFailuresTotal.WithLabelValues(string(step)).Inc()
	s.log.Error("Message write failed",
		"tenant", command.TenantID,
		"step", step,
		"subject", subject,
		"correlation_id", report.CorrelationID,
		"error", err)
	if stop := s.policy.OnFailure(failure); stop != nil {
		return fmt.Errorf("send %s: %w", report.CorrelationID, stop)
	}
	return nil
}
