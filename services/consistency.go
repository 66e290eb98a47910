package services

import (
	"fmt"
	apperr "warehouse-portal/errors"
)

// Step names the storage write a failure happened on.
type Step string

const (
	StepCanonical     Step = "canonical"
	StepDirectReceipt Step = "direct_receipt"
	StepMembers       Step = "members"
	StepCopy          Step = "copy"
	StepReceipt       Step = "receipt"
	StepReassign      Step = "reassign"
	StepMarkRead      Step = "mark_read"
	StepInsertGroup   Step = "insert_group"
	StepDeleteGroup   Step = "delete_group"
)

// WriteFailure records one failed storage call of a multi-row operation.
type WriteFailure struct {
	Step    Step
	Subject string // address or key the write was about
	Err     error
}

func (f WriteFailure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Step, f.Subject, f.Err)
}

// ConsistencyPolicy decides what a multi-row operation does after one of
// its writes fails. Returning nil carries on with the next write, returning
// an error stops the operation. Rows already written are never rolled back.
type ConsistencyPolicy interface {
	OnFailure(failure WriteFailure) error
}

// BestEffort logs-and-continues: the operation attempts every write and
// reports success.
type BestEffort struct{}

func (BestEffort) OnFailure(WriteFailure) error { return nil }

// FailFast stops at the first failed write.
type FailFast struct{}

func (FailFast) OnFailure(failure WriteFailure) error {
	return fmt.Errorf("%w: %s", apperr.ErrStorage, failure.Error())
}

// PolicyFromName maps the configuration value to a policy.
func PolicyFromName(name string) (ConsistencyPolicy, error) {
	switch name {
	case "", "best-effort":
		return BestEffort{}, nil
	case "fail-fast":
		return FailFast{}, nil
	default:
		return nil, fmt.Errorf("unknown consistency policy %q", name)
	}
}
