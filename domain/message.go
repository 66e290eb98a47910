// Package domain contains core concepts of the warehouse messaging portal.
// This file defines Message rows and the composite conversation key.
// Messages are immutable once written.
package domain

import "fmt"

// MessageKey identifies the conversation a message row belongs to:
// the tenant plus the destination token (group name or contact address).
type MessageKey struct {
	TenantID    string
	Destination string
}

// String renders the key the way the portal displays it, e.g. "W1#Sales".
// It is a display form only, storage keys are escaped separately.
func (k MessageKey) String() string {
	return fmt.Sprintf("%s#%s", k.TenantID, k.Destination)
}

// Message is one stored message row. A logical send produces one canonical
// row keyed by its destination and, for a group, one copy per member keyed
// by the member address. All rows of a send share CorrelationID, Body, From
// and Timestamp.
type Message struct {
	ID             string // row id, unique per row
	Key            MessageKey
	Timestamp      string
	Body           string
	From           string
	SenderName     string
	IsGroupMessage bool
	// GroupName is set on fan-out copies only and names the group the
	// canonical row was addressed to.
	GroupName     string
	CorrelationID string
}

// IsFanoutCopy reports whether the row is a per-recipient copy of a group send.
func (m Message) IsFanoutCopy() bool {
	return m.GroupName != ""
}
