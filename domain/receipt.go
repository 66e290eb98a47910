package domain

type ReceiptStatus string

const (
	Delivered ReceiptStatus = "Delivered"
	Read      ReceiptStatus = "Read"
)

// MessageReceipt tracks delivery and read state of one logical send for one
// final recipient. It is created Delivered and flipped to Read exactly once.
type MessageReceipt struct {
	ID                 string
	TenantID           string
	GroupName          string
	DeliveredTimestamp string
	From               string
	To                 string
	Status             ReceiptStatus
	ReadTimestamp      string
	CorrelationID      string
}

func (r MessageReceipt) IsRead() bool {
	return r.Status == Read
}
