package main

import (
	"fmt"
	"warehouse-portal/domain"
	"warehouse-portal/storage"

	"github.com/fxamacker/cbor/v2"
)

const redacted = "<redacted>"

// NewMapper renders the rows of the known tables field by field and falls
// back to CBOR diagnostic notation for anything else. Password hashes are
// redacted unless showSecrets is set.
func NewMapper(showSecrets bool) storage.RowMapper {
	defaults := storage.DefaultConfig()
	return func(table string, parts []string, val []byte) storage.InspectRow {
		row := storage.DefaultMapper(table, parts, val)
		var (
			detail string
			err    error
		)
		switch table {
		case defaults.ContactsTable:
			var contact domain.Contact
			if err = cbor.Unmarshal(val, &contact); err == nil {
				hash := redacted
				if showSecrets {
					hash = contact.PasswordHash
				}
				detail = fmt.Sprintf("group=%s role=%s name=%q hash=%s",
					contact.Group, contact.Role, contact.DisplayName(), hash)
			}
		case defaults.MessagesTable:
			var message domain.Message
			if err = cbor.Unmarshal(val, &message); err == nil {
				detail = fmt.Sprintf("from=%s group=%s correlation=%s body=%q",
					message.From, message.GroupName, message.CorrelationID, message.Body)
			}
		case defaults.ReceiptsTable:
			var receipt domain.MessageReceipt
			if err = cbor.Unmarshal(val, &receipt); err == nil {
				detail = fmt.Sprintf("%s -> %s %s at %s correlation=%s",
					receipt.From, receipt.To, receipt.Status, receipt.ReadTimestamp, receipt.CorrelationID)
			}
		default:
			return row
		}
		if err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Detail = detail
		return row
	}
}
