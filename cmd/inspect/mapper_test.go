package main

import (
	"testing"
	"warehouse-portal/domain"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

func TestMapper_RedactsPasswordHash(t *testing.T) {
	req := require.New(t)
	val, err := cbor.Marshal(domain.Contact{
		TenantID: "W1", Address: "alice", Group: "Sales", PasswordHash: "$argon2id$secret", Role: domain.RoleStandard,
	})
	req.NoError(err)

	row := NewMapper(false)("contacts", []string{"W1", "alice"}, val)
	req.Contains(row.Detail, redacted)
	req.NotContains(row.Detail, "secret")

	row = NewMapper(true)("contacts", []string{"W1", "alice"}, val)
	req.Contains(row.Detail, "$argon2id$secret")
}

func TestMapper_Message(t *testing.T) {
	req := require.New(t)
	val, err := cbor.Marshal(domain.Message{From: "alice", Body: "Pallet 12 is ready", CorrelationID: "c-1"})
	req.NoError(err)

	row := NewMapper(false)("messages", nil, val)
	req.Contains(row.Detail, "Pallet 12 is ready")
	req.Contains(row.Detail, "correlation=c-1")
	req.Equal(len(val), row.Size)
}

func TestMapper_CorruptedRow(t *testing.T) {
	row := NewMapper(false)("receipts", nil, []byte{0xff, 0x00})
	require.Equal(t, "Error: unmarshal failed", row.Detail)
}
