package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := SetupTestDB(t)
	table := NewTable[row](db, "rows", 10)
	req.NoError(table.Put(ctx, row{Tenant: "W1", Name: "a:b", Count: 3}, "W1", "a:b"))
	req.NoError(table.Put(ctx, row{Tenant: "W1", Name: "c"}, "W1", "c"))
	req.NoError(table.Put(ctx, row{Tenant: "W2", Name: "d"}, "W2", "d"))

	rows, err := Inspect(ctx, db, "rows", []string{"W1"}, 0, nil)
	req.NoError(err)
	req.Len(rows, 2)
	req.Equal("rows", rows[0].Table)
	req.Equal([]string{"W1", "a:b"}, rows[0].Parts)
	req.Equal("rows:W1:a%3Ab", rows[0].Key)
	req.Contains(rows[0].Detail, `"Count"`)
	req.Positive(rows[0].Size)

	limited, err := Inspect(ctx, db, "rows", nil, 1, nil)
	req.NoError(err)
	req.Len(limited, 1)
}

func TestDecodeKey_RoundTrip(t *testing.T) {
	req := require.New(t)
	table, parts := decodeKey(encodeKey("messages", "W%1", "a:b", "2026-03-01 09:00:00.000"))
	req.Equal("messages", table)
	req.Equal([]string{"W%1", "a:b", "2026-03-01 09:00:00.000"}, parts)
}
