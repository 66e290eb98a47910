package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

// InspectRow is one raw row as shown by the inspection tools.
type InspectRow struct {
	Key    string
	Table  string
	Parts  []string
	Size   int
	Detail string
}

// RowMapper turns a raw row into its displayed form.
type RowMapper func(table string, parts []string, val []byte) InspectRow

const maxDetailLength = 120

// DefaultMapper shows the value in CBOR diagnostic notation.
func DefaultMapper(table string, parts []string, val []byte) InspectRow {
	row := InspectRow{Table: table, Parts: parts, Size: len(val)}
	detail, err := cbor.Diagnose(val)
	if err != nil {
		row.Detail = "Error: " + err.Error()
		return row
	}
	if len(detail) > maxDetailLength {
		detail = detail[:maxDetailLength] + "..."
	}
	row.Detail = detail
	return row
}

// Inspect reads at most limit raw rows of a table under the given key parts.
// A zero limit reads the whole range.
func Inspect(ctx context.Context, db *badger.DB, table string, parts []string, limit int, mapper RowMapper) ([]InspectRow, error) {
	if mapper == nil {
		mapper = DefaultMapper
	}
	prefix := encodePrefix(table, parts...)
	var rows []InspectRow
	err := db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if limit > 0 && len(rows) == limit {
				return nil
			}
			item := it.Item()
			tableName, keyParts := decodeKey(item.Key())
			err := item.Value(func(val []byte) error {
				row := mapper(tableName, keyParts, val)
				row.Key = string(item.Key())
				rows = append(rows, row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", strings.TrimSuffix(string(prefix), separator), err)
	}
	return rows, nil
}
