// Package storage is the gateway over the portal tables. Each table is a key
// range of one Badger database; a row is addressed by its composite key parts.
// There is no business logic here and no transaction spans more than one row.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	apperr "warehouse-portal/errors"

	"github.com/dgraph-io/badger/v4"
)

// Page is one slice of a scan. Next is nil once the range is exhausted,
// otherwise it is handed back to ScanPage to continue.
type Page[T any] struct {
	Items []T
	Next  []byte
}

type Table[T any] struct {
	db       *badger.DB
	name     string
	pageSize int
}

func NewTable[T any](db *badger.DB, name string, pageSize int) Table[T] {
	return Table[T]{db: db, name: name, pageSize: pageSize}
}

func (t Table[T]) Name() string { return t.name }

// Put writes the row, replacing any previous value.
func (t Table[T]) Put(ctx context.Context, value T, parts ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := encodeKey(t.name, parts...)
	data, err := encode(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", apperr.ErrStorage, key, err)
	}
	err = t.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %w", apperr.ErrStorage, key, err)
	}
	return nil
}

// Create writes the row only if the key is free.
func (t Table[T]) Create(ctx context.Context, value T, parts ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := encodeKey(t.name, parts...)
	data, err := encode(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", apperr.ErrStorage, key, err)
	}
	err = t.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err == nil {
			return apperr.ErrAlreadyExists
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrAlreadyExists):
		return fmt.Errorf("%w: %s", apperr.ErrAlreadyExists, key)
	default:
		return fmt.Errorf("%w: create %s: %w", apperr.ErrStorage, key, err)
	}
}

func (t Table[T]) Get(ctx context.Context, parts ...string) (T, error) {
	var value T
	if err := ctx.Err(); err != nil {
		return value, err
	}
	key := encodeKey(t.name, parts...)
	err := t.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value, err = decode[T](val)
			return err
		})
	})
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return value, fmt.Errorf("%w: %s", apperr.ErrNotFound, key)
	default:
		return value, fmt.Errorf("%w: get %s: %w", apperr.ErrStorage, key, err)
	}
}

// Update applies fn to the stored row and writes it back in the same
// transaction. Concurrent updates of the same row conflict in Badger and
// the loser gets an error, updates of different rows never interact.
func (t Table[T]) Update(ctx context.Context, fn func(*T) error, parts ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := encodeKey(t.name, parts...)
	err := t.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		var value T
		if err = item.Value(func(val []byte) error {
			value, err = decode[T](val)
			return err
		}); err != nil {
			return err
		}
		if err = fn(&value); err != nil {
			return err
		}
		data, err := encode(value)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return fmt.Errorf("%w: %s", apperr.ErrNotFound, key)
	default:
		return fmt.Errorf("%w: update %s: %w", apperr.ErrStorage, key, err)
	}
}

// Delete removes the row. Deleting a missing row reports ErrNotFound.
func (t Table[T]) Delete(ctx context.Context, parts ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := encodeKey(t.name, parts...)
	err := t.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return fmt.Errorf("%w: %s", apperr.ErrNotFound, key)
	default:
		return fmt.Errorf("%w: delete %s: %w", apperr.ErrStorage, key, err)
	}
}

// ScanPage reads at most limit rows whose key starts with the given parts,
// resuming after cursor when it is not nil.
func (t Table[T]) ScanPage(ctx context.Context, cursor []byte, limit int, parts ...string) (Page[T], error) {
	var page Page[T]
	if err := ctx.Err(); err != nil {
		return page, err
	}
	if limit <= 0 {
		limit = t.pageSize
	}
	prefix := encodePrefix(t.name, parts...)
	err := t.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		options.PrefetchSize = limit
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := prefix
		if cursor != nil {
			seekKey = cursor
		}
		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && bytes.Equal(it.Item().Key(), cursor) {
			it.Next()
		}

		var lastKey []byte
		for ; it.ValidForPrefix(prefix); it.Next() {
			if len(page.Items) == limit {
				// More rows remain, hand out a cursor on the last one read
				page.Next = lastKey
				return nil
			}
			item := it.Item()
			lastKey = item.KeyCopy(nil)
			err := item.Value(func(val []byte) error {
				value, err := decode[T](val)
				if err != nil {
					return fmt.Errorf("decode %s: %w", lastKey, err)
				}
				page.Items = append(page.Items, value)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Page[T]{}, fmt.Errorf("%w: scan %s: %w", apperr.ErrStorage, prefix, err)
	}
	return page, nil
}

// Scan drains every page under the given key parts and keeps the rows
// accepted by match. A nil match keeps everything.
func (t Table[T]) Scan(ctx context.Context, match func(T) bool, parts ...string) ([]T, error) {
	var (
		result []T
		cursor []byte
	)
	for {
		page, err := t.ScanPage(ctx, cursor, t.pageSize, parts...)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			if match == nil || match(item) {
				result = append(result, item)
			}
		}
		if page.Next == nil {
			return result, nil
		}
		cursor = page.Next
	}
}
