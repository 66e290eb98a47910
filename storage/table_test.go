package storage

import (
	"context"
	"fmt"
	"testing"

	apperr "warehouse-portal/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

type row struct {
	Tenant string
	Name   string
	Count  int
}

// SetupTestDB initializes an in-memory Badger instance for testing
func SetupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestTable_PutGetDelete(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	table := NewTable[row](SetupTestDB(t), "rows", 10)

	req.NoError(table.Put(ctx, row{Tenant: "W1", Name: "alice", Count: 1}, "W1", "alice"))

	got, err := table.Get(ctx, "W1", "alice")
	req.NoError(err)
	req.Equal(row{Tenant: "W1", Name: "alice", Count: 1}, got)

	req.NoError(table.Delete(ctx, "W1", "alice"))
	_, err = table.Get(ctx, "W1", "alice")
	req.ErrorIs(err, apperr.ErrNotFound)

	err = table.Delete(ctx, "W1", "alice")
	req.ErrorIs(err, apperr.ErrNotFound)
}

func TestTable_CreateRejectsExistingKey(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	table := NewTable[row](SetupTestDB(t), "rows", 10)

	req.NoError(table.Create(ctx, row{Name: "first"}, "W1", "k"))
	err := table.Create(ctx, row{Name: "second"}, "W1", "k")
	req.ErrorIs(err, apperr.ErrAlreadyExists)

	got, err := table.Get(ctx, "W1", "k")
	req.NoError(err)
	req.Equal("first", got.Name)
}

func TestTable_Update(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	table := NewTable[row](SetupTestDB(t), "rows", 10)
	req.NoError(table.Put(ctx, row{Name: "alice", Count: 1}, "W1", "alice"))

	err := table.Update(ctx, func(r *row) error {
		r.Count++
		return nil
	}, "W1", "alice")
	req.NoError(err)

	got, err := table.Get(ctx, "W1", "alice")
	req.NoError(err)
	req.Equal(2, got.Count)

	err = table.Update(ctx, func(r *row) error { return nil }, "W1", "nobody")
	req.ErrorIs(err, apperr.ErrNotFound)
}

func TestTable_ScanPage_FollowsCursor(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	table := NewTable[row](SetupTestDB(t), "rows", 2)
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("user-%d", i)
		req.NoError(table.Put(ctx, row{Tenant: "W1", Name: name}, "W1", name))
	}

	var (
		names  []string
		cursor []byte
		pages  int
	)
	for {
		page, err := table.ScanPage(ctx, cursor, 2, "W1")
		req.NoError(err)
		pages++
		for _, item := range page.Items {
			names = append(names, item.Name)
		}
		if page.Next == nil {
			break
		}
		cursor = page.Next
	}

	req.Equal([]string{"user-0", "user-1", "user-2", "user-3", "user-4"}, names)
	req.Equal(3, pages)
}

func TestTable_Scan_FiltersAcrossPages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	table := NewTable[row](SetupTestDB(t), "rows", 3)
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("user-%02d", i)
		req.NoError(table.Put(ctx, row{Tenant: "W1", Name: name, Count: i}, "W1", name))
	}

	even, err := table.Scan(ctx, func(r row) bool { return r.Count%2 == 0 }, "W1")
	req.NoError(err)
	req.Len(even, 5)

	all, err := table.Scan(ctx, nil)
	req.NoError(err)
	req.Len(all, 10)
}

func TestTable_TenantPrefixDoesNotLeak(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	table := NewTable[row](SetupTestDB(t), "rows", 10)
	req.NoError(table.Put(ctx, row{Tenant: "W1", Name: "a"}, "W1", "a"))
	req.NoError(table.Put(ctx, row{Tenant: "W10", Name: "b"}, "W10", "b"))

	rows, err := table.Scan(ctx, nil, "W1")
	req.NoError(err)
	req.Len(rows, 1)
	req.Equal("a", rows[0].Name)
}

func TestTable_SeparatorInsidePartsDoesNotCollide(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	table := NewTable[row](SetupTestDB(t), "rows", 10)

	// Without escaping both rows would be stored under "rows:W1:a:b"
	req.NoError(table.Put(ctx, row{Name: "first"}, "W1:a", "b"))
	req.NoError(table.Put(ctx, row{Name: "second"}, "W1", "a:b"))

	first, err := table.Get(ctx, "W1:a", "b")
	req.NoError(err)
	second, err := table.Get(ctx, "W1", "a:b")
	req.NoError(err)
	req.Equal("first", first.Name)
	req.Equal("second", second.Name)

	rows, err := table.Scan(ctx, nil, "W1")
	req.NoError(err)
	req.Len(rows, 1)
}

func TestTable_TablesDoNotShareRows(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := SetupTestDB(t)
	contacts := NewTable[row](db, "contacts", 10)
	groups := NewTable[row](db, "groups", 10)

	req.NoError(contacts.Put(ctx, row{Name: "alice"}, "W1", "alice"))

	rows, err := groups.Scan(ctx, nil, "W1")
	req.NoError(err)
	req.Empty(rows)
}

func TestTable_CanceledContext(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	table := NewTable[row](SetupTestDB(t), "rows", 10)

	req.ErrorIs(table.Put(ctx, row{}, "W1", "a"), context.Canceled)
	_, err := table.Scan(ctx, nil, "W1")
	req.ErrorIs(err, context.Canceled)
}

func TestConfig_Validate(t *testing.T) {
	req := require.New(t)
	req.NoError(DefaultConfig().Validate())

	duplicated := DefaultConfig()
	duplicated.GroupsTable = duplicated.ContactsTable
	req.Error(duplicated.Validate())

	noPage := DefaultConfig()
	noPage.PageSize = 0
	req.Error(noPage.Validate())
}
