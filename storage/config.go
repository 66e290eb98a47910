package storage

import "fmt"

// Config names the tables of the gateway. It is built once by the caller
// and handed to the gateway, nothing here reads the process environment.
type Config struct {
	ContactsTable string
	GroupsTable   string
	MessagesTable string
	ReceiptsTable string
	LicencesTable string
	DevicesTable  string
	// PageSize bounds how many rows a single scan page reads.
	PageSize int
}

func DefaultConfig() Config {
	return Config{
		ContactsTable: "contacts",
		GroupsTable:   "groups",
		MessagesTable: "messages",
		ReceiptsTable: "receipts",
		LicencesTable: "licences",
		DevicesTable:  "devices",
		PageSize:      100,
	}
}

// Validate rejects empty or duplicated table names, since two tables
// sharing a name would share a key space.
func (c Config) Validate() error {
	names := []string{c.ContactsTable, c.GroupsTable, c.MessagesTable,
		c.ReceiptsTable, c.LicencesTable, c.DevicesTable}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("storage config: empty table name")
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("storage config: table %q declared twice", name)
		}
		seen[name] = struct{}{}
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("storage config: page size must be positive, got %d", c.PageSize)
	}
	return nil
}
