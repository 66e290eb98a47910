package internal

import (
	"fmt"
	"time"
	"warehouse-portal/domain"
	"warehouse-portal/storage"
)

// Config is read from the process environment (and a .env file when present)
// by the portal binary. Nothing below the cmd layer reads the environment.
type Config struct {
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	Host              string        `env:"HOST,default=0.0.0.0"`
	Port              int           `env:"PORT,default=8080"`
	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=12h"`

	ContactsTable string `env:"CONTACTS_TABLE,default=contacts"`
	GroupsTable   string `env:"GROUPS_TABLE,default=groups"`
	MessagesTable string `env:"MESSAGES_TABLE,default=messages"`
	ReceiptsTable string `env:"RECEIPTS_TABLE,default=receipts"`
	LicencesTable string `env:"LICENCES_TABLE,default=licences"`
	DevicesTable  string `env:"DEVICES_TABLE,default=devices"`
	ScanPageSize  int    `env:"SCAN_PAGE_SIZE,default=100"`

	GroupLookupScope    string `env:"GROUP_LOOKUP_SCOPE,default=tenant"`
	ConsistencyPolicy   string `env:"CONSISTENCY_POLICY,default=best-effort"`
	FallbackGroup       string `env:"FALLBACK_GROUP,default=Other"`
	EnforceLicenceSeats bool   `env:"ENFORCE_LICENCE_SEATS,default=false"`

	SendRateLimit float64 `env:"SEND_RATE_LIMIT,default=5"`
	SendBurst     int     `env:"SEND_BURST,default=10"`

	// Optional first administrator, created at boot when missing
	BootstrapTenant   string `env:"BOOTSTRAP_TENANT"`
	BootstrapAddress  string `env:"BOOTSTRAP_ADDRESS"`
	BootstrapPassword string `env:"BOOTSTRAP_PASSWORD"`
	BootstrapGroup    string `env:"BOOTSTRAP_GROUP,default=Office"`

	GCInterval      time.Duration `env:"GC_INTERVAL,default=10m"`
	GCDiscardRatio  float64       `env:"GC_DISCARD_RATIO,default=0.5"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=15s"`
}

func (c Config) StorageConfig() storage.Config {
	return storage.Config{
		ContactsTable: c.ContactsTable,
		GroupsTable:   c.GroupsTable,
		MessagesTable: c.MessagesTable,
		ReceiptsTable: c.ReceiptsTable,
		LicencesTable: c.LicencesTable,
		DevicesTable:  c.DevicesTable,
		PageSize:      c.ScanPageSize,
	}
}

func (c Config) Scope() domain.TenantScope {
	return domain.TenantScope(c.GroupLookupScope)
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Bootstrap reports whether a first administrator must be provisioned.
func (c Config) Bootstrap() bool {
	return c.BootstrapTenant != "" && c.BootstrapAddress != "" && c.BootstrapPassword != ""
}

func (c Config) Validate() error {
	if err := c.StorageConfig().Validate(); err != nil {
		return err
	}
	if !c.Scope().Valid() {
		return fmt.Errorf("GROUP_LOOKUP_SCOPE must be %q or %q, got %q",
			domain.TenantScoped, domain.GlobalScope, c.GroupLookupScope)
	}
	if c.SendRateLimit <= 0 || c.SendBurst <= 0 {
		return fmt.Errorf("SEND_RATE_LIMIT and SEND_BURST must be positive")
	}
	if c.GCDiscardRatio <= 0 || c.GCDiscardRatio >= 1 {
		return fmt.Errorf("GC_DISCARD_RATIO must be between 0 and 1, got %v", c.GCDiscardRatio)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	return nil
}
