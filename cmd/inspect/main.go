// Command inspect prints the raw rows of one portal table. It opens the
// database read-only so it can run next to a live portal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"warehouse-portal/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	// INSPECT_COLOURS enables colorized status lines
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
	Limit   int  `envconfig:"INSPECT_LIMIT" default:"50"`
	// INSPECT_SHOW_SECRETS keeps password hashes in the output
	ShowSecrets bool `envconfig:"INSPECT_SHOW_SECRETS" default:"false"`
}

func main() {
	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		fail(false, "config error: %v", err)
	}

	table := flag.String("table", "messages", "Table to scan")
	key := flag.String("key", "", "Comma separated leading key parts, e.g. W1,Sales")
	limit := flag.Int("limit", config.Limit, "Maximum number of rows, 0 reads everything")
	flag.Parse()

	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		fail(config.Colours, "failed to open database: %v", err)
	}
	defer db.Close()

	var parts []string
	if *key != "" {
		parts = strings.Split(*key, ",")
	}
	rows, err := storage.Inspect(context.Background(), db, *table, parts, *limit, NewMapper(config.ShowSecrets))
	if err != nil {
		fail(config.Colours, "%v", err)
	}

	writer := tablewriter.NewWriter(os.Stdout)
	writer.SetHeader([]string{"Key", "Size", "Detail"})
	writer.SetAutoWrapText(false)
	writer.SetAutoFormatHeaders(true)
	writer.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	writer.SetAlignment(tablewriter.ALIGN_LEFT)
	writer.SetCenterSeparator("")
	writer.SetColumnSeparator("")
	writer.SetRowSeparator("")
	writer.SetHeaderLine(false)
	writer.SetBorder(false)
	writer.SetTablePadding("\t")
	for _, row := range rows {
		writer.Append([]string{strings.Join(row.Parts, " | "), strconv.Itoa(row.Size), row.Detail})
	}
	writer.Render()

	status := fmt.Sprintf("%d row(s) in %s", len(rows), *table)
	if config.Colours {
		status = color.New(color.BgBlack, color.FgGreen).Render(status)
	}
	fmt.Println(status)
}

func fail(colours bool, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if colours {
		message = color.Red.Render(message)
	}
	fmt.Fprintln(os.Stderr, message)
	os.Exit(1)
}
