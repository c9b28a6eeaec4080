package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"festhub/internal/export"
	"festhub/internal/registration"
	"festhub/pkg/database"
)

// Offline counterpart of the admin export endpoint: writes the same
// spreadsheet straight to disk instead of base64 over HTTP.
func main() {
	var (
		out     = flag.String("out", "data/registrations.xls", "output path for the spreadsheet")
		eventID = flag.String("event", "", "restrict to one event id (empty = all events)")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	repo := registration.NewRepo(db)
	regs, err := repo.List(ctx, registration.ListQuery{EventID: *eventID})
	if err != nil {
		log.Fatalf("list registrations failed: %v", err)
	}

	data := export.Workbook(regs)

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("create output dir failed: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write spreadsheet failed: %v", err)
	}

	log.Printf("✅ exported %d registrations to %s", len(regs), *out)
}
