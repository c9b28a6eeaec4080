package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"festhub/internal/events"
	"festhub/pkg/database"
	"festhub/pkg/models"
)

// Seeds departments and events from CSV files so a fresh database can
// serve the site without hand-entered rows.
//
// departments.csv: name,code
// events.csv:      department_code,title,description,event_date,venue,fee
func main() {
	var (
		deptsPath  = flag.String("departments", "data/departments.csv", "departments CSV path")
		eventsPath = flag.String("events", "data/events.csv", "events CSV path")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	repo := events.NewRepo(db)

	codes, err := importDepartments(ctx, repo, *deptsPath)
	if err != nil {
		log.Fatalf("import departments failed: %v", err)
	}

	n, err := importEvents(ctx, repo, *eventsPath, codes)
	if err != nil {
		log.Fatalf("import events failed: %v", err)
	}

	log.Printf("✅ imported %d departments and %d events", len(codes), n)
}

func importDepartments(ctx context.Context, repo *events.Repo, path string) (map[string]string, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	codes := make(map[string]string) // code -> department id
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("%s line %d: want name,code", path, i+1)
		}

		d := models.Department{
			ID:   uuid.NewString(),
			Name: rec[0],
			Code: rec[1],
		}
		if err := repo.CreateDepartment(ctx, d); err != nil {
			return nil, err
		}
		codes[d.Code] = d.ID
	}

	// Re-read ids for departments that already existed (insert is a
	// no-op on name conflict).
	depts, err := repo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range depts {
		codes[d.Code] = d.ID
	}
	return codes, nil
}

func importEvents(ctx context.Context, repo *events.Repo, path string, codes map[string]string) (int, error) {
	records, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	n := 0
	for i, rec := range records {
		if len(rec) < 6 {
			return n, fmt.Errorf("%s line %d: want department_code,title,description,event_date,venue,fee", path, i+1)
		}

		deptID, ok := codes[rec[0]]
		if !ok {
			return n, fmt.Errorf("%s line %d: unknown department code %q", path, i+1, rec[0])
		}

		fee := 0
		if _, err := fmt.Sscanf(rec[5], "%d", &fee); err != nil && rec[5] != "" {
			return n, fmt.Errorf("%s line %d: bad fee %q", path, i+1, rec[5])
		}

		ev := models.Event{
			ID:           uuid.NewString(),
			DepartmentID: deptID,
			Title:        rec[1],
			Description:  rec[2],
			EventDate:    rec[3],
			Venue:        rec[4],
			Fee:          fee,
		}
		if err := repo.Create(ctx, ev); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
