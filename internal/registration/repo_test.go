package registration

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"festhub/pkg/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../../docs/schema.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	seed := `
		INSERT INTO departments (id, name, code) VALUES ('dept-1', 'Computer Science', 'CSE');
		INSERT INTO events (id, department_id, title) VALUES ('event-1', 'dept-1', 'AI Hackathon');
		INSERT INTO events (id, department_id, title) VALUES ('event-2', 'dept-1', 'Robo Race');
	`
	if _, err := db.Exec(seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func testReg(id, eventID, email string) models.Registration {
	return models.Registration{
		ID:            id,
		EventID:       eventID,
		DepartmentID:  "dept-1",
		Name:          "Asha",
		Email:         email,
		Phone:         "9876543210",
		College:       "GEC",
		TransactionID: "TXN42",
		ScreenshotURL: "https://files.example/shot.png",
		PaymentStatus: models.PaymentPending,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := NewRepo(testDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testReg("r1", "event-1", "asha@college.edu")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, "r1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("registration not found")
	}
	if got.EventTitle != "AI Hackathon" || got.DepartmentName != "Computer Science" || got.DepartmentCode != "CSE" {
		t.Errorf("joined fields wrong: %+v", got)
	}
	if got.PaymentStatus != models.PaymentPending {
		t.Errorf("payment status = %q", got.PaymentStatus)
	}
}

func TestCreateDuplicate(t *testing.T) {
	repo := NewRepo(testDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testReg("r1", "event-1", "asha@college.edu")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := repo.Create(ctx, testReg("r2", "event-1", "asha@college.edu"))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}

	// Same email on a different event is fine.
	if err := repo.Create(ctx, testReg("r3", "event-2", "asha@college.edu")); err != nil {
		t.Fatalf("cross-event create: %v", err)
	}
}

func TestListFilters(t *testing.T) {
	repo := NewRepo(testDB(t))
	ctx := context.Background()

	regs := []models.Registration{
		testReg("r1", "event-1", "asha@college.edu"),
		testReg("r2", "event-2", "binu@college.edu"),
	}
	regs[1].Name = "Binu"
	regs[1].College = "NIT Campus"
	for _, reg := range regs {
		if err := repo.Create(ctx, reg); err != nil {
			t.Fatalf("create %s: %v", reg.ID, err)
		}
	}

	t.Run("all means no filter", func(t *testing.T) {
		got, err := repo.List(ctx, ListQuery{EventID: "all"})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("want 2, got %d", len(got))
		}
	})

	t.Run("filter by event", func(t *testing.T) {
		got, err := repo.List(ctx, ListQuery{EventID: "event-2"})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 1 || got[0].ID != "r2" {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		got, err := repo.List(ctx, ListQuery{Search: "nit camp"})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 1 || got[0].ID != "r2" {
			t.Errorf("unexpected result: %+v", got)
		}
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	repo := NewRepo(testDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, testReg("r1", "event-1", "asha@college.edu")); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdatePaymentStatus(ctx, "r1", models.PaymentVerified); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, "r1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PaymentStatus != models.PaymentVerified {
		t.Errorf("status = %q, want verified", got.PaymentStatus)
	}

	if err := repo.UpdatePaymentStatus(ctx, "r1", "paid"); err == nil {
		t.Error("invalid status should be rejected")
	}
	if err := repo.UpdatePaymentStatus(ctx, "missing", models.PaymentVerified); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("err = %v, want sql.ErrNoRows", err)
	}
}
