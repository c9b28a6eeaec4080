package events

import (
	"context"
	"database/sql"
	"fmt"

	"festhub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) ListDepartments(ctx context.Context) ([]models.Department, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, code
		FROM departments
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var out []models.Department
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Code); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// List returns events, optionally scoped to one department, ordered by
// title.
func (r *Repo) List(ctx context.Context, departmentID string) ([]models.Event, error) {
	sqlStr := `
		SELECT e.id, e.department_id, e.title, e.description, e.event_date,
		       e.venue, e.fee, e.created_at, d.name, d.code
		FROM events e
		JOIN departments d ON d.id = e.department_id
	`
	var args []any
	if departmentID != "" {
		sqlStr += " WHERE e.department_id = ?"
		args = append(args, departmentID)
	}
	sqlStr += " ORDER BY e.title"

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []models.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT e.id, e.department_id, e.title, e.description, e.event_date,
		       e.venue, e.fee, e.created_at, d.name, d.code
		FROM events e
		JOIN departments d ON d.id = e.department_id
		WHERE e.id = ?
	`, id)

	ev, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return ev, nil
}

func (r *Repo) Create(ctx context.Context, ev models.Event) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO events (id, department_id, title, description, event_date, venue, fee)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, ev.ID, ev.DepartmentID, ev.Title, ev.Description, ev.EventDate, ev.Venue, ev.Fee)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, ev models.Event) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE events
		SET title = ?, description = ?, event_date = ?, venue = ?, fee = ?
		WHERE id = ?
	`, ev.Title, ev.Description, ev.EventDate, ev.Venue, ev.Fee, ev.ID)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the event; registrations cascade via the schema.
func (r *Repo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *Repo) CreateDepartment(ctx context.Context, d models.Department) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO departments (id, name, code)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`, d.ID, d.Name, d.Code)
	if err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*models.Event, error) {
	var (
		ev          models.Event
		description sql.NullString
		eventDate   sql.NullString
		venue       sql.NullString
	)

	if err := row.Scan(
		&ev.ID, &ev.DepartmentID, &ev.Title, &description, &eventDate,
		&venue, &ev.Fee, &ev.CreatedAt, &ev.DepartmentName, &ev.DepartmentCode,
	); err != nil {
		return nil, err
	}

	ev.Description = description.String
	ev.EventDate = eventDate.String
	ev.Venue = venue.String
	return &ev, nil
}
