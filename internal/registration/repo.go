package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"festhub/pkg/models"
)

// ErrDuplicate marks a second registration for the same participant and
// event; handlers translate it to the user-facing conflict message.
var ErrDuplicate = errors.New("duplicate registration")

type Repo struct {
	DB *sql.DB
}

type ListQuery struct {
	EventID string // empty or "all" means no filter
	Search  string // substring match on name/email/college
	Limit   int
	Offset  int
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Create(ctx context.Context, reg models.Registration) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO registrations
		  (id, event_id, department_id, name, email, phone, college,
		   transaction_id, screenshot_url, payment_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, reg.ID, reg.EventID, reg.DepartmentID, reg.Name, reg.Email, reg.Phone,
		reg.College, reg.TransactionID, reg.ScreenshotURL, reg.PaymentStatus)

	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return ErrDuplicate
		}
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.Registration, error) {
	row := r.DB.QueryRowContext(ctx, selectJoined+` WHERE r.id = ?`, id)

	reg, err := scanJoined(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return reg, nil
}

// List returns registrations joined with their event title and
// department name/code, newest first.
func (r *Repo) List(ctx context.Context, q ListQuery) ([]models.Registration, error) {
	sqlStr, args := buildListSQL(q)

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var out []models.Registration
	for rows.Next() {
		reg, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.PaymentPending, models.PaymentVerified, models.PaymentRejected:
	default:
		return fmt.Errorf("invalid payment status %q", status)
	}

	res, err := r.DB.ExecContext(ctx, `
		UPDATE registrations SET payment_status = ? WHERE id = ?
	`, status, id)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update payment status rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const selectJoined = `
	SELECT r.id, r.event_id, r.department_id, r.name, r.email, r.phone,
	       r.college, r.transaction_id, r.screenshot_url, r.payment_status,
	       r.created_at, e.title, d.name, d.code
	FROM registrations r
	JOIN events e ON e.id = r.event_id
	JOIN departments d ON d.id = r.department_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJoined(row rowScanner) (*models.Registration, error) {
	var (
		reg           models.Registration
		transactionID sql.NullString
		screenshotURL sql.NullString
		paymentStatus sql.NullString
	)

	if err := row.Scan(
		&reg.ID, &reg.EventID, &reg.DepartmentID, &reg.Name, &reg.Email,
		&reg.Phone, &reg.College, &transactionID, &screenshotURL,
		&paymentStatus, &reg.CreatedAt, &reg.EventTitle,
		&reg.DepartmentName, &reg.DepartmentCode,
	); err != nil {
		return nil, err
	}

	reg.TransactionID = transactionID.String
	reg.ScreenshotURL = screenshotURL.String
	reg.PaymentStatus = paymentStatus.String
	if reg.PaymentStatus == "" {
		reg.PaymentStatus = models.PaymentPending
	}
	return &reg, nil
}

func buildListSQL(q ListQuery) (string, []any) {
	var where []string
	var args []any

	if q.EventID != "" && q.EventID != "all" {
		where = append(where, "r.event_id = ?")
		args = append(args, q.EventID)
	}

	if s := strings.TrimSpace(q.Search); s != "" {
		where = append(where, "(LOWER(r.name) LIKE ? OR LOWER(r.email) LIKE ? OR LOWER(r.college) LIKE ?)")
		kw := "%" + strings.ToLower(s) + "%"
		args = append(args, kw, kw, kw)
	}

	sqlStr := selectJoined
	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}
	sqlStr += " ORDER BY r.created_at DESC"

	if q.Limit > 0 {
		sqlStr += " LIMIT ? OFFSET ?"
		offset := q.Offset
		if offset < 0 {
			offset = 0
		}
		args = append(args, q.Limit, offset)
	}

	return sqlStr, args
}
