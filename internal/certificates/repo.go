package certificates

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"festhub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Create(ctx context.Context, cert models.Certificate) error {
	var regID any
	if cert.RegistrationID != "" {
		regID = cert.RegistrationID
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO certificates
		  (id, event_id, participant_name, participant_email, certificate_url, registration_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`, cert.ID, cert.EventID, cert.ParticipantName, cert.ParticipantEmail,
		cert.CertificateURL, regID)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	return nil
}

// Search matches participant name or email by case-insensitive
// substring, the same lookup the public certificate page offers.
func (r *Repo) Search(ctx context.Context, query string) ([]models.Certificate, error) {
	kw := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	rows, err := r.DB.QueryContext(ctx, `
		SELECT c.id, c.event_id, c.participant_name, c.participant_email,
		       c.certificate_url, c.registration_id, c.created_at, e.title
		FROM certificates c
		JOIN events e ON e.id = c.event_id
		WHERE LOWER(c.participant_name) LIKE ? OR LOWER(c.participant_email) LIKE ?
		ORDER BY c.created_at DESC
	`, kw, kw)
	if err != nil {
		return nil, fmt.Errorf("search certificates: %w", err)
	}
	defer rows.Close()

	var out []models.Certificate
	for rows.Next() {
		var (
			cert  models.Certificate
			regID sql.NullString
		)
		if err := rows.Scan(
			&cert.ID, &cert.EventID, &cert.ParticipantName, &cert.ParticipantEmail,
			&cert.CertificateURL, &regID, &cert.CreatedAt, &cert.EventTitle,
		); err != nil {
			return nil, fmt.Errorf("scan certificate: %w", err)
		}
		cert.RegistrationID = regID.String
		out = append(out, cert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// FindRegistrationID links an uploaded certificate back to the matching
// registration, when one exists.
func (r *Repo) FindRegistrationID(ctx context.Context, eventID, email string) (string, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id FROM registrations
		WHERE event_id = ? AND LOWER(email) = ?
	`, eventID, strings.ToLower(strings.TrimSpace(email)))

	var id string
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("find registration: %w", err)
	}
	return id, nil
}
