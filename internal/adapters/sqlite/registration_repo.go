package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// RegistrationRepository implements secondary.RegistrationRepository with
// SQLite.
type RegistrationRepository struct {
	db *sql.DB
}

// NewRegistrationRepository creates a new SQLite registration repository.
func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

const registrationSelectCols = "id, officer_nric, project_id, status, created_at, decided_at"

// scanRegistration scans a registration row into a RegistrationRecord.
func scanRegistration(scanner interface {
	Scan(dest ...any) error
}) (*secondary.RegistrationRecord, error) {
	var (
		createdAt time.Time
		decidedAt sql.NullTime
	)

	record := &secondary.RegistrationRecord{}
	err := scanner.Scan(
		&record.ID, &record.OfficerNRIC, &record.ProjectID, &record.Status,
		&createdAt, &decidedAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	if decidedAt.Valid {
		record.DecidedAt = decidedAt.Time.Format(time.RFC3339)
	}
	return record, nil
}

// Create persists a new registration.
func (r *RegistrationRepository) Create(ctx context.Context, registration *secondary.RegistrationRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO registrations (id, officer_nric, project_id, status) VALUES (?, ?, ?, ?)",
		registration.ID, registration.OfficerNRIC, registration.ProjectID, registration.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

// GetByID retrieves a registration by its ID.
func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*secondary.RegistrationRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+registrationSelectCols+" FROM registrations WHERE id = ?",
		id,
	)

	record, err := scanRegistration(row)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("registration", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	return record, nil
}

// Update updates an existing registration's status and decision timestamp.
func (r *RegistrationRepository) Update(ctx context.Context, registration *secondary.RegistrationRecord) error {
	var decidedAt sql.NullString
	if registration.DecidedAt != "" {
		decidedAt = sql.NullString{String: registration.DecidedAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE registrations SET status = ?, decided_at = ? WHERE id = ?",
		registration.Status, decidedAt, registration.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update registration: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.NotFound("registration", registration.ID)
	}
	return nil
}

// ListByOfficer retrieves all registrations of an officer.
func (r *RegistrationRepository) ListByOfficer(ctx context.Context, nric string) ([]*secondary.RegistrationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+registrationSelectCols+" FROM registrations WHERE officer_nric = ? ORDER BY created_at ASC",
		nric,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	return collectRegistrations(rows)
}

// ListByProject retrieves registrations for a project, optionally narrowed
// by status.
func (r *RegistrationRepository) ListByProject(ctx context.Context, projectID, status string) ([]*secondary.RegistrationRecord, error) {
	query := "SELECT " + registrationSelectCols + " FROM registrations WHERE project_id = ?"
	args := []any{projectID}

	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	return collectRegistrations(rows)
}

// ExistsForOfficerProject reports whether the officer already has a
// registration for the project.
func (r *RegistrationRepository) ExistsForOfficerProject(ctx context.Context, nric, projectID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM registrations WHERE officer_nric = ? AND project_id = ?",
		nric, projectID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check registration: %w", err)
	}
	return count > 0, nil
}

// GetNextID returns the next available registration ID.
func (r *RegistrationRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM registrations",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next registration ID: %w", err)
	}
	return fmt.Sprintf("REG-%03d", maxID+1), nil
}

func collectRegistrations(rows *sql.Rows) ([]*secondary.RegistrationRecord, error) {
	var registrations []*secondary.RegistrationRecord
	for rows.Next() {
		record, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		registrations = append(registrations, record)
	}
	return registrations, nil
}

// Ensure RegistrationRepository implements the interface
var _ secondary.RegistrationRepository = (*RegistrationRepository)(nil)
