package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// ApplicationRepository implements secondary.ApplicationRepository with
// SQLite.
type ApplicationRepository struct {
	db *sql.DB
}

// NewApplicationRepository creates a new SQLite application repository.
func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationSelectCols = "id, applicant_nric, project_id, flat_type, status, booked_flat_type, booking_id, withdrawal_requested, created_at, updated_at"

// scanApplication scans an application row into an ApplicationRecord.
func scanApplication(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ApplicationRecord, error) {
	var (
		bookedFlatType      sql.NullString
		bookingID           sql.NullString
		withdrawalRequested bool
		createdAt           time.Time
		updatedAt           time.Time
	)

	record := &secondary.ApplicationRecord{}
	err := scanner.Scan(
		&record.ID, &record.ApplicantNRIC, &record.ProjectID, &record.FlatType, &record.Status,
		&bookedFlatType, &bookingID, &withdrawalRequested, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.BookedFlatType = bookedFlatType.String
	record.BookingID = bookingID.String
	record.WithdrawalRequested = withdrawalRequested
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Create persists a new application.
func (r *ApplicationRepository) Create(ctx context.Context, application *secondary.ApplicationRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO applications (id, applicant_nric, project_id, flat_type, status) VALUES (?, ?, ?, ?, ?)",
		application.ID, application.ApplicantNRIC, application.ProjectID, application.FlatType, application.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by its ID.
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*secondary.ApplicationRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+applicationSelectCols+" FROM applications WHERE id = ?",
		id,
	)

	record, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("application", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return record, nil
}

// Update updates an existing application. Empty booking references are
// stored as NULL.
func (r *ApplicationRepository) Update(ctx context.Context, application *secondary.ApplicationRecord) error {
	var bookedFlatType, bookingID sql.NullString
	if application.BookedFlatType != "" {
		bookedFlatType = sql.NullString{String: application.BookedFlatType, Valid: true}
	}
	if application.BookingID != "" {
		bookingID = sql.NullString{String: application.BookingID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE applications SET status = ?, booked_flat_type = ?, booking_id = ?, withdrawal_requested = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		application.Status, bookedFlatType, bookingID, application.WithdrawalRequested, application.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.NotFound("application", application.ID)
	}
	return nil
}

// ListByApplicant retrieves all applications of an applicant, newest first.
func (r *ApplicationRepository) ListByApplicant(ctx context.Context, nric string) ([]*secondary.ApplicationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+applicationSelectCols+" FROM applications WHERE applicant_nric = ? ORDER BY created_at DESC",
		nric,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

// ListByProject retrieves applications for a project, optionally narrowed by
// status.
func (r *ApplicationRepository) ListByProject(ctx context.Context, projectID, status string) ([]*secondary.ApplicationRecord, error) {
	query := "SELECT " + applicationSelectCols + " FROM applications WHERE project_id = ?"
	args := []any{projectID}

	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	return collectApplications(rows)
}

// GetActiveByApplicant retrieves the applicant's active application
// (PENDING, SUCCESSFUL or BOOKED). Returns nil when there is none.
func (r *ApplicationRepository) GetActiveByApplicant(ctx context.Context, nric string) (*secondary.ApplicationRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+applicationSelectCols+" FROM applications WHERE applicant_nric = ? AND status IN ('PENDING', 'SUCCESSFUL', 'BOOKED')",
		nric,
	)

	record, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active application: %w", err)
	}
	return record, nil
}

// GetNextID returns the next available application ID.
func (r *ApplicationRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM applications",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next application ID: %w", err)
	}
	return fmt.Sprintf("APP-%03d", maxID+1), nil
}

func collectApplications(rows *sql.Rows) ([]*secondary.ApplicationRecord, error) {
	var applications []*secondary.ApplicationRecord
	for rows.Next() {
		record, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, record)
	}
	return applications, nil
}

// Ensure ApplicationRepository implements the interface
var _ secondary.ApplicationRepository = (*ApplicationRepository)(nil)
