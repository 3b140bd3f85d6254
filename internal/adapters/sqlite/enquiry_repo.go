package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// EnquiryRepository implements secondary.EnquiryRepository with SQLite.
type EnquiryRepository struct {
	db *sql.DB
}

// NewEnquiryRepository creates a new SQLite enquiry repository.
func NewEnquiryRepository(db *sql.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

const enquirySelectCols = "id, applicant_nric, project_id, content, reply, replied_by, created_at, updated_at"

// scanEnquiry scans an enquiry row into an EnquiryRecord.
func scanEnquiry(scanner interface {
	Scan(dest ...any) error
}) (*secondary.EnquiryRecord, error) {
	var (
		reply     sql.NullString
		repliedBy sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.EnquiryRecord{}
	err := scanner.Scan(
		&record.ID, &record.ApplicantNRIC, &record.ProjectID, &record.Content,
		&reply, &repliedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Reply = reply.String
	record.RepliedBy = repliedBy.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Create persists a new enquiry.
func (r *EnquiryRepository) Create(ctx context.Context, enquiry *secondary.EnquiryRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO enquiries (id, applicant_nric, project_id, content) VALUES (?, ?, ?, ?)",
		enquiry.ID, enquiry.ApplicantNRIC, enquiry.ProjectID, enquiry.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to create enquiry: %w", err)
	}
	return nil
}

// GetByID retrieves an enquiry by its ID.
func (r *EnquiryRepository) GetByID(ctx context.Context, id string) (*secondary.EnquiryRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+enquirySelectCols+" FROM enquiries WHERE id = ?",
		id,
	)

	record, err := scanEnquiry(row)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("enquiry", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}
	return record, nil
}

// Update updates an enquiry's content or reply. Empty reply fields are
// stored as NULL.
func (r *EnquiryRepository) Update(ctx context.Context, enquiry *secondary.EnquiryRecord) error {
	var reply, repliedBy sql.NullString
	if enquiry.Reply != "" {
		reply = sql.NullString{String: enquiry.Reply, Valid: true}
	}
	if enquiry.RepliedBy != "" {
		repliedBy = sql.NullString{String: enquiry.RepliedBy, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE enquiries SET content = ?, reply = ?, replied_by = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		enquiry.Content, reply, repliedBy, enquiry.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update enquiry: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.NotFound("enquiry", enquiry.ID)
	}
	return nil
}

// Delete removes an enquiry from persistence.
func (r *EnquiryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM enquiries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete enquiry: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.NotFound("enquiry", id)
	}
	return nil
}

// List retrieves enquiries matching the given filters.
func (r *EnquiryRepository) List(ctx context.Context, filters secondary.EnquiryFilters) ([]*secondary.EnquiryRecord, error) {
	query := "SELECT " + enquirySelectCols + " FROM enquiries WHERE 1=1"
	args := []any{}

	if filters.ApplicantNRIC != "" {
		query += " AND applicant_nric = ?"
		args = append(args, filters.ApplicantNRIC)
	}

	if filters.ProjectID != "" {
		query += " AND project_id = ?"
		args = append(args, filters.ProjectID)
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	defer rows.Close()

	var enquiries []*secondary.EnquiryRecord
	for rows.Next() {
		record, err := scanEnquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enquiry: %w", err)
		}
		enquiries = append(enquiries, record)
	}
	return enquiries, nil
}

// GetNextID returns the next available enquiry ID.
func (r *EnquiryRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM enquiries",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next enquiry ID: %w", err)
	}
	return fmt.Sprintf("ENQ-%03d", maxID+1), nil
}

// Ensure EnquiryRepository implements the interface
var _ secondary.EnquiryRepository = (*EnquiryRepository)(nil)
