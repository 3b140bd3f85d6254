package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// BookingRepository implements secondary.BookingRepository with SQLite.
// Bookings carry no Update - a booking is created once and deleted only by
// a withdrawal reversal or project cascade.
type BookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new SQLite booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingSelectCols = "id, application_id, applicant_nric, project_id, flat_type, officer_nric, receipt_ref, created_at"

// scanBooking scans a booking row into a BookingRecord.
func scanBooking(scanner interface {
	Scan(dest ...any) error
}) (*secondary.BookingRecord, error) {
	var createdAt time.Time

	record := &secondary.BookingRecord{}
	err := scanner.Scan(
		&record.ID, &record.ApplicationID, &record.ApplicantNRIC, &record.ProjectID,
		&record.FlatType, &record.OfficerNRIC, &record.ReceiptRef, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *secondary.BookingRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO bookings (id, application_id, applicant_nric, project_id, flat_type, officer_nric, receipt_ref) VALUES (?, ?, ?, ?, ?, ?, ?)",
		booking.ID, booking.ApplicationID, booking.ApplicantNRIC, booking.ProjectID,
		booking.FlatType, booking.OfficerNRIC, booking.ReceiptRef,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*secondary.BookingRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bookingSelectCols+" FROM bookings WHERE id = ?",
		id,
	)

	record, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("booking", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return record, nil
}

// GetByApplication retrieves the booking for an application.
func (r *BookingRepository) GetByApplication(ctx context.Context, applicationID string) (*secondary.BookingRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bookingSelectCols+" FROM bookings WHERE application_id = ?",
		applicationID,
	)

	record, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("booking for application", applicationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return record, nil
}

// List retrieves bookings matching the given filters.
func (r *BookingRepository) List(ctx context.Context, filters secondary.BookingFilters) ([]*secondary.BookingRecord, error) {
	query := "SELECT " + bookingSelectCols + " FROM bookings WHERE 1=1"
	args := []any{}

	if filters.ProjectID != "" {
		query += " AND project_id = ?"
		args = append(args, filters.ProjectID)
	}

	if filters.FlatType != "" {
		query += " AND flat_type = ?"
		args = append(args, filters.FlatType)
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*secondary.BookingRecord
	for rows.Next() {
		record, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, record)
	}
	return bookings, nil
}

// Delete removes a booking from persistence.
func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.NotFound("booking", id)
	}
	return nil
}

// GetNextID returns the next available booking ID.
func (r *BookingRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM bookings",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next booking ID: %w", err)
	}
	return fmt.Sprintf("BOOK-%03d", maxID+1), nil
}

// Ensure BookingRepository implements the interface
var _ secondary.BookingRepository = (*BookingRepository)(nil)
