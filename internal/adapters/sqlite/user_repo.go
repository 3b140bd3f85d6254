// Package sqlite contains SQLite implementations of repository interfaces.
// Missing rows surface as domain NotFound errors so the service layer can
// discriminate them from infrastructure failures.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// UserRepository implements secondary.UserRepository with SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userSelectCols = "nric, name, password, age, marital_status, role, created_at"

// scanUser scans a user row into a UserRecord.
func scanUser(scanner interface {
	Scan(dest ...any) error
}) (*secondary.UserRecord, error) {
	var createdAt time.Time

	record := &secondary.UserRecord{}
	err := scanner.Scan(
		&record.NRIC, &record.Name, &record.Password,
		&record.Age, &record.MaritalStatus, &record.Role, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, user *secondary.UserRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (nric, name, password, age, marital_status, role) VALUES (?, ?, ?, ?, ?, ?)",
		user.NRIC, user.Name, user.Password, user.Age, user.MaritalStatus, user.Role,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByNRIC retrieves a user by NRIC.
func (r *UserRepository) GetByNRIC(ctx context.Context, nric string) (*secondary.UserRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+userSelectCols+" FROM users WHERE nric = ?",
		nric,
	)

	record, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("user", nric)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return record, nil
}

// Update updates an existing user.
func (r *UserRepository) Update(ctx context.Context, user *secondary.UserRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET name = ?, password = ?, age = ?, marital_status = ? WHERE nric = ?",
		user.Name, user.Password, user.Age, user.MaritalStatus, user.NRIC,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.NotFound("user", user.NRIC)
	}
	return nil
}

// List retrieves users matching the given filters.
func (r *UserRepository) List(ctx context.Context, filters secondary.UserFilters) ([]*secondary.UserRecord, error) {
	query := "SELECT " + userSelectCols + " FROM users WHERE 1=1"
	args := []any{}

	if filters.Role != "" {
		query += " AND role = ?"
		args = append(args, filters.Role)
	}

	query += " ORDER BY nric ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*secondary.UserRecord
	for rows.Next() {
		record, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, record)
	}
	return users, nil
}

// Ensure UserRepository implements the interface
var _ secondary.UserRepository = (*UserRepository)(nil)
