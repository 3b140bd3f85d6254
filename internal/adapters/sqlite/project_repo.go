package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// ProjectRepository implements secondary.ProjectRepository with SQLite.
// A project record aggregates three tables: projects, project_units and
// project_officers.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new SQLite project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectSelectCols = "id, name, neighborhood, open_date, close_date, manager_nric, officer_slots, visible, created_at, updated_at"

// scanProject scans a project row into a ProjectRecord (units and officers
// loaded separately).
func scanProject(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ProjectRecord, error) {
	var (
		neighborhood sql.NullString
		visible      bool
		createdAt    time.Time
		updatedAt    time.Time
	)

	record := &secondary.ProjectRecord{}
	err := scanner.Scan(
		&record.ID, &record.Name, &neighborhood, &record.OpenDate, &record.CloseDate,
		&record.ManagerNRIC, &record.OfficerSlots, &visible, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Neighborhood = neighborhood.String
	record.Visible = visible
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// loadUnits attaches the project's unit counters.
func (r *ProjectRepository) loadUnits(ctx context.Context, record *secondary.ProjectRecord) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT flat_type, total, available FROM project_units WHERE project_id = ? ORDER BY flat_type ASC",
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to load project units: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u secondary.UnitRecord
		if err := rows.Scan(&u.FlatType, &u.Total, &u.Available); err != nil {
			return fmt.Errorf("failed to scan project unit: %w", err)
		}
		record.Units = append(record.Units, u)
	}
	return nil
}

// loadOfficers attaches the project's assigned officers.
func (r *ProjectRepository) loadOfficers(ctx context.Context, record *secondary.ProjectRecord) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT officer_nric FROM project_officers WHERE project_id = ? ORDER BY assigned_at ASC",
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to load project officers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var nric string
		if err := rows.Scan(&nric); err != nil {
			return fmt.Errorf("failed to scan project officer: %w", err)
		}
		record.Officers = append(record.Officers, nric)
	}
	return nil
}

// Create persists a new project with its unit counters.
func (r *ProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	var neighborhood sql.NullString
	if project.Neighborhood != "" {
		neighborhood = sql.NullString{String: project.Neighborhood, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, name, neighborhood, open_date, close_date, manager_nric, officer_slots, visible) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		project.ID, project.Name, neighborhood, project.OpenDate, project.CloseDate,
		project.ManagerNRIC, project.OfficerSlots, project.Visible,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	for _, u := range project.Units {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO project_units (project_id, flat_type, total, available) VALUES (?, ?, ?, ?)",
			project.ID, u.FlatType, u.Total, u.Available,
		)
		if err != nil {
			return fmt.Errorf("failed to create project units: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a project by its ID, including units and officers.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+projectSelectCols+" FROM projects WHERE id = ?",
		id,
	)

	record, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("project", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if err := r.loadUnits(ctx, record); err != nil {
		return nil, err
	}
	if err := r.loadOfficers(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List retrieves projects matching the given filters.
func (r *ProjectRepository) List(ctx context.Context, filters secondary.ProjectFilters) ([]*secondary.ProjectRecord, error) {
	query := "SELECT " + projectSelectCols + " FROM projects WHERE 1=1"
	args := []any{}

	if filters.ManagerNRIC != "" {
		query += " AND manager_nric = ?"
		args = append(args, filters.ManagerNRIC)
	}

	if filters.VisibleOnly {
		query += " AND visible = 1"
	}

	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*secondary.ProjectRecord
	for rows.Next() {
		record, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, record)
	}

	for _, record := range projects {
		if err := r.loadUnits(ctx, record); err != nil {
			return nil, err
		}
		if err := r.loadOfficers(ctx, record); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// Update updates a project's editable fields and replaces its unit counters.
func (r *ProjectRepository) Update(ctx context.Context, project *secondary.ProjectRecord) error {
	var neighborhood sql.NullString
	if project.Neighborhood != "" {
		neighborhood = sql.NullString{String: project.Neighborhood, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE projects SET name = ?, neighborhood = ?, open_date = ?, close_date = ?, officer_slots = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		project.Name, neighborhood, project.OpenDate, project.CloseDate, project.OfficerSlots, project.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.NotFound("project", project.ID)
	}

	if _, err := r.db.ExecContext(ctx, "DELETE FROM project_units WHERE project_id = ?", project.ID); err != nil {
		return fmt.Errorf("failed to replace project units: %w", err)
	}
	for _, u := range project.Units {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO project_units (project_id, flat_type, total, available) VALUES (?, ?, ?, ?)",
			project.ID, u.FlatType, u.Total, u.Available,
		)
		if err != nil {
			return fmt.Errorf("failed to replace project units: %w", err)
		}
	}
	return nil
}

// Delete removes a project. Applications, bookings, registrations and
// enquiries cascade via foreign keys.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.NotFound("project", id)
	}
	return nil
}

// SetVisibility toggles the project's visibility flag.
func (r *ProjectRepository) SetVisibility(ctx context.Context, id string, visible bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE projects SET visible = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		visible, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set project visibility: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.NotFound("project", id)
	}
	return nil
}

// AddOfficer appends an officer to the project's assigned list.
func (r *ProjectRepository) AddOfficer(ctx context.Context, projectID, officerNRIC string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO project_officers (project_id, officer_nric) VALUES (?, ?)",
		projectID, officerNRIC,
	)
	if err != nil {
		return fmt.Errorf("failed to add project officer: %w", err)
	}
	return nil
}

// UpdateUnitAvailability persists a new available count for one flat type.
// The schema's CHECK constraint rejects counts outside [0, total].
func (r *ProjectRepository) UpdateUnitAvailability(ctx context.Context, projectID, flatType string, available int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE project_units SET available = ? WHERE project_id = ? AND flat_type = ?",
		available, projectID, flatType,
	)
	if err != nil {
		return fmt.Errorf("failed to update unit availability: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.NotFound("project unit", projectID+"/"+flatType)
	}
	return nil
}

// HasApplications reports whether any application references the project.
func (r *ProjectRepository) HasApplications(ctx context.Context, projectID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM applications WHERE project_id = ?",
		projectID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count applications: %w", err)
	}
	return count > 0, nil
}

// CountBookedApplications returns the number of BOOKED applications
// referencing the project.
func (r *ProjectRepository) CountBookedApplications(ctx context.Context, projectID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM applications WHERE project_id = ? AND status = 'BOOKED'",
		projectID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count booked applications: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available project ID.
func (r *ProjectRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM projects",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next project ID: %w", err)
	}
	return fmt.Sprintf("PROJ-%03d", maxID+1), nil
}

// Ensure ProjectRepository implements the interface
var _ secondary.ProjectRepository = (*ProjectRepository)(nil)
