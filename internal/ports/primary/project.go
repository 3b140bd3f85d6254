package primary

import "context"

// ProjectService defines the primary port for project management.
type ProjectService interface {
	// Create creates a new project managed by the given manager.
	Create(ctx context.Context, req CreateProjectRequest) (*CreateProjectResponse, error)

	// Edit updates a project's editable fields. Unit counts are frozen
	// once any application exists for the project.
	Edit(ctx context.Context, req EditProjectRequest) error

	// Delete removes a project and cascades its dependents. Refused while
	// any BOOKED application references the project.
	Delete(ctx context.Context, req DeleteProjectRequest) error

	// SetVisibility toggles the project's visibility flag.
	SetVisibility(ctx context.Context, req SetVisibilityRequest) error

	// Get retrieves a project by ID.
	Get(ctx context.Context, projectID string) (*Project, error)

	// ListForManager lists the manager's own projects (or all when
	// ManagerNRIC is empty), without visibility filtering.
	ListForManager(ctx context.Context, req ListProjectsRequest) ([]*Project, error)

	// ListForApplicant lists visible, open projects the applicant is
	// eligible to view, narrowed by filter criteria. Projects the
	// applicant has applied to are always included. Unknown criteria keys
	// produce warnings, not errors.
	ListForApplicant(ctx context.Context, req ListProjectsForApplicantRequest) (*ProjectListing, error)
}

// UnitCount describes one flat type's counters at the port boundary.
type UnitCount struct {
	FlatType  string
	Total     int
	Available int
}

// CreateProjectRequest contains parameters for creating a project.
type CreateProjectRequest struct {
	Name         string
	Neighborhood string
	OpenDate     string // 2006-01-02
	CloseDate    string // 2006-01-02
	ManagerNRIC  string
	OfficerSlots int
	Units        []UnitCount
}

// CreateProjectResponse contains the result of creating a project.
type CreateProjectResponse struct {
	ProjectID string
	Project   *Project
}

// EditProjectRequest contains parameters for editing a project. Zero-value
// fields are left unchanged; Units may only change while the project has no
// applications.
type EditProjectRequest struct {
	ProjectID    string
	ManagerNRIC  string
	Name         string
	Neighborhood string
	OpenDate     string
	CloseDate    string
	OfficerSlots int
	Units        []UnitCount
}

// DeleteProjectRequest contains parameters for deleting a project.
type DeleteProjectRequest struct {
	ProjectID   string
	ManagerNRIC string
}

// SetVisibilityRequest contains parameters for toggling visibility.
type SetVisibilityRequest struct {
	ProjectID   string
	ManagerNRIC string
	Visible     bool
}

// ListProjectsRequest contains parameters for manager project listing.
type ListProjectsRequest struct {
	ManagerNRIC string
}

// ListProjectsForApplicantRequest contains parameters for applicant project
// listing.
type ListProjectsForApplicantRequest struct {
	ApplicantNRIC string
	Criteria      map[string]string
}

// ProjectListing is a filtered project list plus any filter warnings.
type ProjectListing struct {
	Projects []*Project
	Warnings []string
}

// Project represents a project at the port boundary.
type Project struct {
	ID           string
	Name         string
	Neighborhood string
	OpenDate     string
	CloseDate    string
	ManagerNRIC  string
	OfficerSlots int
	Visible      bool
	Units        []UnitCount
	Officers     []string
	CreatedAt    string
}
