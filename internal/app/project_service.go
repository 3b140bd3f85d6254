package app

import (
	"context"
	"fmt"
	"log"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/eligibility"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/projectfilter"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	projectRepo secondary.ProjectRepository
	appRepo     secondary.ApplicationRepository
	userRepo    secondary.UserRepository
}

// NewProjectService creates a new ProjectService with injected dependencies.
func NewProjectService(
	projectRepo secondary.ProjectRepository,
	appRepo secondary.ApplicationRepository,
	userRepo secondary.UserRepository,
) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		appRepo:     appRepo,
		userRepo:    userRepo,
	}
}

// Create creates a new project managed by the given manager.
func (s *ProjectServiceImpl) Create(ctx context.Context, req primary.CreateProjectRequest) (*primary.CreateProjectResponse, error) {
	manager, err := s.userRepo.GetByNRIC(ctx, req.ManagerNRIC)
	if err != nil {
		return nil, err
	}
	if manager.Role != string(domain.RoleManager) {
		return nil, domain.NewError(domain.KindPermissionDenied,
			"user %s is not a manager", req.ManagerNRIC)
	}

	if req.Name == "" {
		return nil, domain.NewError(domain.KindValidationFailed, "project name is required")
	}
	if err := validateWindow(req.OpenDate, req.CloseDate); err != nil {
		return nil, err
	}
	units, err := validateUnits(req.Units)
	if err != nil {
		return nil, err
	}
	if req.OfficerSlots < 0 {
		return nil, domain.NewError(domain.KindValidationFailed, "officer slots must not be negative")
	}

	nextID, err := s.projectRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate project ID: %w", err)
	}

	record := &secondary.ProjectRecord{
		ID:           nextID,
		Name:         req.Name,
		Neighborhood: req.Neighborhood,
		OpenDate:     req.OpenDate,
		CloseDate:    req.CloseDate,
		ManagerNRIC:  req.ManagerNRIC,
		OfficerSlots: req.OfficerSlots,
		Visible:      true,
		Units:        units,
	}
	if err := s.projectRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &primary.CreateProjectResponse{
		ProjectID: record.ID,
		Project:   recordToProject(record),
	}, nil
}

// Edit updates a project's editable fields. Zero-value fields are left
// unchanged. Unit counts are frozen once any application references the
// project; changing a flat type's total resets its available count to the
// new total.
func (s *ProjectServiceImpl) Edit(ctx context.Context, req primary.EditProjectRequest) error {
	record, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return err
	}
	if record.ManagerNRIC != req.ManagerNRIC {
		return domain.NewError(domain.KindPermissionDenied,
			"manager %s is not the managing authority of project %s", req.ManagerNRIC, req.ProjectID)
	}

	if req.Name != "" {
		record.Name = req.Name
	}
	if req.Neighborhood != "" {
		record.Neighborhood = req.Neighborhood
	}
	if req.OpenDate != "" {
		record.OpenDate = req.OpenDate
	}
	if req.CloseDate != "" {
		record.CloseDate = req.CloseDate
	}
	if err := validateWindow(record.OpenDate, record.CloseDate); err != nil {
		return err
	}
	if req.OfficerSlots > 0 {
		if req.OfficerSlots < len(record.Officers) {
			return domain.NewError(domain.KindValidationFailed,
				"project %s has %d officers assigned, officer slots cannot shrink below that",
				record.ID, len(record.Officers))
		}
		record.OfficerSlots = req.OfficerSlots
	}

	if len(req.Units) > 0 {
		has, err := s.projectRepo.HasApplications(ctx, record.ID)
		if err != nil {
			return fmt.Errorf("failed to check applications: %w", err)
		}
		if has {
			return domain.NewError(domain.KindValidationFailed,
				"unit counts of project %s are frozen: applications exist", record.ID)
		}
		units, err := validateUnits(req.Units)
		if err != nil {
			return err
		}
		record.Units = units
	}

	if err := s.projectRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete removes a project and cascades its dependents. Refused while any
// BOOKED application references the project.
func (s *ProjectServiceImpl) Delete(ctx context.Context, req primary.DeleteProjectRequest) error {
	record, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return err
	}
	if record.ManagerNRIC != req.ManagerNRIC {
		return domain.NewError(domain.KindPermissionDenied,
			"manager %s is not the managing authority of project %s", req.ManagerNRIC, req.ProjectID)
	}

	booked, err := s.projectRepo.CountBookedApplications(ctx, record.ID)
	if err != nil {
		return fmt.Errorf("failed to count booked applications: %w", err)
	}
	if booked > 0 {
		return domain.NewError(domain.KindInvalidState,
			"project %s has %d booked applications and cannot be deleted", record.ID, booked)
	}

	if err := s.projectRepo.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// SetVisibility toggles the project's visibility flag.
func (s *ProjectServiceImpl) SetVisibility(ctx context.Context, req primary.SetVisibilityRequest) error {
	record, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return err
	}
	if record.ManagerNRIC != req.ManagerNRIC {
		return domain.NewError(domain.KindPermissionDenied,
			"manager %s is not the managing authority of project %s", req.ManagerNRIC, req.ProjectID)
	}

	if err := s.projectRepo.SetVisibility(ctx, record.ID, req.Visible); err != nil {
		return fmt.Errorf("failed to set visibility: %w", err)
	}
	return nil
}

// Get retrieves a project by ID.
func (s *ProjectServiceImpl) Get(ctx context.Context, projectID string) (*primary.Project, error) {
	record, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return recordToProject(record), nil
}

// ListForManager lists projects without visibility filtering, narrowed to
// one manager's when ManagerNRIC is set.
func (s *ProjectServiceImpl) ListForManager(ctx context.Context, req primary.ListProjectsRequest) ([]*primary.Project, error) {
	records, err := s.projectRepo.List(ctx, secondary.ProjectFilters{ManagerNRIC: req.ManagerNRIC})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return recordsToProjects(records), nil
}

// ListForApplicant lists the projects the applicant may see: visible,
// inside their application window, and offering at least one flat type the
// applicant is eligible for. The filter criteria narrow that base set.
// Projects the applicant has applied to are appended regardless of
// visibility so an existing application never goes dark.
func (s *ProjectServiceImpl) ListForApplicant(ctx context.Context, req primary.ListProjectsForApplicantRequest) (*primary.ProjectListing, error) {
	user, err := s.userRepo.GetByNRIC(ctx, req.ApplicantNRIC)
	if err != nil {
		return nil, err
	}

	records, err := s.projectRepo.List(ctx, secondary.ProjectFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	now := today()
	var views []projectfilter.View
	byID := make(map[string]*secondary.ProjectRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
		if !r.Visible {
			continue
		}
		open, err := parseDate(r.OpenDate)
		if err != nil {
			log.Printf("skipping project %s: bad open date %q: %v", r.ID, r.OpenDate, err)
			continue
		}
		closeDate, err := parseDate(r.CloseDate)
		if err != nil {
			log.Printf("skipping project %s: bad close date %q: %v", r.ID, r.CloseDate, err)
			continue
		}
		if now.Before(open) || now.After(closeDate) {
			continue
		}
		if !offersEligibleType(r, user) {
			continue
		}
		views = append(views, projectfilter.View{
			ID:           r.ID,
			Neighborhood: r.Neighborhood,
			OfferedTypes: offeredTypes(r),
		})
	}

	filtered, warnings := projectfilter.Filter(views, req.Criteria)

	included := make(map[string]bool, len(filtered))
	var projects []*primary.Project
	for _, v := range filtered {
		included[v.ID] = true
		projects = append(projects, recordToProject(byID[v.ID]))
	}

	// Applied-to projects stay listed even when hidden, closed or filtered
	// out.
	applications, err := s.appRepo.ListByApplicant(ctx, req.ApplicantNRIC)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	for _, a := range applications {
		if included[a.ProjectID] {
			continue
		}
		if r, ok := byID[a.ProjectID]; ok {
			included[a.ProjectID] = true
			projects = append(projects, recordToProject(r))
		}
	}

	return &primary.ProjectListing{Projects: projects, Warnings: warnings}, nil
}

// Helper functions

func validateWindow(openDate, closeDate string) error {
	open, err := parseDate(openDate)
	if err != nil {
		return domain.NewError(domain.KindValidationFailed, "invalid open date %q", openDate)
	}
	closed, err := parseDate(closeDate)
	if err != nil {
		return domain.NewError(domain.KindValidationFailed, "invalid close date %q", closeDate)
	}
	if closed.Before(open) {
		return domain.NewError(domain.KindValidationFailed,
			"close date %s precedes open date %s", closeDate, openDate)
	}
	return nil
}

// validateUnits checks the requested unit counters and converts them to
// records. A fresh total always starts fully available.
func validateUnits(units []primary.UnitCount) ([]secondary.UnitRecord, error) {
	if len(units) == 0 {
		return nil, domain.NewError(domain.KindValidationFailed, "at least one flat type is required")
	}
	seen := make(map[domain.FlatType]bool, len(units))
	out := make([]secondary.UnitRecord, 0, len(units))
	for _, u := range units {
		ft, err := domain.ParseFlatType(u.FlatType)
		if err != nil {
			return nil, domain.NewError(domain.KindValidationFailed, "%v", err)
		}
		if seen[ft] {
			return nil, domain.NewError(domain.KindValidationFailed, "duplicate flat type %s", ft)
		}
		seen[ft] = true
		if u.Total < 0 {
			return nil, domain.NewError(domain.KindValidationFailed, "unit total must not be negative")
		}
		out = append(out, secondary.UnitRecord{
			FlatType:  string(ft),
			Total:     u.Total,
			Available: u.Total,
		})
	}
	return out, nil
}

func offersEligibleType(p *secondary.ProjectRecord, u *secondary.UserRecord) bool {
	for _, ft := range offeredTypes(p) {
		if eligibility.ApplicantEligible(u.Age, domain.MaritalStatus(u.MaritalStatus), ft) {
			return true
		}
	}
	return false
}

func recordToProject(r *secondary.ProjectRecord) *primary.Project {
	units := make([]primary.UnitCount, len(r.Units))
	for i, u := range r.Units {
		units[i] = primary.UnitCount{FlatType: u.FlatType, Total: u.Total, Available: u.Available}
	}
	return &primary.Project{
		ID:           r.ID,
		Name:         r.Name,
		Neighborhood: r.Neighborhood,
		OpenDate:     r.OpenDate,
		CloseDate:    r.CloseDate,
		ManagerNRIC:  r.ManagerNRIC,
		OfficerSlots: r.OfficerSlots,
		Visible:      r.Visible,
		Units:        units,
		Officers:     r.Officers,
		CreatedAt:    r.CreatedAt,
	}
}

func recordsToProjects(records []*secondary.ProjectRecord) []*primary.Project {
	projects := make([]*primary.Project, len(records))
	for i, r := range records {
		projects[i] = recordToProject(r)
	}
	return projects
}

// Ensure ProjectServiceImpl implements the interface
var _ primary.ProjectService = (*ProjectServiceImpl)(nil)
