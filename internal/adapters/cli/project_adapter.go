package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
)

// ProjectAdapter is a thin adapter that translates CLI operations to
// ProjectService calls.
type ProjectAdapter struct {
	service primary.ProjectService
	out     io.Writer
}

// NewProjectAdapter creates a new ProjectAdapter with the given service.
func NewProjectAdapter(service primary.ProjectService, out io.Writer) *ProjectAdapter {
	return &ProjectAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new project.
func (a *ProjectAdapter) Create(ctx context.Context, req primary.CreateProjectRequest) error {
	resp, err := a.service.Create(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created project %s: %s\n", resp.ProjectID, resp.Project.Name)
	return nil
}

// Edit updates a project's editable fields.
func (a *ProjectAdapter) Edit(ctx context.Context, req primary.EditProjectRequest) error {
	if err := a.service.Edit(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Project %s updated\n", req.ProjectID)
	return nil
}

// Delete removes a project.
func (a *ProjectAdapter) Delete(ctx context.Context, projectID, managerNRIC string) error {
	err := a.service.Delete(ctx, primary.DeleteProjectRequest{
		ProjectID:   projectID,
		ManagerNRIC: managerNRIC,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Project %s deleted\n", projectID)
	return nil
}

// SetVisibility toggles a project's visibility.
func (a *ProjectAdapter) SetVisibility(ctx context.Context, projectID, managerNRIC string, visible bool) error {
	err := a.service.SetVisibility(ctx, primary.SetVisibilityRequest{
		ProjectID:   projectID,
		ManagerNRIC: managerNRIC,
		Visible:     visible,
	})
	if err != nil {
		return err
	}

	state := "hidden"
	if visible {
		state = "visible"
	}
	fmt.Fprintf(a.out, "✓ Project %s is now %s\n", projectID, state)
	return nil
}

// Show displays details for a single project.
func (a *ProjectAdapter) Show(ctx context.Context, projectID string) error {
	project, err := a.service.Get(ctx, projectID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nProject: %s\n", project.ID)
	fmt.Fprintf(a.out, "Name:         %s\n", project.Name)
	fmt.Fprintf(a.out, "Neighborhood: %s\n", project.Neighborhood)
	fmt.Fprintf(a.out, "Window:       %s to %s\n", project.OpenDate, project.CloseDate)
	fmt.Fprintf(a.out, "Manager:      %s\n", project.ManagerNRIC)
	fmt.Fprintf(a.out, "Visible:      %t\n", project.Visible)
	fmt.Fprintf(a.out, "Officers:     %d/%d", len(project.Officers), project.OfficerSlots)
	if len(project.Officers) > 0 {
		fmt.Fprintf(a.out, " (%s)", strings.Join(project.Officers, ", "))
	}
	fmt.Fprintln(a.out)
	for _, u := range project.Units {
		fmt.Fprintf(a.out, "  %-12s %d/%d available\n", u.FlatType, u.Available, u.Total)
	}
	fmt.Fprintln(a.out)

	return nil
}

// ListForManager lists a manager's projects without visibility filtering.
func (a *ProjectAdapter) ListForManager(ctx context.Context, managerNRIC string) error {
	projects, err := a.service.ListForManager(ctx, primary.ListProjectsRequest{ManagerNRIC: managerNRIC})
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	return a.renderList(projects)
}

// ListForApplicant lists projects visible to an applicant, narrowed by
// filter criteria. Unrecognized criteria are reported as warnings.
func (a *ProjectAdapter) ListForApplicant(ctx context.Context, applicantNRIC string, criteria map[string]string) error {
	listing, err := a.service.ListForApplicant(ctx, primary.ListProjectsForApplicantRequest{
		ApplicantNRIC: applicantNRIC,
		Criteria:      criteria,
	})
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	for _, warning := range listing.Warnings {
		fmt.Fprintf(a.out, "warning: %s\n", warning)
	}
	return a.renderList(listing.Projects)
}

func (a *ProjectAdapter) renderList(projects []*primary.Project) error {
	if len(projects) == 0 {
		fmt.Fprintln(a.out, "No projects found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-20s %-12s %-22s %s\n", "ID", "NAME", "NEIGHBORHOOD", "WINDOW", "UNITS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────")
	for _, p := range projects {
		var units []string
		for _, u := range p.Units {
			units = append(units, fmt.Sprintf("%s %d/%d", u.FlatType, u.Available, u.Total))
		}
		fmt.Fprintf(a.out, "%-10s %-20s %-12s %-22s %s\n",
			p.ID, p.Name, p.Neighborhood,
			p.OpenDate+" to "+p.CloseDate, strings.Join(units, ", "))
	}
	fmt.Fprintln(a.out)

	return nil
}
