package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
)

// RegistrationAdapter is a thin adapter that translates CLI operations to
// RegistrationService calls.
type RegistrationAdapter struct {
	service primary.RegistrationService
	out     io.Writer
}

// NewRegistrationAdapter creates a new RegistrationAdapter with the given service.
func NewRegistrationAdapter(service primary.RegistrationService, out io.Writer) *RegistrationAdapter {
	return &RegistrationAdapter{
		service: service,
		out:     out,
	}
}

// Register registers an officer to handle a project.
func (a *RegistrationAdapter) Register(ctx context.Context, officerNRIC, projectID string) error {
	resp, err := a.service.Register(ctx, primary.RegisterRequest{
		OfficerNRIC: officerNRIC,
		ProjectID:   projectID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Submitted registration %s for project %s\n",
		resp.RegistrationID, resp.Registration.ProjectID)
	return nil
}

// Approve approves a pending registration.
func (a *RegistrationAdapter) Approve(ctx context.Context, registrationID, managerNRIC string) error {
	err := a.service.Approve(ctx, primary.DecideRegistrationRequest{
		RegistrationID: registrationID,
		ManagerNRIC:    managerNRIC,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Registration %s approved\n", registrationID)
	return nil
}

// Reject rejects a pending registration.
func (a *RegistrationAdapter) Reject(ctx context.Context, registrationID, managerNRIC string) error {
	err := a.service.Reject(ctx, primary.DecideRegistrationRequest{
		RegistrationID: registrationID,
		ManagerNRIC:    managerNRIC,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Registration %s rejected\n", registrationID)
	return nil
}

// ListByOfficer lists an officer's registrations.
func (a *RegistrationAdapter) ListByOfficer(ctx context.Context, nric string) error {
	registrations, err := a.service.ListByOfficer(ctx, nric)
	if err != nil {
		return fmt.Errorf("failed to list registrations: %w", err)
	}
	return a.renderList(registrations)
}

// ListByProject lists a project's registrations with optional status filter.
func (a *RegistrationAdapter) ListByProject(ctx context.Context, projectID, status string) error {
	registrations, err := a.service.ListByProject(ctx, projectID, status)
	if err != nil {
		return fmt.Errorf("failed to list registrations: %w", err)
	}
	return a.renderList(registrations)
}

func (a *RegistrationAdapter) renderList(registrations []*primary.Registration) error {
	if len(registrations) == 0 {
		fmt.Fprintln(a.out, "No registrations found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-11s %-10s %s\n", "ID", "OFFICER", "PROJECT", "STATUS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────")
	for _, r := range registrations {
		fmt.Fprintf(a.out, "%-10s %-11s %-10s %s\n",
			r.ID, r.OfficerNRIC, r.ProjectID, statusBadge(r.Status))
	}
	fmt.Fprintln(a.out)

	return nil
}
