// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// all business rules to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
)

// statusBadge renders a lifecycle status with a consistent color per state.
func statusBadge(status string) string {
	switch status {
	case "PENDING":
		return color.New(color.FgYellow).Sprint(status)
	case "SUCCESSFUL", "APPROVED", "BOOKED":
		return color.New(color.FgHiGreen).Sprint(status)
	case "UNSUCCESSFUL", "REJECTED":
		return color.New(color.FgRed).Sprint(status)
	case "WITHDRAWN":
		return color.New(color.FgHiBlack).Sprint(status)
	default:
		return status
	}
}

// ApplicationAdapter is a thin adapter that translates CLI operations to
// ApplicationService calls. It depends only on the service interface,
// enabling easy testing with mocks.
type ApplicationAdapter struct {
	service primary.ApplicationService
	out     io.Writer
}

// NewApplicationAdapter creates a new ApplicationAdapter with the given service.
func NewApplicationAdapter(service primary.ApplicationService, out io.Writer) *ApplicationAdapter {
	return &ApplicationAdapter{
		service: service,
		out:     out,
	}
}

// Submit submits a new application.
func (a *ApplicationAdapter) Submit(ctx context.Context, applicantNRIC, projectID, flatType string) error {
	resp, err := a.service.Submit(ctx, primary.SubmitApplicationRequest{
		ApplicantNRIC: applicantNRIC,
		ProjectID:     projectID,
		FlatType:      flatType,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Submitted application %s for %s (%s)\n",
		resp.ApplicationID, resp.Application.ProjectID, resp.Application.FlatType)
	return nil
}

// Approve approves a pending application.
func (a *ApplicationAdapter) Approve(ctx context.Context, applicationID, managerNRIC string) error {
	err := a.service.Approve(ctx, primary.DecideApplicationRequest{
		ApplicationID: applicationID,
		ManagerNRIC:   managerNRIC,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Application %s approved\n", applicationID)
	return nil
}

// Reject rejects a pending application.
func (a *ApplicationAdapter) Reject(ctx context.Context, applicationID, managerNRIC string) error {
	err := a.service.Reject(ctx, primary.DecideApplicationRequest{
		ApplicationID: applicationID,
		ManagerNRIC:   managerNRIC,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Application %s rejected\n", applicationID)
	return nil
}

// RequestWithdrawal flags an application for withdrawal.
func (a *ApplicationAdapter) RequestWithdrawal(ctx context.Context, applicationID, applicantNRIC string) error {
	err := a.service.RequestWithdrawal(ctx, primary.WithdrawalRequest{
		ApplicationID: applicationID,
		ApplicantNRIC: applicantNRIC,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Withdrawal requested for application %s\n", applicationID)
	return nil
}

// ApproveWithdrawal approves a pending withdrawal request.
func (a *ApplicationAdapter) ApproveWithdrawal(ctx context.Context, applicationID, managerNRIC string) error {
	err := a.service.ApproveWithdrawal(ctx, primary.WithdrawalDecisionRequest{
		ApplicationID: applicationID,
		ManagerNRIC:   managerNRIC,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Application %s withdrawn\n", applicationID)
	return nil
}

// RejectWithdrawal rejects a pending withdrawal request.
func (a *ApplicationAdapter) RejectWithdrawal(ctx context.Context, applicationID, managerNRIC string) error {
	err := a.service.RejectWithdrawal(ctx, primary.WithdrawalDecisionRequest{
		ApplicationID: applicationID,
		ManagerNRIC:   managerNRIC,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Withdrawal request for %s rejected\n", applicationID)
	return nil
}

// Show displays details for a single application.
func (a *ApplicationAdapter) Show(ctx context.Context, applicationID string) error {
	app, err := a.service.Get(ctx, applicationID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nApplication: %s\n", app.ID)
	fmt.Fprintf(a.out, "Applicant:   %s\n", app.ApplicantNRIC)
	fmt.Fprintf(a.out, "Project:     %s\n", app.ProjectID)
	fmt.Fprintf(a.out, "Flat type:   %s\n", app.FlatType)
	fmt.Fprintf(a.out, "Status:      %s\n", statusBadge(app.Status))
	if app.BookingID != "" {
		fmt.Fprintf(a.out, "Booking:     %s (%s)\n", app.BookingID, app.BookedFlatType)
	}
	if app.WithdrawalRequested {
		fmt.Fprintln(a.out, "Withdrawal:  requested")
	}
	fmt.Fprintf(a.out, "Created:     %s\n", app.CreatedAt)
	fmt.Fprintln(a.out)

	return nil
}

// ListByProject lists a project's applications with optional status filter.
func (a *ApplicationAdapter) ListByProject(ctx context.Context, projectID, status string) error {
	applications, err := a.service.ListByProject(ctx, projectID, status)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}
	return a.renderList(applications)
}

// ListByApplicant lists an applicant's applications, newest first.
func (a *ApplicationAdapter) ListByApplicant(ctx context.Context, nric string) error {
	applications, err := a.service.ListByApplicant(ctx, nric)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}
	return a.renderList(applications)
}

func (a *ApplicationAdapter) renderList(applications []*primary.Application) error {
	if len(applications) == 0 {
		fmt.Fprintln(a.out, "No applications found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-11s %-10s %-12s %s\n", "ID", "APPLICANT", "PROJECT", "FLAT TYPE", "STATUS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, app := range applications {
		fmt.Fprintf(a.out, "%-10s %-11s %-10s %-12s %s\n",
			app.ID, app.ApplicantNRIC, app.ProjectID, app.FlatType, statusBadge(app.Status))
	}
	fmt.Fprintln(a.out)

	return nil
}
