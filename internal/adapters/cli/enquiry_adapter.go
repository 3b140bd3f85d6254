package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
)

// EnquiryAdapter is a thin adapter that translates CLI operations to
// EnquiryService calls.
type EnquiryAdapter struct {
	service primary.EnquiryService
	out     io.Writer
}

// NewEnquiryAdapter creates a new EnquiryAdapter with the given service.
func NewEnquiryAdapter(service primary.EnquiryService, out io.Writer) *EnquiryAdapter {
	return &EnquiryAdapter{
		service: service,
		out:     out,
	}
}

// Submit submits a new enquiry about a project.
func (a *EnquiryAdapter) Submit(ctx context.Context, applicantNRIC, projectID, content string) error {
	resp, err := a.service.Submit(ctx, primary.SubmitEnquiryRequest{
		ApplicantNRIC: applicantNRIC,
		ProjectID:     projectID,
		Content:       content,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Submitted enquiry %s for project %s\n", resp.EnquiryID, projectID)
	return nil
}

// Edit updates the content of an unreplied enquiry.
func (a *EnquiryAdapter) Edit(ctx context.Context, enquiryID, applicantNRIC, content string) error {
	err := a.service.Edit(ctx, primary.EditEnquiryRequest{
		EnquiryID:     enquiryID,
		ApplicantNRIC: applicantNRIC,
		Content:       content,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Enquiry %s updated\n", enquiryID)
	return nil
}

// Delete removes an unreplied enquiry.
func (a *EnquiryAdapter) Delete(ctx context.Context, enquiryID, applicantNRIC string) error {
	err := a.service.Delete(ctx, primary.DeleteEnquiryRequest{
		EnquiryID:     enquiryID,
		ApplicantNRIC: applicantNRIC,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Enquiry %s deleted\n", enquiryID)
	return nil
}

// Reply records a reply to an enquiry.
func (a *EnquiryAdapter) Reply(ctx context.Context, enquiryID, responderNRIC, reply string) error {
	err := a.service.Reply(ctx, primary.ReplyEnquiryRequest{
		EnquiryID:     enquiryID,
		ResponderNRIC: responderNRIC,
		Reply:         reply,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Replied to enquiry %s\n", enquiryID)
	return nil
}

// ListByApplicant lists an applicant's enquiries.
func (a *EnquiryAdapter) ListByApplicant(ctx context.Context, nric string) error {
	enquiries, err := a.service.ListByApplicant(ctx, nric)
	if err != nil {
		return fmt.Errorf("failed to list enquiries: %w", err)
	}
	return a.renderList(enquiries)
}

// ListByProject lists a project's enquiries.
func (a *EnquiryAdapter) ListByProject(ctx context.Context, projectID string) error {
	enquiries, err := a.service.ListByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to list enquiries: %w", err)
	}
	return a.renderList(enquiries)
}

func (a *EnquiryAdapter) renderList(enquiries []*primary.Enquiry) error {
	if len(enquiries) == 0 {
		fmt.Fprintln(a.out, "No enquiries found")
		return nil
	}

	for _, e := range enquiries {
		fmt.Fprintf(a.out, "\n%s  %s on %s\n", e.ID, e.ApplicantNRIC, e.ProjectID)
		fmt.Fprintf(a.out, "  Q: %s\n", e.Content)
		if e.Reply != "" {
			fmt.Fprintf(a.out, "  A: %s (by %s)\n", e.Reply, e.RepliedBy)
		} else {
			fmt.Fprintln(a.out, "  A: (awaiting reply)")
		}
	}
	fmt.Fprintln(a.out)

	return nil
}
