package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
)

// ReportAdapter is a thin adapter that translates CLI operations to
// ReportService calls.
type ReportAdapter struct {
	service primary.ReportService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given service.
func NewReportAdapter(service primary.ReportService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service: service,
		out:     out,
	}
}

// BookingReport prints the filtered booking report.
func (a *ReportAdapter) BookingReport(ctx context.Context, managerNRIC string, criteria map[string]string) error {
	report, err := a.service.BookingReport(ctx, primary.BookingReportRequest{
		ManagerNRIC: managerNRIC,
		Criteria:    criteria,
	})
	if err != nil {
		return err
	}

	for _, warning := range report.Warnings {
		fmt.Fprintf(a.out, "warning: %s\n", warning)
	}

	if len(report.Rows) == 0 {
		fmt.Fprintln(a.out, "No bookings found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-15s %-11s %-4s %-9s %-20s %s\n",
		"BOOKING", "APPLICANT", "NRIC", "AGE", "MARITAL", "PROJECT", "FLAT TYPE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────────")
	for _, row := range report.Rows {
		fmt.Fprintf(a.out, "%-10s %-15s %-11s %-4d %-9s %-20s %s\n",
			row.BookingID, row.ApplicantName, row.ApplicantNRIC, row.Age,
			row.MaritalStatus, row.ProjectName, row.FlatType)
	}
	fmt.Fprintf(a.out, "\n%d booking(s)\n", len(report.Rows))

	return nil
}
