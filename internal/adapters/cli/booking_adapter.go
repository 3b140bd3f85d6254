package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
)

// BookingAdapter is a thin adapter that translates CLI operations to
// BookingService calls.
type BookingAdapter struct {
	service primary.BookingService
	out     io.Writer
}

// NewBookingAdapter creates a new BookingAdapter with the given service.
func NewBookingAdapter(service primary.BookingService, out io.Writer) *BookingAdapter {
	return &BookingAdapter{
		service: service,
		out:     out,
	}
}

// Create books a flat for a successful application.
func (a *BookingAdapter) Create(ctx context.Context, applicationID, flatType, officerNRIC string) error {
	resp, err := a.service.CreateBooking(ctx, primary.CreateBookingRequest{
		ApplicationID: applicationID,
		FlatType:      flatType,
		OfficerNRIC:   officerNRIC,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created booking %s for application %s (%s)\n",
		resp.BookingID, resp.Booking.ApplicationID, resp.Booking.FlatType)
	return nil
}

// Receipt prints the booking receipt.
func (a *BookingAdapter) Receipt(ctx context.Context, bookingID string) error {
	receipt, err := a.service.GenerateReceipt(ctx, bookingID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nBooking Receipt %s\n", receipt.ReceiptRef)
	fmt.Fprintln(a.out, "────────────────────────────────────────")
	fmt.Fprintf(a.out, "Booking:     %s (application %s)\n", receipt.BookingID, receipt.ApplicationID)
	fmt.Fprintf(a.out, "Booked at:   %s\n", receipt.BookedAt)
	fmt.Fprintf(a.out, "Applicant:   %s (%s)\n", receipt.ApplicantName, receipt.ApplicantNRIC)
	fmt.Fprintf(a.out, "             age %d, %s\n", receipt.Age, receipt.MaritalStatus)
	fmt.Fprintf(a.out, "Project:     %s, %s\n", receipt.ProjectName, receipt.Neighborhood)
	fmt.Fprintf(a.out, "Flat type:   %s\n", receipt.FlatType)
	fmt.Fprintf(a.out, "Officer:     %s (%s)\n", receipt.OfficerName, receipt.OfficerNRIC)
	fmt.Fprintln(a.out)

	return nil
}

// ListByProject lists a project's bookings.
func (a *BookingAdapter) ListByProject(ctx context.Context, projectID string) error {
	bookings, err := a.service.ListByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to list bookings: %w", err)
	}

	if len(bookings) == 0 {
		fmt.Fprintln(a.out, "No bookings found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-10s %-11s %-12s %s\n", "ID", "APP", "APPLICANT", "FLAT TYPE", "OFFICER")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, b := range bookings {
		fmt.Fprintf(a.out, "%-10s %-10s %-11s %-12s %s\n",
			b.ID, b.ApplicationID, b.ApplicantNRIC, b.FlatType, b.OfficerNRIC)
	}
	fmt.Fprintln(a.out)

	return nil
}
