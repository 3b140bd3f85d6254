package primary

import "context"

// BookingService defines the primary port for the flat booking workflow.
type BookingService interface {
	// CreateBooking converts a SUCCESSFUL application into a BOOKED one,
	// consuming one inventory unit and creating an immutable booking
	// record. The inventory decrement is the single admission-control
	// point; on any failure nothing is mutated.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error)

	// GenerateReceipt produces a read-only receipt joining the booking,
	// application, project, applicant and officer records. Any missing
	// reference is reported as NotFound.
	GenerateReceipt(ctx context.Context, bookingID string) (*Receipt, error)

	// ListByProject lists a project's bookings.
	ListByProject(ctx context.Context, projectID string) ([]*Booking, error)
}

// CreateBookingRequest contains parameters for creating a booking.
type CreateBookingRequest struct {
	ApplicationID string
	FlatType      string // chosen at booking; may differ from the applied type
	OfficerNRIC   string
}

// CreateBookingResponse contains the result of creating a booking.
type CreateBookingResponse struct {
	BookingID string
	Booking   *Booking
}

// Booking represents a flat booking at the port boundary.
type Booking struct {
	ID            string
	ApplicationID string
	ApplicantNRIC string
	ProjectID     string
	FlatType      string
	OfficerNRIC   string
	ReceiptRef    string
	CreatedAt     string
}

// Receipt is the read-and-format projection of a booking and its
// referenced entities.
type Receipt struct {
	ReceiptRef    string
	BookingID     string
	BookedAt      string
	ApplicantName string
	ApplicantNRIC string
	Age           int
	MaritalStatus string
	ProjectName   string
	Neighborhood  string
	FlatType      string
	OfficerName   string
	OfficerNRIC   string
	ApplicationID string
}
