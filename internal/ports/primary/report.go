package primary

import "context"

// ReportService defines the primary port for the booking report - a
// filter-and-project listing over bookings and their applicants.
type ReportService interface {
	// BookingReport lists booking rows matching the criteria. Recognized
	// keys: projectId, flatType, maritalStatus. Unknown keys produce
	// warnings, not errors.
	BookingReport(ctx context.Context, req BookingReportRequest) (*BookingReport, error)
}

// BookingReportRequest contains parameters for the booking report.
type BookingReportRequest struct {
	ManagerNRIC string
	Criteria    map[string]string
}

// BookingReport is the filtered report plus any filter warnings.
type BookingReport struct {
	Rows     []*BookingReportRow
	Warnings []string
}

// BookingReportRow is one projected row of the booking report.
type BookingReportRow struct {
	BookingID     string
	ApplicantName string
	ApplicantNRIC string
	Age           int
	MaritalStatus string
	ProjectName   string
	Neighborhood  string
	FlatType      string
	BookedAt      string
}
