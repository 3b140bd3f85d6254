// Package primary defines the primary ports (driving adapters) for the
// application. These are the interfaces through which the presentation
// layer drives the rule engine. The core performs no I/O of its own.
package primary

import "context"

// ApplicationService defines the primary port for housing application
// lifecycle operations.
type ApplicationService interface {
	// Submit creates a PENDING application for the applicant.
	Submit(ctx context.Context, req SubmitApplicationRequest) (*SubmitApplicationResponse, error)

	// Approve marks a PENDING application SUCCESSFUL. When the applied flat
	// type has no available units the application is auto-transitioned to
	// UNSUCCESSFUL and a CapacityExceeded error is returned.
	Approve(ctx context.Context, req DecideApplicationRequest) error

	// Reject marks a PENDING application UNSUCCESSFUL.
	Reject(ctx context.Context, req DecideApplicationRequest) error

	// RequestWithdrawal flags the application for withdrawal.
	RequestWithdrawal(ctx context.Context, req WithdrawalRequest) error

	// ApproveWithdrawal resolves the flag to WITHDRAWN. For a BOOKED
	// application the reserved unit is returned and the booking removed as
	// part of the same transition.
	ApproveWithdrawal(ctx context.Context, req WithdrawalDecisionRequest) error

	// RejectWithdrawal clears the flag, leaving the status unchanged.
	RejectWithdrawal(ctx context.Context, req WithdrawalDecisionRequest) error

	// Get retrieves an application by ID.
	Get(ctx context.Context, applicationID string) (*Application, error)

	// ListByProject lists a project's applications, optionally by status.
	ListByProject(ctx context.Context, projectID, status string) ([]*Application, error)

	// ListByApplicant lists an applicant's applications, newest first.
	ListByApplicant(ctx context.Context, nric string) ([]*Application, error)
}

// SubmitApplicationRequest contains parameters for submitting an
// application.
type SubmitApplicationRequest struct {
	ApplicantNRIC string
	ProjectID     string
	FlatType      string
}

// SubmitApplicationResponse contains the result of submitting an
// application.
type SubmitApplicationResponse struct {
	ApplicationID string
	Application   *Application
}

// DecideApplicationRequest contains parameters for a manager decision.
type DecideApplicationRequest struct {
	ApplicationID string
	ManagerNRIC   string
}

// WithdrawalRequest contains parameters for an applicant's withdrawal
// request.
type WithdrawalRequest struct {
	ApplicationID string
	ApplicantNRIC string
}

// WithdrawalDecisionRequest contains parameters for a manager's withdrawal
// decision.
type WithdrawalDecisionRequest struct {
	ApplicationID string
	ManagerNRIC   string
}

// Application represents a housing application at the port boundary.
type Application struct {
	ID                  string
	ApplicantNRIC       string
	ProjectID           string
	FlatType            string
	Status              string
	BookedFlatType      string
	BookingID           string
	WithdrawalRequested bool
	CreatedAt           string
}
