package primary

import "context"

// RegistrationService defines the primary port for officer registration
// operations.
type RegistrationService interface {
	// Register creates a PENDING registration for the officer to handle a
	// project, after the eligibility rules pass.
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)

	// Approve approves a PENDING registration and assigns the officer to
	// the project, bounded by the project's officer slots.
	Approve(ctx context.Context, req DecideRegistrationRequest) error

	// Reject rejects a PENDING registration.
	Reject(ctx context.Context, req DecideRegistrationRequest) error

	// ListByOfficer lists the officer's registrations.
	ListByOfficer(ctx context.Context, nric string) ([]*Registration, error)

	// ListByProject lists a project's registrations, optionally by status.
	ListByProject(ctx context.Context, projectID, status string) ([]*Registration, error)
}

// RegisterRequest contains parameters for an officer registration.
type RegisterRequest struct {
	OfficerNRIC string
	ProjectID   string
}

// RegisterResponse contains the result of a registration.
type RegisterResponse struct {
	RegistrationID string
	Registration   *Registration
}

// DecideRegistrationRequest contains parameters for a manager's
// registration decision.
type DecideRegistrationRequest struct {
	RegistrationID string
	ManagerNRIC    string
}

// Registration represents an officer registration at the port boundary.
type Registration struct {
	ID          string
	OfficerNRIC string
	ProjectID   string
	Status      string
	CreatedAt   string
	DecidedAt   string
}
