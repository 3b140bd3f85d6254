// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// the persistence layer. The core never assumes more than this contract.
package secondary

import "context"

// UserRepository defines the secondary port for user persistence.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *UserRecord) error

	// GetByNRIC retrieves a user by NRIC.
	GetByNRIC(ctx context.Context, nric string) (*UserRecord, error)

	// Update updates an existing user (password changes).
	Update(ctx context.Context, user *UserRecord) error

	// List retrieves users matching the given filters.
	List(ctx context.Context, filters UserFilters) ([]*UserRecord, error)
}

// UserRecord represents a user as stored in persistence. A single record
// carries the role tag; there is no role subtype hierarchy.
type UserRecord struct {
	NRIC          string
	Name          string
	Password      string
	Age           int
	MaritalStatus string
	Role          string // APPLICANT, OFFICER, MANAGER
	CreatedAt     string
}

// UserFilters contains filter options for querying users.
type UserFilters struct {
	Role string
}

// ProjectRepository defines the secondary port for project persistence.
type ProjectRepository interface {
	// Create persists a new project with its unit counters.
	Create(ctx context.Context, project *ProjectRecord) error

	// GetByID retrieves a project by its ID, including units and officers.
	GetByID(ctx context.Context, id string) (*ProjectRecord, error)

	// List retrieves projects matching the given filters.
	List(ctx context.Context, filters ProjectFilters) ([]*ProjectRecord, error)

	// Update updates a project's editable fields and unit totals.
	Update(ctx context.Context, project *ProjectRecord) error

	// Delete removes a project and cascades its applications, bookings,
	// registrations and enquiries.
	Delete(ctx context.Context, id string) error

	// SetVisibility toggles the project's visibility flag.
	SetVisibility(ctx context.Context, id string, visible bool) error

	// AddOfficer appends an officer to the project's assigned list.
	AddOfficer(ctx context.Context, projectID, officerNRIC string) error

	// UpdateUnitAvailability persists a new available count for one flat
	// type. The count is computed by the core inventory ledger; the schema
	// defensively re-checks the bounds.
	UpdateUnitAvailability(ctx context.Context, projectID, flatType string, available int) error

	// HasApplications reports whether any application references the project.
	HasApplications(ctx context.Context, projectID string) (bool, error)

	// CountBookedApplications returns the number of BOOKED applications
	// referencing the project.
	CountBookedApplications(ctx context.Context, projectID string) (int, error)

	// GetNextID returns the next available project ID.
	GetNextID(ctx context.Context) (string, error)
}

// UnitRecord holds the unit counters for one flat type within a project.
type UnitRecord struct {
	FlatType  string
	Total     int
	Available int
}

// ProjectRecord represents a project as stored in persistence.
type ProjectRecord struct {
	ID           string
	Name         string
	Neighborhood string
	OpenDate     string // 2006-01-02
	CloseDate    string // 2006-01-02
	ManagerNRIC  string
	OfficerSlots int
	Visible      bool
	Units        []UnitRecord
	Officers     []string // assigned officer NRICs
	CreatedAt    string
	UpdatedAt    string
}

// ProjectFilters contains filter options for querying projects.
type ProjectFilters struct {
	ManagerNRIC string
	VisibleOnly bool
}

// ApplicationRepository defines the secondary port for housing application
// persistence. Applications are never physically deleted except via project
// cascade delete.
type ApplicationRepository interface {
	// Create persists a new application.
	Create(ctx context.Context, application *ApplicationRecord) error

	// GetByID retrieves an application by its ID.
	GetByID(ctx context.Context, id string) (*ApplicationRecord, error)

	// Update updates an existing application.
	Update(ctx context.Context, application *ApplicationRecord) error

	// ListByApplicant retrieves all applications of an applicant.
	ListByApplicant(ctx context.Context, nric string) ([]*ApplicationRecord, error)

	// ListByProject retrieves applications for a project, optionally
	// narrowed by status.
	ListByProject(ctx context.Context, projectID, status string) ([]*ApplicationRecord, error)

	// GetActiveByApplicant retrieves the applicant's active application
	// (PENDING, SUCCESSFUL or BOOKED). Returns nil when there is none.
	GetActiveByApplicant(ctx context.Context, nric string) (*ApplicationRecord, error)

	// GetNextID returns the next available application ID.
	GetNextID(ctx context.Context) (string, error)
}

// ApplicationRecord represents a housing application as stored in
// persistence. BookedFlatType and BookingID are empty unless Status is
// BOOKED.
type ApplicationRecord struct {
	ID                  string
	ApplicantNRIC       string
	ProjectID           string
	FlatType            string
	Status              string
	BookedFlatType      string // empty string means null
	BookingID           string // empty string means null
	WithdrawalRequested bool
	CreatedAt           string
	UpdatedAt           string
}

// BookingRepository defines the secondary port for flat booking persistence.
// Bookings are immutable once created - no Update; Delete exists only for
// the withdrawal-after-booking reversal and cascade delete.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *BookingRecord) error

	// GetByID retrieves a booking by its ID.
	GetByID(ctx context.Context, id string) (*BookingRecord, error)

	// GetByApplication retrieves the booking for an application.
	GetByApplication(ctx context.Context, applicationID string) (*BookingRecord, error)

	// List retrieves bookings matching the given filters.
	List(ctx context.Context, filters BookingFilters) ([]*BookingRecord, error)

	// Delete removes a booking from persistence.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available booking ID.
	GetNextID(ctx context.Context) (string, error)
}

// BookingRecord represents a flat booking as stored in persistence.
// One-to-one with a BOOKED application.
type BookingRecord struct {
	ID            string
	ApplicationID string
	ApplicantNRIC string
	ProjectID     string
	FlatType      string
	OfficerNRIC   string
	ReceiptRef    string
	CreatedAt     string
}

// BookingFilters contains filter options for querying bookings.
type BookingFilters struct {
	ProjectID string
	FlatType  string
}

// RegistrationRepository defines the secondary port for officer
// registration persistence.
type RegistrationRepository interface {
	// Create persists a new registration.
	Create(ctx context.Context, registration *RegistrationRecord) error

	// GetByID retrieves a registration by its ID.
	GetByID(ctx context.Context, id string) (*RegistrationRecord, error)

	// Update updates an existing registration.
	Update(ctx context.Context, registration *RegistrationRecord) error

	// ListByOfficer retrieves all registrations of an officer.
	ListByOfficer(ctx context.Context, nric string) ([]*RegistrationRecord, error)

	// ListByProject retrieves registrations for a project, optionally
	// narrowed by status.
	ListByProject(ctx context.Context, projectID, status string) ([]*RegistrationRecord, error)

	// ExistsForOfficerProject reports whether the officer already has a
	// registration for the project.
	ExistsForOfficerProject(ctx context.Context, nric, projectID string) (bool, error)

	// GetNextID returns the next available registration ID.
	GetNextID(ctx context.Context) (string, error)
}

// RegistrationRecord represents an officer registration as stored in
// persistence.
type RegistrationRecord struct {
	ID          string
	OfficerNRIC string
	ProjectID   string
	Status      string
	CreatedAt   string
	DecidedAt   string // empty string means null
}

// EnquiryRepository defines the secondary port for enquiry persistence.
type EnquiryRepository interface {
	// Create persists a new enquiry.
	Create(ctx context.Context, enquiry *EnquiryRecord) error

	// GetByID retrieves an enquiry by its ID.
	GetByID(ctx context.Context, id string) (*EnquiryRecord, error)

	// Update updates an enquiry's content or reply.
	Update(ctx context.Context, enquiry *EnquiryRecord) error

	// Delete removes an enquiry from persistence.
	Delete(ctx context.Context, id string) error

	// List retrieves enquiries matching the given filters.
	List(ctx context.Context, filters EnquiryFilters) ([]*EnquiryRecord, error)

	// GetNextID returns the next available enquiry ID.
	GetNextID(ctx context.Context) (string, error)
}

// EnquiryRecord represents an enquiry as stored in persistence.
type EnquiryRecord struct {
	ID            string
	ApplicantNRIC string
	ProjectID     string
	Content       string
	Reply         string // empty string means null
	RepliedBy     string // empty string means null
	CreatedAt     string
	UpdatedAt     string
}

// EnquiryFilters contains filter options for querying enquiries.
type EnquiryFilters struct {
	ApplicantNRIC string
	ProjectID     string
}
