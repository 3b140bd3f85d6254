package app

import (
	"context"
	"fmt"
	"log"

	coreapp "github.com/rebeccamsl/BTO-management-system-sub000/internal/core/application"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// ApplicationServiceImpl implements the ApplicationService interface.
type ApplicationServiceImpl struct {
	appRepo     secondary.ApplicationRepository
	projectRepo secondary.ProjectRepository
	bookingRepo secondary.BookingRepository
	userRepo    secondary.UserRepository
}

// NewApplicationService creates a new ApplicationService with injected
// dependencies.
func NewApplicationService(
	appRepo secondary.ApplicationRepository,
	projectRepo secondary.ProjectRepository,
	bookingRepo secondary.BookingRepository,
	userRepo secondary.UserRepository,
) *ApplicationServiceImpl {
	return &ApplicationServiceImpl{
		appRepo:     appRepo,
		projectRepo: projectRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// Submit creates a PENDING application for the applicant.
func (s *ApplicationServiceImpl) Submit(ctx context.Context, req primary.SubmitApplicationRequest) (*primary.SubmitApplicationResponse, error) {
	user, err := s.userRepo.GetByNRIC(ctx, req.ApplicantNRIC)
	if err != nil {
		return nil, err
	}
	if user.Role == string(domain.RoleManager) {
		return nil, domain.NewError(domain.KindPermissionDenied, "managers cannot apply for projects")
	}

	project, err := s.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	flatType, err := domain.ParseFlatType(req.FlatType)
	if err != nil {
		return nil, domain.NewError(domain.KindValidationFailed, "%v", err)
	}

	active, err := s.appRepo.GetActiveByApplicant(ctx, req.ApplicantNRIC)
	if err != nil {
		return nil, fmt.Errorf("failed to check active application: %w", err)
	}
	activeID := ""
	if active != nil {
		activeID = active.ID
	}

	openDate, err := parseDate(project.OpenDate)
	if err != nil {
		return nil, fmt.Errorf("project %s has malformed open date: %w", project.ID, err)
	}
	closeDate, err := parseDate(project.CloseDate)
	if err != nil {
		return nil, fmt.Errorf("project %s has malformed close date: %w", project.ID, err)
	}

	guardCtx := coreapp.SubmitContext{
		ApplicantNRIC:       req.ApplicantNRIC,
		ProjectID:           req.ProjectID,
		FlatType:            flatType,
		ActiveApplicationID: activeID,
		Now:                 today(),
		OpenDate:            openDate,
		CloseDate:           closeDate,
		OffersFlatType:      ledgerOf(project).Offers(flatType),
		ApplicantAge:        user.Age,
		MaritalStatus:       domain.MaritalStatus(user.MaritalStatus),
	}
	if result := coreapp.CanSubmit(guardCtx); !result.Allowed {
		return nil, result.Err()
	}

	nextID, err := s.appRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate application ID: %w", err)
	}

	record := &secondary.ApplicationRecord{
		ID:            nextID,
		ApplicantNRIC: req.ApplicantNRIC,
		ProjectID:     req.ProjectID,
		FlatType:      string(flatType),
		Status:        string(coreapp.InitialStatus()),
	}
	if err := s.appRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return &primary.SubmitApplicationResponse{
		ApplicationID: record.ID,
		Application:   recordToApplication(record),
	}, nil
}

// Approve marks a PENDING application SUCCESSFUL. Units are not consumed at
// approval - approval only marks eligibility to proceed to booking. When the
// applied flat type has no available units the application is
// auto-transitioned to UNSUCCESSFUL and the failure reported.
func (s *ApplicationServiceImpl) Approve(ctx context.Context, req primary.DecideApplicationRequest) error {
	record, project, err := s.loadWithProject(ctx, req.ApplicationID)
	if err != nil {
		return err
	}

	guardCtx := coreapp.DecisionContext{
		ApplicationID: record.ID,
		Status:        domain.ApplicationStatus(record.Status),
		ManagerNRIC:   req.ManagerNRIC,
		AuthorityNRIC: project.ManagerNRIC,
	}
	if result := coreapp.CanDecide(guardCtx); !result.Allowed {
		return result.Err()
	}

	available := ledgerOf(project).Available(domain.FlatType(record.FlatType))
	transition := coreapp.ApplyApproval(available)
	record.Status = string(transition.NewStatus)
	if err := s.appRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	if transition.CapacityExceeded {
		return domain.NewError(domain.KindCapacityExceeded,
			"no %s units available in project %s; application %s marked UNSUCCESSFUL",
			record.FlatType, project.ID, record.ID)
	}
	return nil
}

// Reject marks a PENDING application UNSUCCESSFUL.
func (s *ApplicationServiceImpl) Reject(ctx context.Context, req primary.DecideApplicationRequest) error {
	record, project, err := s.loadWithProject(ctx, req.ApplicationID)
	if err != nil {
		return err
	}

	guardCtx := coreapp.DecisionContext{
		ApplicationID: record.ID,
		Status:        domain.ApplicationStatus(record.Status),
		ManagerNRIC:   req.ManagerNRIC,
		AuthorityNRIC: project.ManagerNRIC,
	}
	if result := coreapp.CanDecide(guardCtx); !result.Allowed {
		return result.Err()
	}

	record.Status = string(domain.AppUnsuccessful)
	if err := s.appRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

// RequestWithdrawal flags the application for withdrawal.
func (s *ApplicationServiceImpl) RequestWithdrawal(ctx context.Context, req primary.WithdrawalRequest) error {
	record, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return err
	}

	guardCtx := coreapp.WithdrawalRequestContext{
		ApplicationID:    record.ID,
		ApplicantNRIC:    record.ApplicantNRIC,
		CallerNRIC:       req.ApplicantNRIC,
		Status:           domain.ApplicationStatus(record.Status),
		AlreadyRequested: record.WithdrawalRequested,
	}
	if result := coreapp.CanRequestWithdrawal(guardCtx); !result.Allowed {
		return result.Err()
	}

	record.WithdrawalRequested = true
	if err := s.appRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

// ApproveWithdrawal resolves a withdrawal request to WITHDRAWN. For a
// BOOKED application the reserved unit is returned and the booking record
// removed; the ledger increment is decided by the core and the subsequent
// writes are unconditional, so the whole step behaves as one transition.
func (s *ApplicationServiceImpl) ApproveWithdrawal(ctx context.Context, req primary.WithdrawalDecisionRequest) error {
	record, project, err := s.loadWithProject(ctx, req.ApplicationID)
	if err != nil {
		return err
	}

	guardCtx := coreapp.WithdrawalDecisionContext{
		ApplicationID: record.ID,
		ManagerNRIC:   req.ManagerNRIC,
		AuthorityNRIC: project.ManagerNRIC,
		FlagSet:       record.WithdrawalRequested,
	}
	if result := coreapp.CanDecideWithdrawal(guardCtx); !result.Allowed {
		return result.Err()
	}

	transition := coreapp.ApplyWithdrawal(domain.ApplicationStatus(record.Status))

	if transition.ReturnUnit {
		flatType := domain.FlatType(record.BookedFlatType)
		ledger := ledgerOf(project).Clone()
		if !ledger.Increment(flatType) {
			// Counter already at total: the invariant clamps the return
			// rather than trusting the caller. Data is inconsistent but the
			// withdrawal still completes.
			log.Printf("inventory anomaly: %s available already at total for project %s on withdrawal of %s",
				flatType, project.ID, record.ID)
		}
		if err := s.projectRepo.UpdateUnitAvailability(ctx, project.ID, string(flatType), ledger.Available(flatType)); err != nil {
			return fmt.Errorf("failed to return unit: %w", err)
		}
	}
	if transition.RemoveBooking && record.BookingID != "" {
		if err := s.bookingRepo.Delete(ctx, record.BookingID); err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
	}

	record.Status = string(transition.NewStatus)
	record.WithdrawalRequested = false
	record.BookedFlatType = ""
	record.BookingID = ""
	if err := s.appRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

// RejectWithdrawal clears the withdrawal flag, leaving status unchanged.
func (s *ApplicationServiceImpl) RejectWithdrawal(ctx context.Context, req primary.WithdrawalDecisionRequest) error {
	record, project, err := s.loadWithProject(ctx, req.ApplicationID)
	if err != nil {
		return err
	}

	guardCtx := coreapp.WithdrawalDecisionContext{
		ApplicationID: record.ID,
		ManagerNRIC:   req.ManagerNRIC,
		AuthorityNRIC: project.ManagerNRIC,
		FlagSet:       record.WithdrawalRequested,
	}
	if result := coreapp.CanDecideWithdrawal(guardCtx); !result.Allowed {
		return result.Err()
	}

	record.WithdrawalRequested = false
	if err := s.appRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}
	return nil
}

// Get retrieves an application by ID.
func (s *ApplicationServiceImpl) Get(ctx context.Context, applicationID string) (*primary.Application, error) {
	record, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return recordToApplication(record), nil
}

// ListByProject lists a project's applications, optionally by status.
func (s *ApplicationServiceImpl) ListByProject(ctx context.Context, projectID, status string) ([]*primary.Application, error) {
	records, err := s.appRepo.ListByProject(ctx, projectID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return recordsToApplications(records), nil
}

// ListByApplicant lists an applicant's applications.
func (s *ApplicationServiceImpl) ListByApplicant(ctx context.Context, nric string) ([]*primary.Application, error) {
	records, err := s.appRepo.ListByApplicant(ctx, nric)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return recordsToApplications(records), nil
}

// Helper methods

func (s *ApplicationServiceImpl) loadWithProject(ctx context.Context, applicationID string) (*secondary.ApplicationRecord, *secondary.ProjectRecord, error) {
	record, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	project, err := s.projectRepo.GetByID(ctx, record.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return record, project, nil
}

func recordToApplication(r *secondary.ApplicationRecord) *primary.Application {
	return &primary.Application{
		ID:                  r.ID,
		ApplicantNRIC:       r.ApplicantNRIC,
		ProjectID:           r.ProjectID,
		FlatType:            r.FlatType,
		Status:              r.Status,
		BookedFlatType:      r.BookedFlatType,
		BookingID:           r.BookingID,
		WithdrawalRequested: r.WithdrawalRequested,
		CreatedAt:           r.CreatedAt,
	}
}

func recordsToApplications(records []*secondary.ApplicationRecord) []*primary.Application {
	apps := make([]*primary.Application, len(records))
	for i, r := range records {
		apps[i] = recordToApplication(r)
	}
	return apps
}

// Ensure ApplicationServiceImpl implements the interface
var _ primary.ApplicationService = (*ApplicationServiceImpl)(nil)
