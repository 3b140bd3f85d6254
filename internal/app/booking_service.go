package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	coreapp "github.com/rebeccamsl/BTO-management-system-sub000/internal/core/application"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/booking"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/eligibility"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// BookingServiceImpl implements the BookingService interface.
type BookingServiceImpl struct {
	bookingRepo secondary.BookingRepository
	appRepo     secondary.ApplicationRepository
	projectRepo secondary.ProjectRepository
	userRepo    secondary.UserRepository
}

// NewBookingService creates a new BookingService with injected dependencies.
func NewBookingService(
	bookingRepo secondary.BookingRepository,
	appRepo secondary.ApplicationRepository,
	projectRepo secondary.ProjectRepository,
	userRepo secondary.UserRepository,
) *BookingServiceImpl {
	return &BookingServiceImpl{
		bookingRepo: bookingRepo,
		appRepo:     appRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateBooking converts a SUCCESSFUL application into a BOOKED one. All
// guards run first against pre-fetched state; the inventory decrement is
// the single step that may still fail, and every write after it is
// unconditional, so the operation either completes fully or mutates
// nothing.
func (s *BookingServiceImpl) CreateBooking(ctx context.Context, req primary.CreateBookingRequest) (*primary.CreateBookingResponse, error) {
	application, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	project, err := s.projectRepo.GetByID(ctx, application.ProjectID)
	if err != nil {
		return nil, err
	}
	applicant, err := s.userRepo.GetByNRIC(ctx, application.ApplicantNRIC)
	if err != nil {
		return nil, err
	}

	flatType, err := domain.ParseFlatType(req.FlatType)
	if err != nil {
		return nil, domain.NewError(domain.KindValidationFailed, "%v", err)
	}

	ledger := ledgerOf(project)
	guardCtx := booking.CreateContext{
		ApplicationID:     application.ID,
		ApplicationStatus: domain.ApplicationStatus(application.Status),
		OfficerNRIC:       req.OfficerNRIC,
		OfficerAssigned:   officerAssigned(project, req.OfficerNRIC),
		ChosenFlatType:    flatType,
		OffersChosenType:  ledger.Offers(flatType),
		ApplicantAge:      applicant.Age,
		MaritalStatus:     domain.MaritalStatus(applicant.MaritalStatus),
		ApplicantEligible: eligibility.ApplicantEligible(applicant.Age, domain.MaritalStatus(applicant.MaritalStatus), flatType),
	}
	if result := booking.CanCreate(guardCtx); !result.Allowed {
		return nil, result.Err()
	}

	// The decrement is the admission-control point: a sold-out flat type
	// fails here with nothing written yet.
	ledger = ledger.Clone()
	if !ledger.Decrement(flatType) {
		return nil, domain.NewError(domain.KindCapacityExceeded,
			"no %s units available in project %s", flatType, project.ID)
	}

	bookingID, err := s.bookingRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking ID: %w", err)
	}

	if err := s.projectRepo.UpdateUnitAvailability(ctx, project.ID, string(flatType), ledger.Available(flatType)); err != nil {
		return nil, fmt.Errorf("failed to consume unit: %w", err)
	}

	record := &secondary.BookingRecord{
		ID:            bookingID,
		ApplicationID: application.ID,
		ApplicantNRIC: application.ApplicantNRIC,
		ProjectID:     project.ID,
		FlatType:      string(flatType),
		OfficerNRIC:   req.OfficerNRIC,
		ReceiptRef:    uuid.NewString(),
	}
	if err := s.bookingRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	transition := coreapp.ApplyBooking(bookingID, flatType)
	application.Status = string(transition.NewStatus)
	application.BookedFlatType = string(transition.BookedFlatType)
	application.BookingID = transition.BookingID
	if err := s.appRepo.Update(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	return &primary.CreateBookingResponse{
		BookingID: bookingID,
		Booking:   recordToBooking(record),
	}, nil
}

// GenerateReceipt produces a read-only projection joining the booking with
// its application, project, applicant and officer. Nothing is mutated.
func (s *BookingServiceImpl) GenerateReceipt(ctx context.Context, bookingID string) (*primary.Receipt, error) {
	record, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	project, err := s.projectRepo.GetByID(ctx, record.ProjectID)
	if err != nil {
		return nil, err
	}
	applicant, err := s.userRepo.GetByNRIC(ctx, record.ApplicantNRIC)
	if err != nil {
		return nil, err
	}
	officer, err := s.userRepo.GetByNRIC(ctx, record.OfficerNRIC)
	if err != nil {
		return nil, err
	}

	return &primary.Receipt{
		ReceiptRef:    record.ReceiptRef,
		BookingID:     record.ID,
		BookedAt:      record.CreatedAt,
		ApplicantName: applicant.Name,
		ApplicantNRIC: applicant.NRIC,
		Age:           applicant.Age,
		MaritalStatus: applicant.MaritalStatus,
		ProjectName:   project.Name,
		Neighborhood:  project.Neighborhood,
		FlatType:      record.FlatType,
		OfficerName:   officer.Name,
		OfficerNRIC:   officer.NRIC,
		ApplicationID: record.ApplicationID,
	}, nil
}

// ListByProject lists a project's bookings.
func (s *BookingServiceImpl) ListByProject(ctx context.Context, projectID string) ([]*primary.Booking, error) {
	records, err := s.bookingRepo.List(ctx, secondary.BookingFilters{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	bookings := make([]*primary.Booking, len(records))
	for i, r := range records {
		bookings[i] = recordToBooking(r)
	}
	return bookings, nil
}

func recordToBooking(r *secondary.BookingRecord) *primary.Booking {
	return &primary.Booking{
		ID:            r.ID,
		ApplicationID: r.ApplicationID,
		ApplicantNRIC: r.ApplicantNRIC,
		ProjectID:     r.ProjectID,
		FlatType:      r.FlatType,
		OfficerNRIC:   r.OfficerNRIC,
		ReceiptRef:    r.ReceiptRef,
		CreatedAt:     r.CreatedAt,
	}
}

// Ensure BookingServiceImpl implements the interface
var _ primary.BookingService = (*BookingServiceImpl)(nil)
