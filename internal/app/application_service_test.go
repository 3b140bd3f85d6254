package app

import (
	"context"
	"testing"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// ============================================================================
// Test Helper
// ============================================================================

func newTestApplicationService() (*ApplicationServiceImpl, *mockApplicationRepository, *mockProjectRepository, *mockBookingRepository, *mockUserRepository) {
	appRepo := newMockApplicationRepository()
	projectRepo := newMockProjectRepository()
	bookingRepo := newMockBookingRepository()
	userRepo := newMockUserRepository()
	service := NewApplicationService(appRepo, projectRepo, bookingRepo, userRepo)
	return service, appRepo, projectRepo, bookingRepo, userRepo
}

func seedApplicationWorld(appRepo *mockApplicationRepository, projectRepo *mockProjectRepository, userRepo *mockUserRepository) {
	ctx := context.Background()
	userRepo.Create(ctx, testManager())
	userRepo.Create(ctx, testOfficer())
	userRepo.Create(ctx, testApplicantMarried())
	userRepo.Create(ctx, testApplicantSingle())
	projectRepo.Create(ctx, testProject())
	_ = appRepo
}

// ============================================================================
// Submit Tests
// ============================================================================

func TestSubmit_Success(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	resp, err := service.Submit(ctx, primary.SubmitApplicationRequest{
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "THREE_ROOM",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.ApplicationID == "" {
		t.Error("expected application ID to be set")
	}
	if resp.Application.Status != "PENDING" {
		t.Errorf("expected status 'PENDING', got '%s'", resp.Application.Status)
	}
}

func TestSubmit_SucceedsWhenBookedOut(t *testing.T) {
	// Submission never checks available units - capacity surfaces at
	// approval.
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	project := projectRepo.projects["PROJ-001"]
	for i := range project.Units {
		project.Units[i].Available = 0
	}

	resp, err := service.Submit(ctx, primary.SubmitApplicationRequest{
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "TWO_ROOM",
	})

	if err != nil {
		t.Fatalf("expected no error for sold-out project, got %v", err)
	}
	if resp.Application.Status != "PENDING" {
		t.Errorf("expected status 'PENDING', got '%s'", resp.Application.Status)
	}
}

func TestSubmit_SecondActiveApplicationConflicts(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	appRepo.applications["APP-001"] = &secondary.ApplicationRecord{
		ID:            "APP-001",
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "TWO_ROOM",
		Status:        "SUCCESSFUL",
	}

	_, err := service.Submit(ctx, primary.SubmitApplicationRequest{
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "THREE_ROOM",
	})

	if !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("expected CONFLICT error, got %v", err)
	}
}

func TestSubmit_AllowedAfterTerminalApplication(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	appRepo.applications["APP-001"] = &secondary.ApplicationRecord{
		ID:            "APP-001",
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "TWO_ROOM",
		Status:        "WITHDRAWN",
	}

	_, err := service.Submit(ctx, primary.SubmitApplicationRequest{
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "THREE_ROOM",
	})

	if err != nil {
		t.Fatalf("expected no error after terminal application, got %v", err)
	}
}

func TestSubmit_SingleIneligibleForThreeRoom(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	_, err := service.Submit(ctx, primary.SubmitApplicationRequest{
		ApplicantNRIC: "T7654321B", // single, 40
		ProjectID:     "PROJ-001",
		FlatType:      "THREE_ROOM",
	})

	if !domain.IsKind(err, domain.KindValidationFailed) {
		t.Fatalf("expected VALIDATION_FAILED error, got %v", err)
	}
}

func TestSubmit_OutsideWindow(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	project := projectRepo.projects["PROJ-001"]
	project.OpenDate = "2020-01-01"
	project.CloseDate = "2020-02-01"

	_, err := service.Submit(ctx, primary.SubmitApplicationRequest{
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "TWO_ROOM",
	})

	if !domain.IsKind(err, domain.KindValidationFailed) {
		t.Fatalf("expected VALIDATION_FAILED error, got %v", err)
	}
}

func TestSubmit_ManagerDenied(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	_, err := service.Submit(ctx, primary.SubmitApplicationRequest{
		ApplicantNRIC: "S5000001A",
		ProjectID:     "PROJ-001",
		FlatType:      "TWO_ROOM",
	})

	if !domain.IsKind(err, domain.KindPermissionDenied) {
		t.Fatalf("expected PERMISSION_DENIED error, got %v", err)
	}
}

func TestSubmit_ProjectNotFound(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	_, err := service.Submit(ctx, primary.SubmitApplicationRequest{
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-999",
		FlatType:      "TWO_ROOM",
	})

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected NOT_FOUND error, got %v", err)
	}
}

// ============================================================================
// Approve / Reject Tests
// ============================================================================

func seedPendingApplication(appRepo *mockApplicationRepository) *secondary.ApplicationRecord {
	record := &secondary.ApplicationRecord{
		ID:            "APP-001",
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "TWO_ROOM",
		Status:        "PENDING",
	}
	appRepo.applications[record.ID] = record
	return record
}

func TestApprove_Success(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	seedPendingApplication(appRepo)
	ctx := context.Background()

	err := service.Approve(ctx, primary.DecideApplicationRequest{
		ApplicationID: "APP-001",
		ManagerNRIC:   "S5000001A",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := appRepo.applications["APP-001"].Status; got != "SUCCESSFUL" {
		t.Errorf("expected status 'SUCCESSFUL', got '%s'", got)
	}
	// Approval must not consume a unit.
	if got := projectRepo.availableOf("PROJ-001", "TWO_ROOM"); got != 2 {
		t.Errorf("expected 2 units still available, got %d", got)
	}
}

func TestApprove_NoUnitsMarksUnsuccessful(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	seedPendingApplication(appRepo)
	ctx := context.Background()

	project := projectRepo.projects["PROJ-001"]
	project.Units[0].Available = 0 // TWO_ROOM sold out

	err := service.Approve(ctx, primary.DecideApplicationRequest{
		ApplicationID: "APP-001",
		ManagerNRIC:   "S5000001A",
	})

	if !domain.IsKind(err, domain.KindCapacityExceeded) {
		t.Fatalf("expected CAPACITY_EXCEEDED error, got %v", err)
	}
	if got := appRepo.applications["APP-001"].Status; got != "UNSUCCESSFUL" {
		t.Errorf("expected auto-transition to 'UNSUCCESSFUL', got '%s'", got)
	}
}

func TestApprove_WrongManagerDenied(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	seedPendingApplication(appRepo)
	ctx := context.Background()

	err := service.Approve(ctx, primary.DecideApplicationRequest{
		ApplicationID: "APP-001",
		ManagerNRIC:   "S9999999Z",
	})

	if !domain.IsKind(err, domain.KindPermissionDenied) {
		t.Fatalf("expected PERMISSION_DENIED error, got %v", err)
	}
	if got := appRepo.applications["APP-001"].Status; got != "PENDING" {
		t.Errorf("expected status unchanged 'PENDING', got '%s'", got)
	}
}

func TestApprove_NonPendingInvalidState(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	record := seedPendingApplication(appRepo)
	record.Status = "SUCCESSFUL"
	ctx := context.Background()

	err := service.Approve(ctx, primary.DecideApplicationRequest{
		ApplicationID: "APP-001",
		ManagerNRIC:   "S5000001A",
	})

	if !domain.IsKind(err, domain.KindInvalidState) {
		t.Fatalf("expected INVALID_STATE error, got %v", err)
	}
}

func TestReject_Success(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	seedPendingApplication(appRepo)
	ctx := context.Background()

	err := service.Reject(ctx, primary.DecideApplicationRequest{
		ApplicationID: "APP-001",
		ManagerNRIC:   "S5000001A",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := appRepo.applications["APP-001"].Status; got != "UNSUCCESSFUL" {
		t.Errorf("expected status 'UNSUCCESSFUL', got '%s'", got)
	}
}

// ============================================================================
// Withdrawal Tests
// ============================================================================

func TestRequestWithdrawal_Success(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	seedPendingApplication(appRepo)
	ctx := context.Background()

	err := service.RequestWithdrawal(ctx, primary.WithdrawalRequest{
		ApplicationID: "APP-001",
		ApplicantNRIC: "S1234567A",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !appRepo.applications["APP-001"].WithdrawalRequested {
		t.Error("expected withdrawal flag to be set")
	}
	if got := appRepo.applications["APP-001"].Status; got != "PENDING" {
		t.Errorf("expected status unchanged 'PENDING', got '%s'", got)
	}
}

func TestRequestWithdrawal_NotOwnerDenied(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	seedPendingApplication(appRepo)
	ctx := context.Background()

	err := service.RequestWithdrawal(ctx, primary.WithdrawalRequest{
		ApplicationID: "APP-001",
		ApplicantNRIC: "T7654321B",
	})

	if !domain.IsKind(err, domain.KindPermissionDenied) {
		t.Fatalf("expected PERMISSION_DENIED error, got %v", err)
	}
}

func TestRequestWithdrawal_DuplicateConflicts(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	record := seedPendingApplication(appRepo)
	record.WithdrawalRequested = true
	ctx := context.Background()

	err := service.RequestWithdrawal(ctx, primary.WithdrawalRequest{
		ApplicationID: "APP-001",
		ApplicantNRIC: "S1234567A",
	})

	if !domain.IsKind(err, domain.KindConflict) {
		t.Fatalf("expected CONFLICT error, got %v", err)
	}
}

func TestApproveWithdrawal_PendingApplication(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	record := seedPendingApplication(appRepo)
	record.WithdrawalRequested = true
	ctx := context.Background()

	err := service.ApproveWithdrawal(ctx, primary.WithdrawalDecisionRequest{
		ApplicationID: "APP-001",
		ManagerNRIC:   "S5000001A",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := appRepo.applications["APP-001"]
	if got.Status != "WITHDRAWN" {
		t.Errorf("expected status 'WITHDRAWN', got '%s'", got.Status)
	}
	if got.WithdrawalRequested {
		t.Error("expected withdrawal flag to be cleared")
	}
	// No booking existed, so no unit movement.
	if projectRepo.availabilityWriteCount != 0 {
		t.Errorf("expected no availability writes, got %d", projectRepo.availabilityWriteCount)
	}
}

func TestApproveWithdrawal_BookedReturnsUnitAndRemovesBooking(t *testing.T) {
	service, appRepo, projectRepo, bookingRepo, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	project := projectRepo.projects["PROJ-001"]
	project.Units[0].Available = 1 // one TWO_ROOM consumed by the booking

	appRepo.applications["APP-001"] = &secondary.ApplicationRecord{
		ID:                  "APP-001",
		ApplicantNRIC:       "S1234567A",
		ProjectID:           "PROJ-001",
		FlatType:            "TWO_ROOM",
		Status:              "BOOKED",
		BookedFlatType:      "TWO_ROOM",
		BookingID:           "BOOK-001",
		WithdrawalRequested: true,
	}
	bookingRepo.bookings["BOOK-001"] = &secondary.BookingRecord{
		ID:            "BOOK-001",
		ApplicationID: "APP-001",
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "TWO_ROOM",
		OfficerNRIC:   "T2109876H",
	}

	err := service.ApproveWithdrawal(ctx, primary.WithdrawalDecisionRequest{
		ApplicationID: "APP-001",
		ManagerNRIC:   "S5000001A",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := appRepo.applications["APP-001"]
	if got.Status != "WITHDRAWN" {
		t.Errorf("expected status 'WITHDRAWN', got '%s'", got.Status)
	}
	if got.BookedFlatType != "" || got.BookingID != "" {
		t.Errorf("expected booking references cleared, got '%s'/'%s'", got.BookedFlatType, got.BookingID)
	}
	if got.WithdrawalRequested {
		t.Error("expected withdrawal flag to be cleared")
	}
	if _, ok := bookingRepo.bookings["BOOK-001"]; ok {
		t.Error("expected booking to be deleted")
	}
	if avail := projectRepo.availableOf("PROJ-001", "TWO_ROOM"); avail != 2 {
		t.Errorf("expected unit returned (2 available), got %d", avail)
	}
}

func TestApproveWithdrawal_NoFlagInvalidState(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	seedPendingApplication(appRepo)
	ctx := context.Background()

	err := service.ApproveWithdrawal(ctx, primary.WithdrawalDecisionRequest{
		ApplicationID: "APP-001",
		ManagerNRIC:   "S5000001A",
	})

	if !domain.IsKind(err, domain.KindInvalidState) {
		t.Fatalf("expected INVALID_STATE error, got %v", err)
	}
}

func TestRejectWithdrawal_ClearsFlagOnly(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	record := seedPendingApplication(appRepo)
	record.Status = "BOOKED"
	record.WithdrawalRequested = true
	ctx := context.Background()

	err := service.RejectWithdrawal(ctx, primary.WithdrawalDecisionRequest{
		ApplicationID: "APP-001",
		ManagerNRIC:   "S5000001A",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := appRepo.applications["APP-001"]
	if got.WithdrawalRequested {
		t.Error("expected withdrawal flag to be cleared")
	}
	if got.Status != "BOOKED" {
		t.Errorf("expected status unchanged 'BOOKED', got '%s'", got.Status)
	}
}

// ============================================================================
// Query Tests
// ============================================================================

func TestGet_NotFound(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	_, err := service.Get(ctx, "APP-999")

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected NOT_FOUND error, got %v", err)
	}
}

func TestListByProject_FiltersStatus(t *testing.T) {
	service, appRepo, projectRepo, _, userRepo := newTestApplicationService()
	seedApplicationWorld(appRepo, projectRepo, userRepo)
	ctx := context.Background()

	appRepo.applications["APP-001"] = &secondary.ApplicationRecord{
		ID: "APP-001", ApplicantNRIC: "S1234567A", ProjectID: "PROJ-001", FlatType: "TWO_ROOM", Status: "PENDING",
	}
	appRepo.applications["APP-002"] = &secondary.ApplicationRecord{
		ID: "APP-002", ApplicantNRIC: "T7654321B", ProjectID: "PROJ-001", FlatType: "TWO_ROOM", Status: "SUCCESSFUL",
	}

	apps, err := service.ListByProject(ctx, "PROJ-001", "PENDING")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}
	if apps[0].ID != "APP-001" {
		t.Errorf("expected 'APP-001', got '%s'", apps[0].ID)
	}
}
