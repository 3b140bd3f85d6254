package app

import (
	"context"
	"errors"
	"testing"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// ============================================================================
// Test Helper
// ============================================================================

func newTestBookingService() (*BookingServiceImpl, *mockBookingRepository, *mockApplicationRepository, *mockProjectRepository, *mockUserRepository) {
	bookingRepo := newMockBookingRepository()
	appRepo := newMockApplicationRepository()
	projectRepo := newMockProjectRepository()
	userRepo := newMockUserRepository()
	service := NewBookingService(bookingRepo, appRepo, projectRepo, userRepo)
	return service, bookingRepo, appRepo, projectRepo, userRepo
}

// seedBookingWorld sets up an open project with an assigned officer and a
// SUCCESSFUL application ready for booking.
func seedBookingWorld(bookingRepo *mockBookingRepository, appRepo *mockApplicationRepository, projectRepo *mockProjectRepository, userRepo *mockUserRepository) {
	ctx := context.Background()
	userRepo.Create(ctx, testManager())
	userRepo.Create(ctx, testOfficer())
	userRepo.Create(ctx, testApplicantMarried())
	userRepo.Create(ctx, testApplicantSingle())

	project := testProject()
	project.Officers = []string{"T2109876H"}
	projectRepo.Create(ctx, project)

	appRepo.applications["APP-001"] = &secondary.ApplicationRecord{
		ID:            "APP-001",
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "TWO_ROOM",
		Status:        "SUCCESSFUL",
	}
	_ = bookingRepo
}

// ============================================================================
// CreateBooking Tests
// ============================================================================

func TestCreateBooking_Success(t *testing.T) {
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	resp, err := service.CreateBooking(ctx, primary.CreateBookingRequest{
		ApplicationID: "APP-001",
		FlatType:      "TWO_ROOM",
		OfficerNRIC:   "T2109876H",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.BookingID == "" {
		t.Error("expected booking ID to be set")
	}
	if resp.Booking.ReceiptRef == "" {
		t.Error("expected receipt ref to be set")
	}

	app := appRepo.applications["APP-001"]
	if app.Status != "BOOKED" {
		t.Errorf("expected status 'BOOKED', got '%s'", app.Status)
	}
	if app.BookedFlatType != "TWO_ROOM" {
		t.Errorf("expected booked flat type 'TWO_ROOM', got '%s'", app.BookedFlatType)
	}
	if app.BookingID != resp.BookingID {
		t.Errorf("expected booking ID '%s', got '%s'", resp.BookingID, app.BookingID)
	}
	if avail := projectRepo.availableOf("PROJ-001", "TWO_ROOM"); avail != 1 {
		t.Errorf("expected 1 unit available after booking, got %d", avail)
	}
}

func TestCreateBooking_DifferentEligibleFlatType(t *testing.T) {
	// A married applicant who applied for TWO_ROOM may book THREE_ROOM.
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	resp, err := service.CreateBooking(ctx, primary.CreateBookingRequest{
		ApplicationID: "APP-001",
		FlatType:      "THREE_ROOM",
		OfficerNRIC:   "T2109876H",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Booking.FlatType != "THREE_ROOM" {
		t.Errorf("expected flat type 'THREE_ROOM', got '%s'", resp.Booking.FlatType)
	}
	if avail := projectRepo.availableOf("PROJ-001", "THREE_ROOM"); avail != 2 {
		t.Errorf("expected 2 three-room units available, got %d", avail)
	}
	if avail := projectRepo.availableOf("PROJ-001", "TWO_ROOM"); avail != 2 {
		t.Errorf("expected two-room inventory untouched, got %d", avail)
	}
}

func TestCreateBooking_IneligibleFlatTypeDenied(t *testing.T) {
	// A single applicant cannot book a three-room flat no matter what.
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	appRepo.applications["APP-001"].ApplicantNRIC = "T7654321B" // single, 40

	_, err := service.CreateBooking(ctx, primary.CreateBookingRequest{
		ApplicationID: "APP-001",
		FlatType:      "THREE_ROOM",
		OfficerNRIC:   "T2109876H",
	})

	if !domain.IsKind(err, domain.KindValidationFailed) {
		t.Fatalf("expected VALIDATION_FAILED error, got %v", err)
	}
}

func TestCreateBooking_NotSuccessfulInvalidState(t *testing.T) {
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	appRepo.applications["APP-001"].Status = "PENDING"

	_, err := service.CreateBooking(ctx, primary.CreateBookingRequest{
		ApplicationID: "APP-001",
		FlatType:      "TWO_ROOM",
		OfficerNRIC:   "T2109876H",
	})

	if !domain.IsKind(err, domain.KindInvalidState) {
		t.Fatalf("expected INVALID_STATE error, got %v", err)
	}
}

func TestCreateBooking_UnassignedOfficerDenied(t *testing.T) {
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	projectRepo.projects["PROJ-001"].Officers = nil

	_, err := service.CreateBooking(ctx, primary.CreateBookingRequest{
		ApplicationID: "APP-001",
		FlatType:      "TWO_ROOM",
		OfficerNRIC:   "T2109876H",
	})

	if !domain.IsKind(err, domain.KindPermissionDenied) {
		t.Fatalf("expected PERMISSION_DENIED error, got %v", err)
	}
}

func TestCreateBooking_SoldOutNothingMutated(t *testing.T) {
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	projectRepo.projects["PROJ-001"].Units[0].Available = 0

	_, err := service.CreateBooking(ctx, primary.CreateBookingRequest{
		ApplicationID: "APP-001",
		FlatType:      "TWO_ROOM",
		OfficerNRIC:   "T2109876H",
	})

	if !domain.IsKind(err, domain.KindCapacityExceeded) {
		t.Fatalf("expected CAPACITY_EXCEEDED error, got %v", err)
	}
	if got := appRepo.applications["APP-001"].Status; got != "SUCCESSFUL" {
		t.Errorf("expected status unchanged 'SUCCESSFUL', got '%s'", got)
	}
	if len(bookingRepo.bookings) != 0 {
		t.Errorf("expected no bookings created, got %d", len(bookingRepo.bookings))
	}
	if projectRepo.availabilityWriteCount != 0 {
		t.Errorf("expected no availability writes, got %d", projectRepo.availabilityWriteCount)
	}
}

func TestCreateBooking_LastUnitConsumed(t *testing.T) {
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	projectRepo.projects["PROJ-001"].Units[0].Available = 1

	_, err := service.CreateBooking(ctx, primary.CreateBookingRequest{
		ApplicationID: "APP-001",
		FlatType:      "TWO_ROOM",
		OfficerNRIC:   "T2109876H",
	})

	if err != nil {
		t.Fatalf("expected no error for last unit, got %v", err)
	}
	if avail := projectRepo.availableOf("PROJ-001", "TWO_ROOM"); avail != 0 {
		t.Errorf("expected 0 units available, got %d", avail)
	}
}

func TestCreateBooking_GuardFailureBeforeAnyWrite(t *testing.T) {
	// A failing guard must stop the operation before the decrement runs -
	// inject write errors that would surface if anything were written.
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	appRepo.applications["APP-001"].Status = "BOOKED"
	bookingRepo.createErr = errors.New("boom")
	projectRepo.updateAvailabilityErr = errors.New("boom")

	_, err := service.CreateBooking(ctx, primary.CreateBookingRequest{
		ApplicationID: "APP-001",
		FlatType:      "TWO_ROOM",
		OfficerNRIC:   "T2109876H",
	})

	if !domain.IsKind(err, domain.KindInvalidState) {
		t.Fatalf("expected INVALID_STATE error, got %v", err)
	}
}

// ============================================================================
// GenerateReceipt Tests
// ============================================================================

func TestGenerateReceipt_Success(t *testing.T) {
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	bookingRepo.bookings["BOOK-001"] = &secondary.BookingRecord{
		ID:            "BOOK-001",
		ApplicationID: "APP-001",
		ApplicantNRIC: "S1234567A",
		ProjectID:     "PROJ-001",
		FlatType:      "TWO_ROOM",
		OfficerNRIC:   "T2109876H",
		ReceiptRef:    "8400b7b8-9d4d-4f56-9b05-7e1ad2a40597",
		CreatedAt:     "2026-05-01T10:00:00Z",
	}

	receipt, err := service.GenerateReceipt(ctx, "BOOK-001")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if receipt.ApplicantName != "John" {
		t.Errorf("expected applicant 'John', got '%s'", receipt.ApplicantName)
	}
	if receipt.MaritalStatus != "MARRIED" {
		t.Errorf("expected marital status 'MARRIED', got '%s'", receipt.MaritalStatus)
	}
	if receipt.ProjectName != "Acacia Breeze" {
		t.Errorf("expected project 'Acacia Breeze', got '%s'", receipt.ProjectName)
	}
	if receipt.OfficerName != "Daniel" {
		t.Errorf("expected officer 'Daniel', got '%s'", receipt.OfficerName)
	}
	if receipt.ReceiptRef != "8400b7b8-9d4d-4f56-9b05-7e1ad2a40597" {
		t.Errorf("unexpected receipt ref '%s'", receipt.ReceiptRef)
	}
}

func TestGenerateReceipt_BookingNotFound(t *testing.T) {
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	_, err := service.GenerateReceipt(ctx, "BOOK-999")

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected NOT_FOUND error, got %v", err)
	}
}

func TestGenerateReceipt_DanglingApplicantNotFound(t *testing.T) {
	service, bookingRepo, appRepo, projectRepo, userRepo := newTestBookingService()
	seedBookingWorld(bookingRepo, appRepo, projectRepo, userRepo)
	ctx := context.Background()

	bookingRepo.bookings["BOOK-001"] = &secondary.BookingRecord{
		ID:            "BOOK-001",
		ApplicationID: "APP-001",
		ApplicantNRIC: "S0000000X", // no such user
		ProjectID:     "PROJ-001",
		FlatType:      "TWO_ROOM",
		OfficerNRIC:   "T2109876H",
	}

	_, err := service.GenerateReceipt(ctx, "BOOK-001")

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected NOT_FOUND error, got %v", err)
	}
}
