package app

import (
	"context"
	"fmt"

	"github.com/rebeccamsl/BTO-management-system-sub000/internal/core/domain"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/primary"
	"github.com/rebeccamsl/BTO-management-system-sub000/internal/ports/secondary"
)

// AuthServiceImpl implements the AuthService interface. Authentication here
// is the console-session kind: a password check against the user record, no
// tokens.
type AuthServiceImpl struct {
	userRepo secondary.UserRepository
}

// NewAuthService creates a new AuthService with injected dependencies.
func NewAuthService(userRepo secondary.UserRepository) *AuthServiceImpl {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Login verifies the NRIC/password pair and returns the user.
func (s *AuthServiceImpl) Login(ctx context.Context, req primary.LoginRequest) (*primary.User, error) {
	record, err := s.userRepo.GetByNRIC(ctx, req.NRIC)
	if err != nil {
		return nil, err
	}
	if record.Password != req.Password {
		return nil, domain.NewError(domain.KindPermissionDenied, "incorrect password")
	}
	return recordToUser(record), nil
}

// ChangePassword updates the user's password after verifying the old one.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, req primary.ChangePasswordRequest) error {
	record, err := s.userRepo.GetByNRIC(ctx, req.NRIC)
	if err != nil {
		return err
	}
	if record.Password != req.OldPassword {
		return domain.NewError(domain.KindPermissionDenied, "incorrect password")
	}
	if req.NewPassword == "" {
		return domain.NewError(domain.KindValidationFailed, "new password is required")
	}

	record.Password = req.NewPassword
	if err := s.userRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by NRIC.
func (s *AuthServiceImpl) GetUser(ctx context.Context, nric string) (*primary.User, error) {
	record, err := s.userRepo.GetByNRIC(ctx, nric)
	if err != nil {
		return nil, err
	}
	return recordToUser(record), nil
}

func recordToUser(r *secondary.UserRecord) *primary.User {
	return &primary.User{
		NRIC:          r.NRIC,
		Name:          r.Name,
		Age:           r.Age,
		MaritalStatus: r.MaritalStatus,
		Role:          r.Role,
	}
}

// Ensure AuthServiceImpl implements the interface
var _ primary.AuthService = (*AuthServiceImpl)(nil)
