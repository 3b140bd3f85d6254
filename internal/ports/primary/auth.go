package primary

import "context"

// AuthService defines the primary port for session authentication. Only
// simple ownership/role checks exist; there is no token or permission
// architecture.
type AuthService interface {
	// Login verifies the NRIC/password pair and returns the user.
	Login(ctx context.Context, req LoginRequest) (*User, error)

	// ChangePassword updates the user's password after verifying the old
	// one.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// GetUser retrieves a user by NRIC.
	GetUser(ctx context.Context, nric string) (*User, error)
}

// LoginRequest contains credentials for a login attempt.
type LoginRequest struct {
	NRIC     string
	Password string
}

// ChangePasswordRequest contains parameters for a password change.
type ChangePasswordRequest struct {
	NRIC        string
	OldPassword string
	NewPassword string
}

// User represents a user at the port boundary.
type User struct {
	NRIC          string
	Name          string
	Age           int
	MaritalStatus string
	Role          string
}
