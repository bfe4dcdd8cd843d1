// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// Result messages returned by the customer directory.
const (
	MessageEmailAlreadyExists       = "Email already exists"
	MessageRegistrationSuccessful   = "Registration successful"
	MessageInvalidCredentials       = "Invalid email or password"
	MessageAuthenticationSuccessful = "Authentication successful"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthenticateInput defines the credentials presented at login.
type AuthenticateInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput reports the outcome of a registration attempt.
// A duplicate email is a normal unsuccessful result, not an error.
type RegisterOutput struct {
	Success bool
	Message string
}

// AuthenticateOutput reports the outcome of a login attempt.
// Token is set only when Success is true.
type AuthenticateOutput struct {
	Success bool
	Message string
	Token   string
}

// CustomerUsecase defines the registration and authentication operations.
type CustomerUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
}
