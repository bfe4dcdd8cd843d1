package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// CustomerClaims defines the claim set carried by customer identity tokens.
// The subject holds the decimal customer id.
type CustomerClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating JWTs.
type TokenService interface {
	// IssueToken creates a signed identity token for a customer.
	IssueToken(customerID int64, email string) (string, error)

	// ValidateToken checks the signature, issuer, audience and expiry of a token string.
	ValidateToken(tokenString string) (*CustomerClaims, error)
}
