package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"travelhub/config"
	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/domain/service"
	"travelhub/internal/errors"
)

const tokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

// NewJWTService is the constructor for jwtService.
// A missing secret is reported when a token is issued, not at construction.
func NewJWTService(cfg *config.Config) service.TokenService {
	return &jwtService{
		secret:   []byte(cfg.JWT.SecretKey),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		now:      time.Now,
	}
}

// IssueToken signs a token for the customer that expires one hour after issuance.
func (s *jwtService) IssueToken(customerID int64, email string) (string, error) {
	if len(s.secret) == 0 {
		return "", domainerrors.ErrConfiguration.WrapMessage("jwt signing key is not configured")
	}

	issuedAt := s.now()
	claims := service.CustomerClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(customerID, 10),
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken parses the token and checks signature method, issuer, audience and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.CustomerClaims, error) {
	if len(s.secret) == 0 {
		return nil, domainerrors.ErrConfiguration.WrapMessage("jwt signing key is not configured")
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		options = append(options, jwt.WithAudience(s.audience))
	}

	claims := &service.CustomerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, options...)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	return claims, nil
}
