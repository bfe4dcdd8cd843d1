package auth

import (
	"strconv"
	"testing"
	"time"

	"travelhub/config"
	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/domain/service"
	"travelhub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string, now time.Time) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		SecretKey: secret,
		Issuer:    "travelhub",
		Audience:  "travelhub-clients",
	}

	svc, ok := NewJWTService(cfg).(*jwtService)
	require.True(t, ok)
	svc.now = func() time.Time { return now }

	return svc
}

func TestJWTService_IssueTokenClaims(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing", now)

	token, err := svc.IssueToken(42, "a@x.com")
	require.NoError(t, err)

	claims := &service.CustomerClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test_secret_key_very_long_for_testing"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, jwt.SigningMethodHS256.Alg(), parsed.Method.Alg())
	assert.Equal(t, strconv.Itoa(42), claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "travelhub", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"travelhub-clients"}, claims.Audience)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing", time.Now())

	first, err := svc.IssueToken(1, "a@x.com")
	require.NoError(t, err)
	second, err := svc.IssueToken(1, "a@x.com")
	require.NoError(t, err)

	firstClaims, err := svc.ValidateToken(first)
	require.NoError(t, err)
	secondClaims, err := svc.ValidateToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTService_MissingKey(t *testing.T) {
	svc := newTestJWTService(t, "", time.Now())

	token, err := svc.IssueToken(1, "a@x.com")
	assert.Empty(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestJWTService_ValidateToken(t *testing.T) {
	issuedAt := time.Now().Truncate(time.Second)
	issuer := newTestJWTService(t, "test_secret_key_very_long_for_testing", issuedAt)
	token, err := issuer.IssueToken(7, "b@x.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		now     time.Time
		token   string
		wantErr bool
	}{
		{name: "valid", secret: "test_secret_key_very_long_for_testing", now: issuedAt.Add(time.Minute), token: token},
		{name: "expired", secret: "test_secret_key_very_long_for_testing", now: issuedAt.Add(2 * time.Hour), token: token, wantErr: true},
		{name: "wrong secret", secret: "another_secret_key_very_long_for_testing", now: issuedAt, token: token, wantErr: true},
		{name: "malformed", secret: "test_secret_key_very_long_for_testing", now: issuedAt, token: "clearly-not-a-jwt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestJWTService(t, tt.secret, tt.now)

			claims, err := svc.ValidateToken(tt.token)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "7", claims.Subject)
			assert.Equal(t, "b@x.com", claims.Email)
		})
	}
}

func TestJWTService_ValidateTokenWrongAudience(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, "test_secret_key_very_long_for_testing", now)
	token, err := svc.IssueToken(7, "b@x.com")
	require.NoError(t, err)

	other := newTestJWTService(t, "test_secret_key_very_long_for_testing", now)
	other.audience = "someone-else"

	_, err = other.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}
