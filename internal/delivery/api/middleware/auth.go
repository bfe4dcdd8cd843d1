package middleware

import (
	"log/slog"
	"strconv"
	"strings"

	"travelhub/internal/delivery/api/response"
	deliverycontext "travelhub/internal/delivery/context"
	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware validates customer identity tokens.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Authenticate requires a valid Bearer token and stores the customer id from its subject.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrTokenMissing)
		}

		claims, err := m.tokenService.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected identity token", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrTokenInvalid)
		}

		customerID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || customerID <= 0 {
			return response.HandleAppError(c, domainerrors.ErrTokenInvalid)
		}

		deliverycontext.SetCustomerID(c, customerID)

		return next(c)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
