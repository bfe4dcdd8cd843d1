// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"travelhub/internal/delivery/api/response"
	"travelhub/internal/delivery/api/validator"
	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/errors"
	"travelhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves registration and login.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// RegisterRequest represents the request body for registering a customer
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// AuthenticateRequest represents the request body for logging in
type AuthenticateRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse carries a human readable outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register handles customer registration
func (h *CustomerHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid registration input", validator.FieldErrors(err))
	}

	output, err := h.customerUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Success {
		return response.HandleAppError(c, domainerrors.ErrEmailAlreadyExists)
	}

	return response.Success(c, http.StatusCreated, MessageResponse{Message: output.Message})
}

// Authenticate handles customer login
func (h *CustomerHandler) Authenticate(c echo.Context) error {
	var req AuthenticateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid login input", validator.FieldErrors(err))
	}

	output, err := h.customerUC.Authenticate(c.Request().Context(), &usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Success {
		return response.HandleAppError(c, domainerrors.ErrInvalidCredentials)
	}

	return response.Success(c, http.StatusOK, TokenResponse{Message: output.Message, Token: output.Token})
}
