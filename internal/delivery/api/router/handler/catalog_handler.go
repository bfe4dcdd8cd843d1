package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"travelhub/internal/delivery/api/response"
	"travelhub/internal/delivery/api/validator"
	deliverycontext "travelhub/internal/delivery/context"
	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves package and hotel browsing and booking.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// BookPackageRequest represents the request body for booking a package.
// CustomerID may be omitted, in which case the authenticated customer books.
type BookPackageRequest struct {
	CustomerID int64 `json:"customerId" validate:"gte=0"`
	PackageID  int64 `json:"packageId" validate:"required,gt=0"`
	FlightID   int64 `json:"flightId" validate:"required,gt=0"`
	RoomID     int64 `json:"roomId" validate:"required,gt=0"`
}

// ListPackages returns every package with its bookings
func (h *CatalogHandler) ListPackages(c echo.Context) error {
	packages, err := h.catalogUC.ListAvailablePackages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, packages)
}

// GetPackage returns one package or 404
func (h *CatalogHandler) GetPackage(c echo.Context) error {
	packageID, ok := parseID(c.Param("id"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid package ID")
	}

	pkg, err := h.catalogUC.GetPackageDetails(c.Request().Context(), packageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if pkg == nil {
		return response.HandleAppError(c, domainerrors.ErrPackageNotFound)
	}

	return response.Success(c, http.StatusOK, pkg)
}

// ListCustomerPackages returns the packages a customer booked
func (h *CatalogHandler) ListCustomerPackages(c echo.Context) error {
	customerID, ok := parseID(c.Param("customerId"))
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	packages, err := h.catalogUC.ListPackagesByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, packages)
}

// ListHotels returns every hotel with its rooms
func (h *CatalogHandler) ListHotels(c echo.Context) error {
	hotels, err := h.catalogUC.ListHotelsWithRooms(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hotels)
}

// BookPackage handles booking creation
func (h *CatalogHandler) BookPackage(c echo.Context) error {
	var req BookPackageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid booking input", validator.FieldErrors(err))
	}

	customerID := req.CustomerID
	if customerID == 0 {
		tokenCustomerID, ok := deliverycontext.GetCustomerID(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrTokenMissing)
		}
		customerID = tokenCustomerID
	}

	booking, err := h.catalogUC.BookPackage(c.Request().Context(), &usecase.BookPackageInput{
		CustomerID: customerID,
		PackageID:  req.PackageID,
		FlightID:   req.FlightID,
		RoomID:     req.RoomID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, booking)
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
