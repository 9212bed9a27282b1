// Package http exposes the carrier gateway over a JSON REST API.
// Handlers translate between transport concerns (headers, status codes,
// request bodies) and the application's commands and queries.
package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the authenticated user identity. Authentication itself
// happens upstream; the gateway trusts the header as-is.
const userIDHeader = "X-User-Id"

// Server implements the HTTP handlers for the carrier gateway.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	// Command handlers
	connectAccountHandler    commands.ConnectCarrierAccountCommandHandler
	deactivateAccountHandler commands.DeactivateCarrierAccountCommandHandler
	shopRatesHandler         commands.ShopRatesCommandHandler
	bookShipmentHandler      commands.BookShipmentCommandHandler

	// Query handlers
	getCarrierAccountsHandler queries.GetCarrierAccountsQueryHandler
	getShipmentRatesHandler   queries.GetShipmentRatesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	connectAccountHandler commands.ConnectCarrierAccountCommandHandler,
	deactivateAccountHandler commands.DeactivateCarrierAccountCommandHandler,
	shopRatesHandler commands.ShopRatesCommandHandler,
	bookShipmentHandler commands.BookShipmentCommandHandler,
	getCarrierAccountsHandler queries.GetCarrierAccountsQueryHandler,
	getShipmentRatesHandler queries.GetShipmentRatesQueryHandler,
) *Server {
	return &Server{
		connectAccountHandler:     connectAccountHandler,
		deactivateAccountHandler:  deactivateAccountHandler,
		shopRatesHandler:          shopRatesHandler,
		bookShipmentHandler:       bookShipmentHandler,
		getCarrierAccountsHandler: getCarrierAccountsHandler,
		getShipmentRatesHandler:   getShipmentRatesHandler,
	}
}

// RegisterRoutes attaches the gateway's routes to an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/carrier-accounts", s.ConnectCarrierAccount)
	api.GET("/carrier-accounts", s.GetCarrierAccounts)
	api.DELETE("/carrier-accounts/:accountId", s.DeactivateCarrierAccount)
	api.POST("/shipments/:shipmentId/rates", s.ShopRates)
	api.GET("/shipments/:shipmentId/rates", s.GetShipmentRates)
	api.POST("/shipments/:shipmentId/book", s.BookShipment)
}

// Error is the JSON error body returned by every failing handler.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ConnectCarrierAccountRequest is the body for POST /api/v1/carrier-accounts.
type ConnectCarrierAccountRequest struct {
	Provider      string `json:"provider"`
	Credentials   string `json:"credentials"`
	AccountNumber string `json:"accountNumber"`
}

// ConnectCarrierAccountResponse returns the generated account identity.
type ConnectCarrierAccountResponse struct {
	ID string `json:"id"`
}

// CarrierAccountResponse is one element of the account list read model.
type CarrierAccountResponse struct {
	ID            string `json:"id"`
	Provider      string `json:"provider"`
	AccountNumber string `json:"accountNumber"`
	IsActive      bool   `json:"isActive"`
}

// BookShipmentRequest is the body for POST /api/v1/shipments/:shipmentId/book.
type BookShipmentRequest struct {
	CarrierAccountID string `json:"carrierAccountId"`
	ServiceCode      string `json:"serviceCode"`
}

// BookShipmentResponse returns the carrier booking confirmation.
type BookShipmentResponse struct {
	TrackingNumber   string `json:"trackingNumber"`
	CarrierCode      string `json:"carrierCode"`
	ServiceLevelCode string `json:"serviceLevelCode"`
	BookedAt         string `json:"bookedAt"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ConnectCarrierAccount handles POST /api/v1/carrier-accounts - connects a
// carrier account for the requesting user. Plaintext credentials only exist
// in the request body; the command handler seals them before persisting.
func (s *Server) ConnectCarrierAccount(ctx echo.Context) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return s.writeError(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	var req ConnectCarrierAccountRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	provider, err := account.ParseProvider(req.Provider)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Unknown provider: "+req.Provider)
	}

	cmd, err := commands.NewConnectCarrierAccountCommand(userID, provider, req.Credentials, req.AccountNumber)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid account data: "+err.Error())
	}

	if handleErr := s.connectAccountHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, ConnectCarrierAccountResponse{
		ID: cmd.AccountID().String(),
	})
}

// GetCarrierAccounts handles GET /api/v1/carrier-accounts - lists the
// requesting user's carrier accounts. Sealed credentials are never returned.
func (s *Server) GetCarrierAccounts(ctx echo.Context) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return s.writeError(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	query, err := queries.NewGetCarrierAccountsQuery(userID)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	accounts, err := s.getCarrierAccountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	response := make([]CarrierAccountResponse, len(accounts))
	for i, acc := range accounts {
		response[i] = CarrierAccountResponse{
			ID:            acc.ID.String(),
			Provider:      acc.Provider,
			AccountNumber: acc.AccountNumber,
			IsActive:      acc.IsActive,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeactivateCarrierAccount handles DELETE /api/v1/carrier-accounts/:accountId -
// deactivates a carrier account. The account row is kept for audit.
func (s *Server) DeactivateCarrierAccount(ctx echo.Context) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return s.writeError(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	accountID, err := kernel.UUIDFromString(ctx.Param("accountId"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid account ID")
	}

	cmd, err := commands.NewDeactivateCarrierAccountCommand(accountID, userID)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid account data: "+err.Error())
	}

	if handleErr := s.deactivateAccountHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShopRates handles POST /api/v1/shipments/:shipmentId/rates - fans out to
// the user's active carrier accounts and returns the aggregated quotes.
func (s *Server) ShopRates(ctx echo.Context) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return s.writeError(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid shipment ID")
	}

	cmd, err := commands.NewShopRatesCommand(shipmentID, userID)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid shipment data: "+err.Error())
	}

	quotes, err := s.shopRatesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, quotes)
}

// GetShipmentRates handles GET /api/v1/shipments/:shipmentId/rates - returns
// the last persisted rate snapshot without calling any carriers.
func (s *Server) GetShipmentRates(ctx echo.Context) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return s.writeError(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid shipment ID")
	}

	query, err := queries.NewGetShipmentRatesQuery(shipmentID, userID)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	snapshot, err := s.getShipmentRatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot.Quotes)
}

// BookShipment handles POST /api/v1/shipments/:shipmentId/book - books the
// shipment with the selected quote from the persisted snapshot. An omitted
// serviceCode books the account's cheapest quoted service.
func (s *Server) BookShipment(ctx echo.Context) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return s.writeError(ctx, http.StatusUnauthorized, "Missing or invalid "+userIDHeader+" header")
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid shipment ID")
	}

	var req BookShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	carrierAccountID, err := kernel.UUIDFromString(req.CarrierAccountID)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid carrier account ID")
	}

	cmd, err := commands.NewBookShipmentCommand(shipmentID, userID, carrierAccountID, req.ServiceCode)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, "Invalid booking data: "+err.Error())
	}

	confirmation, err := s.bookShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BookShipmentResponse{
		TrackingNumber:   confirmation.TrackingNumber,
		CarrierCode:      confirmation.CarrierCode,
		ServiceLevelCode: confirmation.ServiceLevelCode,
		BookedAt:         confirmation.BookedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// userID extracts and validates the authenticated user from the request headers.
func (s *Server) userID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(userIDHeader))
}

// mapDomainError translates application and domain errors to HTTP status codes.
func (s *Server) mapDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return s.writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrShipmentAccessDenied),
		errors.Is(err, commands.ErrAccountAccessDenied),
		errors.Is(err, queries.ErrSnapshotAccessDenied):
		return s.writeError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrQuoteNotFound),
		errors.Is(err, account.ErrAccountInactive):
		return s.writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return s.writeError(ctx, http.StatusBadRequest, err.Error())
	default:
		return s.writeError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func (s *Server) writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
