package carriers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/rate"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mock carrier service catalog. Prices are a flat base plus a per-kilogram
// charge, rounded to cents; transit estimates stretch on international routes.
const (
	serviceCodeGround  = "GROUND"
	serviceCodeExpress = "EXPRESS"

	mockCurrency = "USD"

	// mockLatency approximates a carrier API round trip so that timeout
	// and cancellation paths stay exercised in development.
	mockLatency = 10 * time.Millisecond

	trackingNumberPrefix = "1Z"
	trackingNumberDigits = 16
)

// mockService describes one entry of the mock carrier's catalog.
type mockService struct {
	code                string
	name                string
	baseAmount          decimal.Decimal
	perKgAmount         decimal.Decimal
	domesticTransitDays int
	intlTransitDays     int
}

// getMockCatalog returns the fixed service catalog of the mock carrier.
func getMockCatalog() []mockService {
	return []mockService{
		{
			code:                serviceCodeGround,
			name:                "Mock Ground",
			baseAmount:          decimal.NewFromInt(10),
			perKgAmount:         decimal.RequireFromString("0.5"),
			domesticTransitDays: 3,
			intlTransitDays:     5,
		},
		{
			code:                serviceCodeExpress,
			name:                "Mock Express",
			baseAmount:          decimal.NewFromInt(25),
			perKgAmount:         decimal.RequireFromString("1.2"),
			domesticTransitDays: 1,
			intlTransitDays:     2,
		},
	}
}

// getTrackingStatuses returns the status ladder the mock carrier reports.
func getTrackingStatuses() []string {
	return []string{
		"LABEL_CREATED",
		"PICKED_UP",
		"IN_TRANSIT",
		"OUT_FOR_DELIVERY",
		"DELIVERED",
	}
}

// MockAdapter is a deterministic in-process carrier used for development
// and tests. Prices and transit estimates are pure functions of the
// shipment, so repeated calls with identical input produce identical
// quotes. Only the simulated network latency and the generated tracking
// number vary between calls.
type MockAdapter struct {
	acc ResolvedAccount
	now func() time.Time
}

// NewMockAdapter creates a mock adapter bound to a resolved account.
func NewMockAdapter(acc ResolvedAccount) *MockAdapter {
	return &MockAdapter{
		acc: acc,
		now: time.Now,
	}
}

// GetRates returns one quote per catalog service, priced from the
// shipment's total weight.
func (m *MockAdapter) GetRates(ctx context.Context, shp *shipment.Shipment) ([]rate.Quote, error) {
	if err := shp.Validate(); err != nil {
		return nil, NewAdapterError(m.acc.Provider, "get rates", err)
	}
	if err := m.simulateLatency(ctx); err != nil {
		return nil, NewAdapterError(m.acc.Provider, "get rates", err)
	}

	weight := decimal.NewFromFloat(shp.TotalWeightKg())
	quotes := make([]rate.Quote, 0, len(getMockCatalog()))

	for _, service := range getMockCatalog() {
		amount := service.baseAmount.Add(service.perKgAmount.Mul(weight)).Round(2)

		transitDays := service.domesticTransitDays
		if shp.IsInternational() {
			transitDays = service.intlTransitDays
		}

		quote, err := rate.NewQuote(m.acc.AccountID, m.acc.Provider,
			service.code, service.name, amount, mockCurrency, transitDays)
		if err != nil {
			return nil, NewAdapterError(m.acc.Provider, "get rates", err)
		}

		quotes = append(quotes, quote)
	}

	return quotes, nil
}

// BookShipment accepts any catalog service and issues a fresh tracking
// number. Unknown service codes fail the booking.
func (m *MockAdapter) BookShipment(ctx context.Context, shp *shipment.Shipment, serviceCode string) (ports.BookingConfirmation, error) {
	if err := shp.Validate(); err != nil {
		return ports.BookingConfirmation{}, NewAdapterError(m.acc.Provider, "book shipment", err)
	}
	if !m.isCatalogService(serviceCode) {
		return ports.BookingConfirmation{}, NewAdapterError(m.acc.Provider, "book shipment",
			fmt.Errorf("unknown service code %q", serviceCode))
	}
	if err := m.simulateLatency(ctx); err != nil {
		return ports.BookingConfirmation{}, NewAdapterError(m.acc.Provider, "book shipment", err)
	}

	return ports.BookingConfirmation{
		TrackingNumber:   newTrackingNumber(),
		CarrierCode:      m.acc.Provider.String(),
		ServiceLevelCode: serviceCode,
		BookedAt:         m.now(),
	}, nil
}

// TrackShipment reports a status derived deterministically from the
// tracking number, so a given parcel always reports the same state.
func (m *MockAdapter) TrackShipment(ctx context.Context, trackingNumber string) (ports.TrackingUpdate, error) {
	if trackingNumber == "" {
		return ports.TrackingUpdate{}, NewAdapterError(m.acc.Provider, "track shipment",
			fmt.Errorf("tracking number is required"))
	}
	if err := m.simulateLatency(ctx); err != nil {
		return ports.TrackingUpdate{}, NewAdapterError(m.acc.Provider, "track shipment", err)
	}

	statuses := getTrackingStatuses()
	var sum int
	for _, b := range []byte(trackingNumber) {
		sum += int(b)
	}

	return ports.TrackingUpdate{
		TrackingNumber: trackingNumber,
		Status:         statuses[sum%len(statuses)],
		CheckedAt:      m.now(),
	}, nil
}

// isCatalogService reports whether the service code exists in the catalog.
func (m *MockAdapter) isCatalogService(serviceCode string) bool {
	for _, service := range getMockCatalog() {
		if service.code == serviceCode {
			return true
		}
	}
	return false
}

// simulateLatency sleeps for the mock round-trip time, honoring
// cancellation.
func (m *MockAdapter) simulateLatency(ctx context.Context) error {
	timer := time.NewTimer(mockLatency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// newTrackingNumber generates a "1Z"-prefixed tracking number from a
// random UUID.
func newTrackingNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return trackingNumberPrefix + raw[:trackingNumberDigits]
}
