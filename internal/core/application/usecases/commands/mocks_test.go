package commands_test

import (
	"context"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rate"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the command handler tests.

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Add(ctx context.Context, aggregate *account.CarrierAccount) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, aggregate *account.CarrierAccount) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.CarrierAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.CarrierAccount), args.Error(1)
}

func (m *MockAccountRepository) GetAllActiveByUser(ctx context.Context, userID kernel.UUID) ([]*account.CarrierAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.CarrierAccount), args.Error(1)
}

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) GetAllInBookedStatus(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockMetaRepository struct {
	mock.Mock
}

func (m *MockMetaRepository) Upsert(ctx context.Context, meta *shipment.CarrierMeta) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

func (m *MockMetaRepository) GetByShipmentID(ctx context.Context, shipmentID kernel.UUID) (*shipment.CarrierMeta, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.CarrierMeta), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface in this package.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CarrierAccountRepository() ports.CarrierAccountRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierAccountRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) CarrierMetaRepository() ports.CarrierMetaRepository {
	args := m.Called()
	return args.Get(0).(ports.CarrierMetaRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockAccountUoWFactory struct {
	mock.Mock
}

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockTrackingUoWFactory struct {
	mock.Mock
}

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackingUoW)
}

type MockCarrierAdapter struct {
	mock.Mock
}

func (m *MockCarrierAdapter) GetRates(ctx context.Context, shp *shipment.Shipment) ([]rate.Quote, error) {
	args := m.Called(ctx, shp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rate.Quote), args.Error(1)
}

func (m *MockCarrierAdapter) BookShipment(ctx context.Context, shp *shipment.Shipment, serviceCode string) (ports.BookingConfirmation, error) {
	args := m.Called(ctx, shp, serviceCode)
	return args.Get(0).(ports.BookingConfirmation), args.Error(1)
}

func (m *MockCarrierAdapter) TrackShipment(ctx context.Context, trackingNumber string) (ports.TrackingUpdate, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Get(0).(ports.TrackingUpdate), args.Error(1)
}

type MockAdapterFactory struct {
	mock.Mock
}

func (m *MockAdapterFactory) Resolve(ctx context.Context, acc *account.CarrierAccount) (ports.CarrierAdapter, error) {
	args := m.Called(ctx, acc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.CarrierAdapter), args.Error(1)
}

func (m *MockAdapterFactory) ResolveByID(ctx context.Context, accountID kernel.UUID) (ports.CarrierAdapter, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.CarrierAdapter), args.Error(1)
}

type MockRateCache struct {
	mock.Mock
}

func (m *MockRateCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRateCache) Set(ctx context.Context, key string, payload string, ttl time.Duration) error {
	args := m.Called(ctx, key, payload, ttl)
	return args.Error(0)
}
