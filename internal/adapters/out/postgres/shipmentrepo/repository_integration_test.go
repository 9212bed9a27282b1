package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers to verify persistence behavior.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_RoundTrips() {
	ctx := context.Background()

	lineItems := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	testShipment := suite.createTestShipment(lineItems)

	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	err := suite.repository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), retrieved.ID())
	suite.Equal(testShipment.OwnerID(), retrieved.OwnerID())
	suite.Equal("US", retrieved.OriginCountry().String())
	suite.Equal("CA", retrieved.DestinationCountry().String())
	suite.InDelta(10.5, retrieved.TotalWeightKg(), 0.0001)
	suite.Equal(shipment.Draft, retrieved.Status())

	// Line-item order is preserved exactly as stored
	suite.Require().Len(retrieved.LineItemIDs(), len(lineItems))
	for i, id := range lineItems {
		suite.True(id.IsEqual(retrieved.LineItemIDs()[i]))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NotFound_ReturnsObjectNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persists() {
	ctx := context.Background()

	testShipment := suite.createTestShipment([]kernel.UUID{kernel.NewUUID()})
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	suite.Require().NoError(testShipment.Book())
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	retrieved, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Booked, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllInBookedStatus_FiltersByStatus() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	draft := suite.createTestShipment([]kernel.UUID{kernel.NewUUID()})
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	booked := suite.createTestShipment([]kernel.UUID{kernel.NewUUID()})
	suite.Require().NoError(suite.repository.Add(ctx, booked))
	suite.Require().NoError(booked.Book())
	suite.Require().NoError(suite.repository.Update(ctx, booked))

	delivered := suite.createTestShipment([]kernel.UUID{kernel.NewUUID()})
	suite.Require().NoError(suite.repository.Add(ctx, delivered))
	suite.Require().NoError(delivered.Book())
	suite.Require().NoError(delivered.Deliver())
	suite.Require().NoError(suite.repository.Update(ctx, delivered))

	shipments, err := suite.repository.GetAllInBookedStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(shipments, 1)
	suite.Equal(booked.ID(), shipments[0].ID())
}

// createTestShipment creates a valid draft shipment for testing purposes.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment(lineItems []kernel.UUID) *shipment.Shipment {
	origin, err := kernel.NewCountryCode("US")
	suite.Require().NoError(err)
	destination, err := kernel.NewCountryCode("CA")
	suite.Require().NoError(err)

	shp, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), origin, destination, 10.5, lineItems)
	suite.Require().NoError(err)
	return shp
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
