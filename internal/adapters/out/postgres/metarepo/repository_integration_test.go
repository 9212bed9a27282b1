package metarepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/metarepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CarrierMetaRepositoryIntegrationTestSuite provides integration tests for
// CarrierMetaRepository using PostgreSQL containers to verify upsert behavior.
type CarrierMetaRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *metarepo.GormCarrierMetaRepository
}

func (suite *CarrierMetaRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&metarepo.CarrierMetaDTO{}))
}

func (suite *CarrierMetaRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carrier_meta").Error)

	suite.repository = metarepo.NewGormCarrierMetaRepository(suite.db)
}

func (suite *CarrierMetaRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CarrierMetaRepositoryIntegrationTestSuite) TestUpsert_FirstWrite_Inserts() {
	ctx := context.Background()

	meta := suite.createTestMeta()
	meta.RecordQuotes(`[{"serviceCode":"GROUND"}]`)

	err := suite.repository.Upsert(ctx, meta)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByShipmentID(ctx, meta.ShipmentID())
	suite.Require().NoError(err)
	suite.Equal(meta.ShipmentID(), retrieved.ShipmentID())
	suite.Equal(`[{"serviceCode":"GROUND"}]`, retrieved.RateQuoteJSON())
	suite.False(retrieved.IsBooked())
	suite.Nil(retrieved.CarrierAccountID())
	suite.Nil(retrieved.BookedAt())
}

func (suite *CarrierMetaRepositoryIntegrationTestSuite) TestUpsert_SecondWrite_OverwritesAllColumns() {
	ctx := context.Background()

	meta := suite.createTestMeta()
	meta.RecordQuotes(`[{"serviceCode":"GROUND"}]`)
	suite.Require().NoError(suite.repository.Upsert(ctx, meta))

	// Booking fills in the carrier columns on the same row
	accountID := kernel.NewUUID()
	bookedAt := time.Now().UTC().Truncate(time.Millisecond)
	suite.Require().NoError(
		meta.RecordBooking(accountID, "1Z0123456789ABCDEF", "mock", "GROUND", bookedAt))
	suite.Require().NoError(suite.repository.Upsert(ctx, meta))

	retrieved, err := suite.repository.GetByShipmentID(ctx, meta.ShipmentID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsBooked())
	suite.Equal("1Z0123456789ABCDEF", retrieved.TrackingNumber())
	suite.Equal("mock", retrieved.CarrierCode())
	suite.Equal("GROUND", retrieved.ServiceLevelCode())
	suite.Require().NotNil(retrieved.CarrierAccountID())
	suite.True(retrieved.CarrierAccountID().IsEqual(accountID))
	suite.Require().NotNil(retrieved.BookedAt())
	suite.WithinDuration(bookedAt, *retrieved.BookedAt(), time.Millisecond)
}

func (suite *CarrierMetaRepositoryIntegrationTestSuite) TestUpsert_TrackingUpdate_Persists() {
	ctx := context.Background()

	meta := suite.createTestMeta()
	suite.Require().NoError(suite.repository.Upsert(ctx, meta))

	trackedAt := time.Now().UTC().Truncate(time.Millisecond)
	meta.RecordTracking("IN_TRANSIT", trackedAt)
	suite.Require().NoError(suite.repository.Upsert(ctx, meta))

	retrieved, err := suite.repository.GetByShipmentID(ctx, meta.ShipmentID())
	suite.Require().NoError(err)
	suite.Equal("IN_TRANSIT", retrieved.TrackingStatus())
	suite.Require().NotNil(retrieved.TrackedAt())
	suite.WithinDuration(trackedAt, *retrieved.TrackedAt(), time.Millisecond)
}

func (suite *CarrierMetaRepositoryIntegrationTestSuite) TestGetByShipmentID_NotFound_ReturnsObjectNotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByShipmentID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestMeta creates an empty carrier meta row for a fresh shipment ID.
func (suite *CarrierMetaRepositoryIntegrationTestSuite) createTestMeta() *shipment.CarrierMeta {
	meta, err := shipment.NewCarrierMeta(kernel.NewUUID())
	suite.Require().NoError(err)
	return meta
}

func TestCarrierMetaRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CarrierMetaRepositoryIntegrationTestSuite))
}
