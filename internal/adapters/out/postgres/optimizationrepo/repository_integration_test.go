package optimizationrepo_test

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/postgres/counter"
	"logistics/internal/adapters/out/postgres/optimizationrepo"
	"logistics/internal/core/domain/model/optimization"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ any, _ any) {}

// OptimizationRepositoryIntegrationTestSuite tests the GORM optimization
// repository against a real PostgreSQL database.
type OptimizationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *optimizationrepo.GormOptimizationRepository
}

func (suite *OptimizationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&optimizationrepo.OptimizationDTO{}, &counter.CounterDTO{})
	suite.Require().NoError(err)

	suite.repo = optimizationrepo.NewGormOptimizationRepository(db, noopTracker{})
}

func (suite *OptimizationRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE optimizations, counters").Error
	suite.Require().NoError(err)
}

func (suite *OptimizationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OptimizationRepositoryIntegrationTestSuite) newRecord(scheduleID uint64) *optimization.RouteOptimization {
	record, err := optimization.NewRouteOptimization(
		scheduleID, []string{"A", "B", "C"}, []string{"A", "C"}, 50, 60, "basic-optimization", 15)
	suite.Require().NoError(err)
	return record
}

func (suite *OptimizationRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	id, err := suite.repo.Add(ctx, suite.newRecord(1))
	suite.Require().NoError(err)
	suite.Equal(uint64(1), id)

	restored, err := suite.repo.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(uint64(1), restored.ScheduleID())
	suite.Equal([]string{"A", "B", "C"}, restored.OriginalRoute())
	suite.Equal([]string{"A", "C"}, restored.OptimizedRoute())
	suite.Equal(50, restored.DistanceSaved())
	suite.Equal(60, restored.TimeSaved())
	suite.Equal("basic-optimization", restored.Algorithm())
}

func (suite *OptimizationRepositoryIntegrationTestSuite) TestGetLatestBySchedule() {
	ctx := context.Background()

	_, err := suite.repo.Add(ctx, suite.newRecord(1))
	suite.Require().NoError(err)
	_, err = suite.repo.Add(ctx, suite.newRecord(2))
	suite.Require().NoError(err)
	latestID, err := suite.repo.Add(ctx, suite.newRecord(1))
	suite.Require().NoError(err)

	latest, err := suite.repo.GetLatestBySchedule(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(latestID, latest.ID())
}

func (suite *OptimizationRepositoryIntegrationTestSuite) TestGetLatestBySchedule_NotFound() {
	ctx := context.Background()

	_, err := suite.repo.GetLatestBySchedule(ctx, 99)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOptimizationRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OptimizationRepositoryIntegrationTestSuite))
}
