package scenariorepo_test

import (
	"context"
	"testing"
	"time"

	"dronefleet/internal/adapters/out/postgres/scenariorepo"
	"dronefleet/internal/core/ports"
	"dronefleet/internal/pkg/errs"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ScenarioRepositoryIntegrationTestSuite runs GormScenarioRepository against a
// PostgreSQL container.
type ScenarioRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *scenariorepo.GormScenarioRepository
}

func (suite *ScenarioRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&scenariorepo.ScenarioDTO{}, &scenariorepo.ScenarioLineDTO{}))

	repository, err := scenariorepo.NewGormScenarioRepository(db)
	suite.Require().NoError(err)
	suite.repository = repository
}

func (suite *ScenarioRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE scenario_lines, scenarios CASCADE").Error)
}

func (suite *ScenarioRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ScenarioRepositoryIntegrationTestSuite) TestSaveAndRead_PreservesLineOrder() {
	ctx := context.Background()

	err := suite.repository.Save(ctx, "demo", []string{
		"# demo fleet",
		"DRONE 1 Falcon 2.0",
		"",
		"COLIS 10 1.5 12 Main St",
		"DRONE 2 Hawk 0.5",
	})
	suite.Require().NoError(err)

	records, err := suite.repository.Read(ctx, "demo")

	suite.Require().NoError(err)
	suite.Equal([]ports.ScenarioRecord{
		{Kind: ports.DroneRecord, Line: 2, ID: 1, Model: "Falcon", MaxPayload: 2.0},
		{Kind: ports.ParcelRecord, Line: 4, ID: 10, Weight: 1.5, Destination: "12 Main St"},
		{Kind: ports.DroneRecord, Line: 5, ID: 2, Model: "Hawk", MaxPayload: 0.5},
	}, records)
}

func (suite *ScenarioRepositoryIntegrationTestSuite) TestSave_ReplacesScenarioWithSameName() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, "demo", []string{"DRONE 1 Falcon 2.0", "DRONE 2 Hawk 1.0"}))

	suite.Require().NoError(suite.repository.Save(ctx, "demo", []string{"DRONE 7 Kite 0.3"}))

	records, err := suite.repository.Read(ctx, "demo")
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(7, records[0].ID)

	var lines int64
	suite.Require().NoError(suite.db.Model(&scenariorepo.ScenarioLineDTO{}).Count(&lines).Error)
	suite.Equal(int64(1), lines)
}

func (suite *ScenarioRepositoryIntegrationTestSuite) TestSave_RejectsBlankName() {
	err := suite.repository.Save(context.Background(), "  ", []string{"DRONE 1 Falcon 2.0"})

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *ScenarioRepositoryIntegrationTestSuite) TestRead_UnknownScenario() {
	_, err := suite.repository.Read(context.Background(), "missing")

	suite.Require().ErrorIs(err, ports.ErrSourceUnavailable)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ScenarioRepositoryIntegrationTestSuite) TestRead_MalformedStoredLine() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, "broken", []string{"DRONE 1 Falcon 2.0", "PLANE 2 Jet 9"}))

	_, err := suite.repository.Read(ctx, "broken")

	suite.Require().ErrorIs(err, ports.ErrMalformedLine)
	suite.Contains(err.Error(), "line 2")
}

func (suite *ScenarioRepositoryIntegrationTestSuite) TestList_ReturnsNamesSorted() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Save(ctx, "zulu", nil))
	suite.Require().NoError(suite.repository.Save(ctx, "alpha", []string{"# empty"}))

	names, err := suite.repository.List(ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"alpha", "zulu"}, names)
}

func TestScenarioRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioRepositoryIntegrationTestSuite))
}

func TestNewGormScenarioRepository_NilDB(t *testing.T) {
	_, err := scenariorepo.NewGormScenarioRepository(nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
