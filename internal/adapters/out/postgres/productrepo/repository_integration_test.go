package productrepo_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

// ProductRepositoryIntegrationTestSuite provides integration tests for ProductRepository
// using PostgreSQL containers to verify database persistence behavior.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.GormProductRepository
	tracker    *MockAggregateTracker
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = productrepo.NewGormProductRepository(suite.db, suite.tracker)
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_ValidProduct_Success() {
	ctx := context.Background()
	testProduct := suite.createTestProduct("WDG-001")

	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()

	err := suite.repository.Add(ctx, testProduct)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.Name(), retrieved.Name())
	suite.Equal(testProduct.SKU(), retrieved.SKU())
	suite.Equal(testProduct.StockQuantity(), retrieved.StockQuantity())
	suite.True(testProduct.PricePerUnit().Equal(retrieved.PricePerUnit()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_DuplicateSKU_Fails() {
	ctx := context.Background()
	first := suite.createTestProduct("WDG-001")
	second := suite.createTestProduct("WDG-001")

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()

	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrDuplicateSKU)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_ExistingProduct_Success() {
	ctx := context.Background()
	testProduct := suite.createTestProduct("WDG-001")

	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	suite.Require().NoError(testProduct.Reserve(3))
	suite.Require().NoError(testProduct.Rename("Widget Deluxe"))

	err := suite.repository.Update(ctx, testProduct)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal("Widget Deluxe", retrieved.Name())
	suite.Equal(7, retrieved.StockQuantity())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_MissingProduct_Fails() {
	ctx := context.Background()
	testProduct := suite.createTestProduct("WDG-001")

	err := suite.repository.Update(ctx, testProduct)
	suite.Require().Error(err)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_MissingProduct_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetBySKU() {
	ctx := context.Background()
	testProduct := suite.createTestProduct("WDG-042")

	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	retrieved, err := suite.repository.GetBySKU(ctx, "WDG-042")
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testProduct.ID()))

	_, err = suite.repository.GetBySKU(ctx, "NOPE-000")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	testProduct := suite.createTestProduct("WDG-001")

	suite.tracker.On("TrackAggregate", testProduct.ID(), testProduct).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testProduct))

	suite.Require().NoError(suite.repository.Delete(ctx, testProduct.ID()))

	_, err := suite.repository.Get(ctx, testProduct.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Delete(ctx, testProduct.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProductRepositoryIntegrationTestSuite) createTestProduct(sku string) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), "Widget", sku, decimal.NewFromFloat(9.99), 10)
	suite.Require().NoError(err)
	return p
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
