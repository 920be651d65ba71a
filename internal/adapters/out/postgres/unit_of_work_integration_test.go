package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "eda/internal/adapters/out/postgres"
	"eda/internal/adapters/out/postgres/orderrepo"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/order"
	"eda/internal/core/domain/model/review"
	"eda/internal/core/ports"
	"eda/internal/pkg/testdb"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var testNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite exercises transaction boundaries against PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, db, err := testdb.Postgres(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(testdb.Truncate(suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ReviewRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsBothAggregates() {
	ctx := context.Background()
	o := suite.createOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	r, err := review.NewReview(kernel.NewUUID(), o.ID(), o.RestaurantID(), o.UserID(), 5, "", testNow)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ReviewRepository().Add(ctx, r))

	gormUoW, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Equal(2, gormUoW.Tracked())

	suite.Require().NoError(uow.Commit(ctx))
	suite.Zero(gormUoW.Tracked())

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	_, err = suite.factory.Create().ReviewRepository().Get(ctx, r.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsSweep() {
	ctx := context.Background()
	first, second := suite.createOrder(), suite.createOrder()
	for _, o := range []*order.Order{first, second} {
		suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	repo := uow.OrderRepository()
	for _, o := range []*order.Order{first, second} {
		suite.Require().NoError(o.Accept(10, testNow))
		updated, err := repo.UpdateStatusFrom(ctx, o, order.Placed)
		suite.Require().NoError(err)
		suite.Require().True(updated)
	}
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("status = ?", order.Placed.String()).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder() *order.Order {
	item, err := order.NewItem(1, "Borscht", 350, 1)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), 42, 3, []order.Item{item}, "", "", testNow)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	testdb.SkipIfShort(t)
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
