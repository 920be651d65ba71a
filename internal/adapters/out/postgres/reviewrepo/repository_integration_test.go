package reviewrepo_test

import (
	"context"
	"testing"
	"time"

	"eda/internal/adapters/out/postgres/reviewrepo"
	"eda/internal/core/domain/model/kernel"
	"eda/internal/core/domain/model/review"
	"eda/internal/pkg/errs"
	"eda/internal/pkg/testdb"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

type ReviewRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *reviewrepo.GormReviewRepository
	tracker    *MockAggregateTracker
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := testdb.Postgres(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(testdb.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = reviewrepo.NewGormReviewRepository(suite.db, suite.tracker)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	r := suite.createReview(kernel.NewUUID(), 42, 5)

	suite.Require().NoError(suite.repository.Add(ctx, r))
	got, err := suite.repository.Get(ctx, r.ID())

	suite.Require().NoError(err)
	suite.True(got.OrderID().IsEqual(r.OrderID()))
	suite.Equal(int64(3), got.RestaurantID())
	suite.Equal(int64(42), got.UserID())
	suite.Equal(5, got.Rating())
	suite.Equal("good", got.Comment())
	suite.False(got.IsDeleted())
	suite.True(got.CreatedAt().Equal(testNow))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", r.ID(), r)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestUpdate_SoftDelete() {
	ctx := context.Background()
	r := suite.createReview(kernel.NewUUID(), 42, 2)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	r.Delete()
	suite.Require().NoError(suite.repository.Update(ctx, r))

	got, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.True(got.IsDeleted())
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestUpdate_MissingReview_ReturnsNotFound() {
	r := suite.createReview(kernel.NewUUID(), 42, 2)

	err := suite.repository.Update(context.Background(), r)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestExistsForOrder_IgnoresDeletedAndOtherUsers() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	exists, err := suite.repository.ExistsForOrder(ctx, orderID, 42)
	suite.Require().NoError(err)
	suite.False(exists)

	r := suite.createReview(orderID, 42, 4)
	suite.Require().NoError(suite.repository.Add(ctx, r))

	exists, err = suite.repository.ExistsForOrder(ctx, orderID, 42)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsForOrder(ctx, orderID, 7)
	suite.Require().NoError(err)
	suite.False(exists)

	r.Delete()
	suite.Require().NoError(suite.repository.Update(ctx, r))

	exists, err = suite.repository.ExistsForOrder(ctx, orderID, 42)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *ReviewRepositoryIntegrationTestSuite) createReview(orderID kernel.UUID, userID int64, rating int) *review.Review {
	r, err := review.NewReview(kernel.NewUUID(), orderID, 3, userID, rating, "good", testNow)
	suite.Require().NoError(err)
	return r
}

func TestReviewRepositoryIntegrationTestSuite(t *testing.T) {
	testdb.SkipIfShort(t)
	suite.Run(t, new(ReviewRepositoryIntegrationTestSuite))
}
