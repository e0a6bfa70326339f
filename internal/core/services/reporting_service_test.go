package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
	"github.com/dpk-exchange/exchange_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestListHistory_AllPeriodsAllPairs() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{ID: 2, Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), FromCurrency: domain.USD, ToCurrency: domain.KHR},
		{ID: 1, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), FromCurrency: domain.THB, ToCurrency: domain.KHR},
	}
	suite.mockRepo.On("FindTransactions", ctx, domain.PeriodAll, (*domain.PairFilter)(nil)).Return(txns, nil).Once()

	got, err := suite.service.ListHistory(ctx, "all", "all")

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.Equal(int64(2), got[0].ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestListHistory_EmptyPeriodDefaultsToAll() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactions", ctx, domain.PeriodAll, (*domain.PairFilter)(nil)).
		Return([]domain.Transaction{}, nil).Once()

	got, err := suite.service.ListHistory(ctx, "", "")

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *ReportingServiceTestSuite) TestListHistory_PairFilterForwarded() {
	ctx := context.Background()
	expected := &domain.PairFilter{From: domain.USD, To: domain.KHR}
	suite.mockRepo.On("FindTransactions", ctx, domain.PeriodWeek, expected).
		Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.ListHistory(ctx, "week", "USD_KHR")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestListHistory_UnknownPeriod() {
	_, err := suite.service.ListHistory(context.Background(), "fortnight", "all")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestListHistory_MalformedPair() {
	for _, pair := range []string{"USDKHR", "USD_EUR", "USD_KHR_THB"} {
		_, err := suite.service.ListHistory(context.Background(), "all", pair)

		suite.Require().Error(err, "pair %q", pair)
		suite.True(errors.Is(err, apperrors.ErrValidation))
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "FindTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestListHistory_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactions", ctx, domain.PeriodAll, (*domain.PairFilter)(nil)).
		Return(nil, errors.New("connection reset")).Once()

	_, err := suite.service.ListHistory(ctx, "all", "all")

	suite.Require().Error(err)
	suite.False(errors.Is(err, apperrors.ErrValidation))
}

func (suite *ReportingServiceTestSuite) TestDailyStats_Passthrough() {
	ctx := context.Background()
	stats := domain.NewDailyStats()
	stats.PeopleCount = 3
	suite.mockRepo.On("GetDailyStats", ctx).Return(stats, nil).Once()

	got, err := suite.service.DailyStats(ctx)

	suite.Require().NoError(err)
	suite.Equal(3, got.PeopleCount)
	suite.Len(got.Totals, len(domain.SupportedCurrencies))
}

func (suite *ReportingServiceTestSuite) TestDailyStats_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("GetDailyStats", ctx).Return(nil, errors.New("timeout")).Once()

	_, err := suite.service.DailyStats(ctx)

	suite.Require().Error(err)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
