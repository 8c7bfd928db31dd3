package services_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/codeforlifeee/arabian-vibes/internal/apperrors"
	"github.com/codeforlifeee/arabian-vibes/internal/core/domain"
	"github.com/codeforlifeee/arabian-vibes/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateCacheRepository ---
type MockRateCacheRepository struct {
	mock.Mock
}

func (m *MockRateCacheRepository) LoadSnapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

func (m *MockRateCacheRepository) SaveSnapshot(ctx context.Context, rates domain.RateTable, usingFallback bool) error {
	args := m.Called(ctx, rates, usingFallback)
	return args.Error(0)
}

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) LoadCurrency(ctx context.Context) (domain.Currency, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Currency), args.Error(1)
}

func (m *MockPreferenceRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context) domain.RateFetchResult {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateFetchResult)
}

func liveRates() domain.RateTable {
	return domain.RateTable{
		domain.CurrencyAED: decimal.NewFromInt(1),
		domain.CurrencyUSD: decimal.NewFromFloat(0.27),
		domain.CurrencyINR: decimal.NewFromFloat(22.7),
	}
}

// --- Test Suite ---
type CurrencySessionTestSuite struct {
	suite.Suite
	mockCache  *MockRateCacheRepository
	mockPrefs  *MockPreferenceRepository
	mockSource *MockRateSource
	session    *services.CurrencySession
}

func (suite *CurrencySessionTestSuite) SetupTest() {
	suite.mockCache = new(MockRateCacheRepository)
	suite.mockPrefs = new(MockPreferenceRepository)
	suite.mockSource = new(MockRateSource)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.session = services.NewCurrencySession(suite.mockCache, suite.mockPrefs, suite.mockSource, logger)
}

func (suite *CurrencySessionTestSuite) TestInit_CacheHitSkipsNetwork() {
	ctx := context.Background()
	snap := &domain.RateSnapshot{
		Rates:           liveRates(),
		Timestamp:       time.Now().Add(-10 * time.Minute).UnixMilli(),
		IsUsingFallback: false,
	}
	suite.mockPrefs.On("LoadCurrency", ctx).Return(domain.CurrencyINR, nil)
	suite.mockCache.On("LoadSnapshot", ctx).Return(snap, nil)

	err := suite.session.Init(ctx)
	suite.Require().NoError(err)

	view := suite.session.Snapshot()
	suite.Equal(domain.CurrencyINR, view.CurrentCurrency)
	suite.False(view.IsUsingFallback)
	suite.False(view.IsLoading)
	suite.True(view.Rates[domain.CurrencyUSD].Equal(decimal.NewFromFloat(0.27)))
	suite.WithinDuration(snap.CapturedAt(), view.LastUpdated, time.Second)

	// Cache-hit fast path must not touch the rate source.
	suite.mockSource.AssertNotCalled(suite.T(), "FetchRates", mock.Anything)
}

func (suite *CurrencySessionTestSuite) TestInit_CacheMissTriggersRefresh() {
	ctx := context.Background()
	suite.mockPrefs.On("LoadCurrency", ctx).Return(domain.Currency(""), apperrors.ErrNotFound)
	suite.mockCache.On("LoadSnapshot", ctx).Return(nil, apperrors.ErrNotFound)
	suite.mockSource.On("FetchRates", ctx).Return(domain.RateFetchResult{Rates: liveRates(), Fallback: false})
	suite.mockCache.On("SaveSnapshot", ctx, mock.Anything, false).Return(nil)

	err := suite.session.Init(ctx)
	suite.Require().NoError(err)

	view := suite.session.Snapshot()
	suite.Equal(domain.DefaultCurrency, view.CurrentCurrency)
	suite.False(view.IsUsingFallback)
	suite.False(view.IsLoading)
	suite.mockSource.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *CurrencySessionTestSuite) TestRefresh_FallbackResultIsCachedAndFlagged() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx).Return(domain.RateFetchResult{Rates: domain.FallbackRates(), Fallback: true})
	suite.mockCache.On("SaveSnapshot", ctx, mock.Anything, true).Return(nil)

	view := suite.session.RefreshRates(ctx)

	suite.True(view.IsUsingFallback)
	suite.False(view.IsLoading)
	suite.True(view.Rates[domain.CurrencyUSD].Equal(decimal.NewFromFloat(0.272)))
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *CurrencySessionTestSuite) TestRefresh_CacheWriteFailureIsNonFatal() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx).Return(domain.RateFetchResult{Rates: liveRates(), Fallback: false})
	suite.mockCache.On("SaveSnapshot", ctx, mock.Anything, false).Return(context.DeadlineExceeded)

	view := suite.session.RefreshRates(ctx)

	suite.False(view.IsUsingFallback)
	suite.True(view.Rates[domain.CurrencyUSD].Equal(decimal.NewFromFloat(0.27)))
}

func (suite *CurrencySessionTestSuite) TestRefresh_StaleResponseIsDiscarded() {
	ctx := context.Background()

	staleRates := domain.RateTable{
		domain.CurrencyAED: decimal.NewFromInt(1),
		domain.CurrencyUSD: decimal.NewFromFloat(0.11),
		domain.CurrencyINR: decimal.NewFromFloat(11.1),
	}
	release := make(chan struct{})
	started := make(chan struct{})

	// First refresh blocks inside the source until released; the second
	// completes with fresh rates in the meantime.
	suite.mockSource.On("FetchRates", ctx).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(domain.RateFetchResult{Rates: staleRates, Fallback: false}).Once()
	suite.mockSource.On("FetchRates", ctx).Return(domain.RateFetchResult{Rates: liveRates(), Fallback: false}).Once()
	suite.mockCache.On("SaveSnapshot", ctx, mock.Anything, false).Return(nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		suite.session.RefreshRates(ctx)
	}()

	<-started
	suite.session.RefreshRates(ctx)
	close(release)
	wg.Wait()

	// The earlier response arrived last but must not overwrite the newer commit.
	view := suite.session.Snapshot()
	suite.True(view.Rates[domain.CurrencyUSD].Equal(decimal.NewFromFloat(0.27)),
		"stale refresh response overwrote a newer one")
	suite.False(view.IsLoading)
}

func (suite *CurrencySessionTestSuite) TestSetCurrency_PersistsPreference() {
	ctx := context.Background()
	suite.mockPrefs.On("SaveCurrency", ctx, domain.CurrencyUSD).Return(nil)

	err := suite.session.SetCurrency(ctx, domain.CurrencyUSD)

	suite.Require().NoError(err)
	suite.Equal(domain.CurrencyUSD, suite.session.Snapshot().CurrentCurrency)
	suite.mockPrefs.AssertExpectations(suite.T())
}

func (suite *CurrencySessionTestSuite) TestSetCurrency_UnsupportedCodeLeavesStateUnchanged() {
	ctx := context.Background()

	err := suite.session.SetCurrency(ctx, "XYZ")

	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.Equal(domain.DefaultCurrency, suite.session.Snapshot().CurrentCurrency)
	suite.mockPrefs.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencySessionTestSuite) TestSetCurrency_PersistenceFailureIsNonFatal() {
	ctx := context.Background()
	suite.mockPrefs.On("SaveCurrency", ctx, domain.CurrencyINR).Return(context.DeadlineExceeded)

	err := suite.session.SetCurrency(ctx, domain.CurrencyINR)

	suite.Require().NoError(err)
	suite.Equal(domain.CurrencyINR, suite.session.Snapshot().CurrentCurrency)
}

func (suite *CurrencySessionTestSuite) TestConvertAmount_DefaultsToCurrentCurrency() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx).Return(domain.RateFetchResult{Rates: liveRates(), Fallback: false})
	suite.mockCache.On("SaveSnapshot", ctx, mock.Anything, false).Return(nil)
	suite.mockPrefs.On("SaveCurrency", ctx, domain.CurrencyUSD).Return(nil)

	suite.session.RefreshRates(ctx)
	suite.Require().NoError(suite.session.SetCurrency(ctx, domain.CurrencyUSD))

	got, err := suite.session.ConvertAmount(decimal.NewFromInt(100), domain.CurrencyAED, "")
	suite.Require().NoError(err)
	suite.True(got.Equal(decimal.NewFromInt(27)), "expected 27, got %s", got)
}

func (suite *CurrencySessionTestSuite) TestFormatAmount() {
	suite.Equal("$ 1235", suite.session.FormatAmount(decimal.NewFromFloat(1234.5), domain.CurrencyUSD))
	// Empty currency uses the session default.
	suite.Equal("﷼ 100", suite.session.FormatAmount(decimal.NewFromInt(100), ""))
}

func (suite *CurrencySessionTestSuite) TestReadHelpers() {
	suite.Equal("₹", suite.session.CurrencySymbol(domain.CurrencyINR))
	suite.Equal([]domain.Currency{domain.CurrencyAED, domain.CurrencyUSD, domain.CurrencyINR}, suite.session.SupportedCurrencies())
}

func TestCurrencySessionTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencySessionTestSuite))
}
