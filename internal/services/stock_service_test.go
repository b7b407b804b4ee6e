package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"knowledgechat/internal/models"
	"knowledgechat/internal/tests/mocks"
)

func newStockFixture(diamonds int64) (StockService, *models.UserProfile) {
	stored := &models.UserProfile{ID: 1, Name: "Guest User", Diamonds: diamonds}
	users := NewUserService(&mocks.UserRepositoryMock{
		GetFunc: func(ctx context.Context) (*models.UserProfile, error) {
			return stored, nil
		},
		SaveFunc: func(ctx context.Context, profile *models.UserProfile) error {
			stored = profile
			return nil
		},
	})
	return NewStockService(users), stored
}

func TestStockService_InitialQuote(t *testing.T) {
	service, _ := newStockFixture(500)

	quote := service.Quote()
	assert.InDelta(t, 145.20, quote.Price, 0.001)
	assert.Equal(t, "up", quote.Trend)
	assert.Len(t, quote.History, 10)
}

func TestStockService_TickNeverBreachesFloor(t *testing.T) {
	service, _ := newStockFixture(500)
	impl := service.(*stockService)
	impl.price = stockFloorPrice + 0.5
	impl.step = func() float64 { return -5 }

	quote := service.Tick()
	assert.Equal(t, stockFloorPrice, quote.Price)
	assert.Equal(t, "down", quote.Trend)
}

func TestStockService_TickWindowsHistory(t *testing.T) {
	service, _ := newStockFixture(500)
	for i := 0; i < 40; i++ {
		service.Tick()
	}
	assert.Len(t, service.Quote().History, stockHistoryDepth)
}

func TestStockService_BuyAndSell(t *testing.T) {
	service, _ := newStockFixture(10000)
	impl := service.(*stockService)
	impl.price = 100

	profile, err := service.Buy(3)
	assert.NoError(t, err)
	assert.Equal(t, int64(9700), profile.Diamonds)
	assert.Equal(t, 3, service.SharesOwned())

	profile, err = service.Sell(2)
	assert.NoError(t, err)
	assert.Equal(t, int64(9900), profile.Diamonds)
	assert.Equal(t, 1, service.SharesOwned())

	transactions := service.Transactions()
	assert.Len(t, transactions, 2)
	// Newest first.
	assert.Equal(t, "sell", transactions[0].Type)
	assert.Equal(t, "buy", transactions[1].Type)
}

func TestStockService_BuyRejectsOverdraft(t *testing.T) {
	service, _ := newStockFixture(50)
	impl := service.(*stockService)
	impl.price = 100

	profile, err := service.Buy(1)
	assert.Nil(t, profile)
	assert.Error(t, err)
	assert.Equal(t, 0, service.SharesOwned())
	assert.Empty(t, service.Transactions())
}

func TestStockService_SellRejectsShortPosition(t *testing.T) {
	service, _ := newStockFixture(10000)

	profile, err := service.Sell(1)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrNotEnoughShares)
}

func TestStockService_ZeroOrderRejected(t *testing.T) {
	service, _ := newStockFixture(10000)
	_, err := service.Buy(0)
	assert.Error(t, err)
	_, err = service.Sell(-1)
	assert.Error(t, err)
}

func TestStockService_LedgerCapped(t *testing.T) {
	service, _ := newStockFixture(1000000)
	impl := service.(*stockService)
	impl.price = 10

	for i := 0; i < 15; i++ {
		_, err := service.Buy(1)
		assert.NoError(t, err)
	}
	assert.Len(t, service.Transactions(), maxTransactions)
}
