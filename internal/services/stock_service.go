package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"knowledgechat/internal/models"
)

const (
	stockFloorPrice   = 10.0
	stockHistoryDepth = 30
	maxTransactions   = 10
)

var ErrNotEnoughShares = errors.New("not enough shares")

type StockService interface {
	Startup(ctx context.Context)
	Quote() models.StockQuote
	Tick() models.StockQuote
	Buy(amount int) (*models.UserProfile, error)
	Sell(amount int) (*models.UserProfile, error)
	SharesOwned() int
	Transactions() []models.StockTransaction
}

// stockService simulates a single-symbol exchange with a random walk that
// carries a slight upward bias. Buys and sells settle against the diamond
// balance.
type stockService struct {
	users UserService
	ctx   context.Context

	mu           sync.Mutex
	price        float64
	prevPrice    float64
	history      []float64
	sharesOwned  int
	transactions []models.StockTransaction
	step         func() float64
}

func NewStockService(users UserService) StockService {
	return &stockService{
		users:     users,
		price:     145.20,
		prevPrice: 145.20,
		history:   []float64{140, 142, 138, 145, 143, 148, 145, 142, 146, 145.20},
		step:      func() float64 { return (rand.Float64() - 0.48) * 2 },
	}
}

func (s *stockService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *stockService) Quote() models.StockQuote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quoteLocked()
}

// Tick advances the simulated price once and returns the new quote.
func (s *stockService) Tick() models.StockQuote {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prevPrice = s.price
	next := s.price + s.step()
	if next < stockFloorPrice {
		next = stockFloorPrice
	}
	s.price = next
	s.history = append(s.history, next)
	if len(s.history) > stockHistoryDepth {
		s.history = s.history[len(s.history)-stockHistoryDepth:]
	}
	return s.quoteLocked()
}

func (s *stockService) Buy(amount int) (*models.UserProfile, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("order amount must be positive")
	}

	s.mu.Lock()
	price := s.price
	s.mu.Unlock()

	cost := int64(float64(amount) * price)
	profile, err := s.users.AdjustDiamonds(-cost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sharesOwned += amount
	s.recordLocked("buy", amount, price)
	s.mu.Unlock()
	return profile, nil
}

func (s *stockService) Sell(amount int) (*models.UserProfile, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("order amount must be positive")
	}

	s.mu.Lock()
	if s.sharesOwned < amount {
		s.mu.Unlock()
		return nil, ErrNotEnoughShares
	}
	s.sharesOwned -= amount
	price := s.price
	s.recordLocked("sell", amount, price)
	s.mu.Unlock()

	gain := int64(float64(amount) * price)
	profile, err := s.users.AdjustDiamonds(gain)
	if err != nil {
		// Shares already left the book; put them back so the simulation
		// stays consistent.
		s.mu.Lock()
		s.sharesOwned += amount
		s.mu.Unlock()
		return nil, err
	}
	return profile, nil
}

func (s *stockService) SharesOwned() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sharesOwned
}

func (s *stockService) Transactions() []models.StockTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StockTransaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *stockService) quoteLocked() models.StockQuote {
	trend := "up"
	if s.price < s.prevPrice {
		trend = "down"
	}
	history := make([]float64, len(s.history))
	copy(history, s.history)
	return models.StockQuote{Price: s.price, PrevPrice: s.prevPrice, Trend: trend, History: history}
}

// recordLocked prepends the transaction, keeping the ledger at the display
// depth. Callers hold s.mu.
func (s *stockService) recordLocked(kind string, amount int, price float64) {
	tx := models.StockTransaction{
		ID:     uuid.NewString(),
		Type:   kind,
		Amount: amount,
		Price:  price,
		Date:   time.Now().Format("15:04:05"),
	}
	s.transactions = append([]models.StockTransaction{tx}, s.transactions...)
	if len(s.transactions) > maxTransactions {
		s.transactions = s.transactions[:maxTransactions]
	}
}
