package simulator

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/payflow-dev/payflow/internal/id"
	"github.com/payflow-dev/payflow/internal/model"
)

// Options configures a Simulator. Zero values fall back to the reference
// demo behavior.
type Options struct {
	// SeedBalance is the starting account balance.
	SeedBalance decimal.Decimal
	// SeedCount is the number of fabricated history entries.
	SeedCount int
	// Currency is applied to seeded transactions and the account.
	Currency string
	// SuccessRate is the probability a payment succeeds. 0 means the
	// default 0.95; 1 forces success and any negative value forces
	// failure, which is how tests pin the outcome.
	SuccessRate float64
	// MinDelay and MaxDelay bound the simulated processing latency.
	MinDelay time.Duration
	MaxDelay time.Duration
	// Rand drives outcome and latency draws. Defaults to a time-seeded
	// source; tests inject a fixed seed or pin SuccessRate to 0 or 1.
	Rand *rand.Rand
	// Now is the clock used for timestamps. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.SeedBalance.IsZero() {
		o.SeedBalance = decimal.RequireFromString("2847.50")
	}
	if o.SeedCount == 0 {
		o.SeedCount = 8
	}
	if o.Currency == "" {
		o.Currency = "USD"
	}
	if o.SuccessRate == 0 {
		o.SuccessRate = 0.95
	}
	if o.MinDelay == 0 {
		o.MinDelay = 1400 * time.Millisecond
	}
	if o.MaxDelay < o.MinDelay {
		o.MaxDelay = o.MinDelay + 800*time.Millisecond
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// DefaultOptions returns Options matching the reference demo behavior.
func DefaultOptions() Options {
	return Options{SuccessRate: 0.95}.withDefaults()
}

// Simulator is an in-memory demo ledger: one account balance plus a
// newest-first transaction history. Payments are simulated with randomized
// latency and a weighted success outcome. All ledger mutation happens as a
// single step under one mutex, so overlapping payments interleave linearly.
type Simulator struct {
	opts Options
	log  *zap.Logger

	mu      sync.Mutex
	balance decimal.Decimal
	txs     []model.Transaction
}

// New creates a Simulator with a freshly seeded ledger. A nil logger is
// replaced with a no-op one.
func New(opts Options, log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Simulator{opts: opts.withDefaults(), log: log}
	s.reseedLocked()
	return s
}

// Balance returns the current account balance.
func (s *Simulator) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Currency returns the account currency.
func (s *Simulator) Currency() string {
	return s.opts.Currency
}

// Transactions returns the history, newest first, as a defensive copy.
func (s *Simulator) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// ProcessPayment simulates submitting a payment. It waits the simulated
// processing delay, draws a success outcome, records a transaction either
// way, and decrements the balance only on success. A drawn failure is
// reported through the confirmation's Status, never as an error; the error
// return covers only context cancellation and malformed requests.
func (s *Simulator) ProcessPayment(ctx context.Context, req model.PaymentRequest) (model.PaymentConfirmation, error) {
	if err := req.Validate(); err != nil {
		return model.PaymentConfirmation{}, err
	}

	timer := time.NewTimer(s.paymentDelay())
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return model.PaymentConfirmation{}, ctx.Err()
	case <-timer.C:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	success := s.opts.Rand.Float64() < s.opts.SuccessRate

	tx := model.Transaction{
		ID:           id.NewTransactionID(),
		Type:         model.TypeSent,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Counterparty: req.Recipient,
		Description:  req.Description,
		Category:     "transfer",
		Timestamp:    s.opts.Now(),
		Status:       model.StatusFailed,
	}
	conf := model.PaymentConfirmation{
		TransactionID: tx.ID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Recipient:     req.Recipient,
		Timestamp:     tx.Timestamp,
		Status:        model.PaymentFailed,
		Message:       "Payment could not be processed. Please try again.",
	}

	if success {
		tx.Status = model.StatusCompleted
		conf.Status = model.PaymentSuccess
		conf.Message = "Payment sent successfully."
		s.balance = s.balance.Sub(req.Amount)
	}

	// Newest first; prepend keeps the order invariant.
	s.txs = append([]model.Transaction{tx}, s.txs...)

	s.log.Info("payment processed",
		zap.String("transaction_id", tx.ID),
		zap.String("recipient", req.Recipient),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.String("status", string(conf.Status)))

	return conf, nil
}

// Reset discards all simulated payments and restores the seeded ledger:
// the original balance and a regenerated history of the seeded size.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reseedLocked()
	s.log.Info("demo data reset", zap.Int("seed_count", len(s.txs)))
}

// ValidateCredentials accepts any non-empty username and password. This is
// demo gating, not authentication.
func (s *Simulator) ValidateCredentials(creds model.Credentials) bool {
	return strings.TrimSpace(creds.Username) != "" && strings.TrimSpace(creds.Password) != ""
}

func (s *Simulator) reseedLocked() {
	s.balance = s.opts.SeedBalance
	s.txs = seedTransactions(s.opts.Rand, s.opts.Now(), s.opts.SeedCount, s.opts.Currency)
}

func (s *Simulator) paymentDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	spread := s.opts.MaxDelay - s.opts.MinDelay
	if spread <= 0 {
		return s.opts.MinDelay
	}
	return s.opts.MinDelay + time.Duration(s.opts.Rand.Int63n(int64(spread)))
}
