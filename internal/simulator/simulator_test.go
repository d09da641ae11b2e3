package simulator

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payflow-dev/payflow/internal/model"
)

func testOptions(successRate float64) Options {
	return Options{
		SuccessRate: successRate,
		MinDelay:    time.Millisecond,
		MaxDelay:    2 * time.Millisecond,
		Rand:        rand.New(rand.NewSource(42)),
	}
}

func payReq(amount string) model.PaymentRequest {
	return model.PaymentRequest{
		Recipient:     "Maria Lopez",
		Amount:        dec(amount),
		Currency:      "USD",
		Description:   "Test payment",
		PaymentMethod: "balance",
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProcessPayment_Success(t *testing.T) {
	s := New(testOptions(1), nil)
	require.True(t, s.Balance().Equal(dec("2847.50")), "seed balance")

	conf, err := s.ProcessPayment(context.Background(), payReq("50.00"))
	require.NoError(t, err)

	assert.Equal(t, model.PaymentSuccess, conf.Status)
	assert.True(t, conf.Amount.Equal(dec("50.00")))
	assert.Equal(t, "Maria Lopez", conf.Recipient)
	assert.NotEmpty(t, conf.TransactionID)
	assert.NotEmpty(t, conf.Message)

	assert.True(t, s.Balance().Equal(dec("2797.50")), "balance decremented")

	txs := s.Transactions()
	require.NotEmpty(t, txs)
	assert.Equal(t, conf.TransactionID, txs[0].ID)
	assert.True(t, txs[0].Amount.Equal(dec("50.00")))
	assert.Equal(t, model.StatusCompleted, txs[0].Status)
	assert.Equal(t, model.TypeSent, txs[0].Type)
}

func TestProcessPayment_Failure(t *testing.T) {
	s := New(testOptions(-1), nil)
	before := s.Balance()
	seedCount := len(s.Transactions())

	conf, err := s.ProcessPayment(context.Background(), payReq("50.00"))
	require.NoError(t, err, "a drawn failure is a status, not an error")

	assert.Equal(t, model.PaymentFailed, conf.Status)
	assert.True(t, s.Balance().Equal(before), "failed payment never touches the balance")

	txs := s.Transactions()
	require.Len(t, txs, seedCount+1, "failure is still recorded")
	assert.Equal(t, model.StatusFailed, txs[0].Status)
}

func TestProcessPayment_BalanceInvariant(t *testing.T) {
	s := New(testOptions(0.5), nil)
	initial := s.Balance()

	spent := decimal.Zero
	for i := 0; i < 20; i++ {
		conf, err := s.ProcessPayment(context.Background(), payReq("10.00"))
		require.NoError(t, err)
		if conf.Status == model.PaymentSuccess {
			spent = spent.Add(conf.Amount)
		}
	}

	assert.True(t, s.Balance().Equal(initial.Sub(spent)),
		"final balance = initial - sum of successful amounts")
}

func TestProcessPayment_ConcurrentSerialized(t *testing.T) {
	s := New(testOptions(1), nil)
	initial := s.Balance()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ProcessPayment(context.Background(), payReq("10.00"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.True(t, s.Balance().Equal(initial.Sub(dec("100.00"))))
}

func TestProcessPayment_InvalidRequest(t *testing.T) {
	s := New(testOptions(1), nil)

	tests := []struct {
		name string
		req  model.PaymentRequest
	}{
		{"empty recipient", model.PaymentRequest{Amount: dec("5.00"), Currency: "USD"}},
		{"zero amount", model.PaymentRequest{Recipient: "x", Amount: decimal.Zero, Currency: "USD"}},
		{"negative amount", model.PaymentRequest{Recipient: "x", Amount: dec("-5.00"), Currency: "USD"}},
		{"missing currency", model.PaymentRequest{Recipient: "x", Amount: dec("5.00")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ProcessPayment(context.Background(), tt.req)
			require.Error(t, err)
		})
	}
}

func TestProcessPayment_ContextCancelled(t *testing.T) {
	opts := testOptions(1)
	opts.MinDelay = time.Second
	opts.MaxDelay = time.Second
	s := New(opts, nil)
	before := s.Balance()
	seedCount := len(s.Transactions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ProcessPayment(ctx, payReq("50.00"))
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, s.Balance().Equal(before))
	assert.Len(t, s.Transactions(), seedCount, "cancelled payment records nothing")
}

func TestTransactionIDsUnique(t *testing.T) {
	s := New(testOptions(0.5), nil)

	for i := 0; i < 10; i++ {
		_, err := s.ProcessPayment(context.Background(), payReq("1.00"))
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for _, tx := range s.Transactions() {
		assert.False(t, seen[tx.ID], "duplicate transaction ID %s", tx.ID)
		seen[tx.ID] = true
	}
}

func TestTransactionsNewestFirst(t *testing.T) {
	s := New(testOptions(1), nil)

	_, err := s.ProcessPayment(context.Background(), payReq("1.00"))
	require.NoError(t, err)
	_, err = s.ProcessPayment(context.Background(), payReq("2.00"))
	require.NoError(t, err)

	txs := s.Transactions()
	assert.True(t, txs[0].Amount.Equal(dec("2.00")), "latest payment at index 0")
	for i := 1; i < len(txs); i++ {
		assert.False(t, txs[i].Timestamp.After(txs[i-1].Timestamp),
			"history must be sorted newest first")
	}
}

func TestTransactions_DefensiveCopy(t *testing.T) {
	s := New(testOptions(1), nil)

	txs := s.Transactions()
	require.NotEmpty(t, txs)
	txs[0].Description = "mutated"

	assert.NotEqual(t, "mutated", s.Transactions()[0].Description)
}

func TestReset(t *testing.T) {
	s := New(testOptions(1), nil)
	seedBalance := s.Balance()
	seedCount := len(s.Transactions())

	for i := 0; i < 3; i++ {
		_, err := s.ProcessPayment(context.Background(), payReq("25.00"))
		require.NoError(t, err)
	}
	require.False(t, s.Balance().Equal(seedBalance))
	require.Len(t, s.Transactions(), seedCount+3)

	s.Reset()

	assert.True(t, s.Balance().Equal(seedBalance), "reset restores the exact seed balance")
	assert.Len(t, s.Transactions(), seedCount, "reset discards simulated payments")
	for _, tx := range s.Transactions() {
		assert.True(t, tx.Timestamp.After(time.Now().Add(-31*24*time.Hour)),
			"seeded timestamps fall within the last 30 days")
	}
}

func TestValidateCredentials(t *testing.T) {
	s := New(testOptions(1), nil)

	assert.True(t, s.ValidateCredentials(model.Credentials{Username: "demo", Password: "pw"}))
	assert.False(t, s.ValidateCredentials(model.Credentials{Username: "", Password: "pw"}))
	assert.False(t, s.ValidateCredentials(model.Credentials{Username: "demo", Password: ""}))
	assert.False(t, s.ValidateCredentials(model.Credentials{Username: "   ", Password: "pw"}))
}

func TestWriteCSV(t *testing.T) {
	s := New(testOptions(1), nil)
	_, err := s.ProcessPayment(context.Background(), payReq("12.34"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, s.Transactions()))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, len(s.Transactions())+1)
	assert.Equal(t, Header, lines[0])
	assert.Contains(t, lines[1], "12.34")
	assert.Contains(t, lines[1], "Maria Lopez")
	assert.Contains(t, lines[1], "completed")
}
