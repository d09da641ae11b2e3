package simulator

import (
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/payflow-dev/payflow/internal/id"
	"github.com/payflow-dev/payflow/internal/model"
)

// seedTemplate is one fabricated ledger entry before randomization.
type seedTemplate struct {
	txType       model.TransactionType
	amount       string
	counterparty string
	description  string
	category     string
}

// seedTemplates are the demo merchants and counterparties shown on the
// transaction history screen. Cycled when the configured seed count exceeds
// the template count.
var seedTemplates = []seedTemplate{
	{model.TypeReceived, "1250.00", "Acme Corp", "Salary deposit", "income"},
	{model.TypeSent, "45.20", "Maria Lopez", "Dinner split", "food"},
	{model.TypeBillPayment, "89.99", "City Power & Light", "Electricity bill", "utilities"},
	{model.TypeSent, "120.00", "Daniel Okoro", "Birthday gift", "personal"},
	{model.TypeReceived, "75.50", "Sam Carter", "Concert ticket refund", "entertainment"},
	{model.TypeBillPayment, "54.30", "Metro Water", "Water bill", "utilities"},
	{model.TypeSent, "230.75", "Green Grocers", "Weekly groceries", "groceries"},
	{model.TypeBillPayment, "39.99", "StreamMax", "Streaming subscription", "entertainment"},
	{model.TypeSent, "15.00", "Lena Park", "Coffee run", "food"},
	{model.TypeReceived, "300.00", "Priya Shah", "Loan repayment", "personal"},
}

// seedStatus draws a pre-seeded transaction status: mostly completed, with
// the occasional pending or failed entry to make the history look lived-in.
func seedStatus(rng *rand.Rand) model.TransactionStatus {
	switch roll := rng.Float64(); {
	case roll < 0.70:
		return model.StatusCompleted
	case roll < 0.85:
		return model.StatusPending
	default:
		return model.StatusFailed
	}
}

// seedTransactions fabricates count ledger entries with timestamps spread
// over the 30 days before now, sorted newest first.
func seedTransactions(rng *rand.Rand, now time.Time, count int, currency string) []model.Transaction {
	txs := make([]model.Transaction, 0, count)
	for i := 0; i < count; i++ {
		tmpl := seedTemplates[i%len(seedTemplates)]
		age := time.Duration(rng.Int63n(int64(30 * 24 * time.Hour)))
		txs = append(txs, model.Transaction{
			ID:           id.NewTransactionID(),
			Type:         tmpl.txType,
			Amount:       decimal.RequireFromString(tmpl.amount),
			Currency:     currency,
			Counterparty: tmpl.counterparty,
			Description:  tmpl.description,
			Category:     tmpl.category,
			Timestamp:    now.Add(-age),
			Status:       seedStatus(rng),
		})
	}
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].Timestamp.After(txs[j].Timestamp)
	})
	return txs
}
