package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of a ledger transaction.
type TransactionType string

const (
	TypeSent        TransactionType = "sent"
	TypeReceived    TransactionType = "received"
	TypeBillPayment TransactionType = "bill_payment"
)

// TransactionStatus represents the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is a single immutable entry in the demo ledger. Once created
// only list membership changes; the record itself is never mutated.
type Transaction struct {
	ID           string
	Type         TransactionType
	Amount       decimal.Decimal
	Currency     string
	Counterparty string // recipient for sent, sender for received
	Description  string
	Category     string
	Timestamp    time.Time
	Status       TransactionStatus
}
