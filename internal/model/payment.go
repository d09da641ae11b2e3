package model

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the outcome of a simulated payment submission.
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentRequest holds the parameters for a payment submission.
type PaymentRequest struct {
	Recipient     string
	Amount        decimal.Decimal
	Currency      string
	Description   string
	PaymentMethod string
}

// Validate checks that a request is well-formed. A failed validation is a
// caller bug, not a simulated payment failure.
func (r PaymentRequest) Validate() error {
	if strings.TrimSpace(r.Recipient) == "" {
		return errors.New("payment request: recipient is required")
	}
	if r.Amount.Cmp(decimal.Zero) <= 0 {
		return errors.New("payment request: amount must be positive")
	}
	if strings.TrimSpace(r.Currency) == "" {
		return errors.New("payment request: currency is required")
	}
	return nil
}

// PaymentConfirmation is returned for every payment submission, success or
// failure. Callers branch on Status; failure is a value, never an error.
type PaymentConfirmation struct {
	TransactionID string
	Amount        decimal.Decimal
	Currency      string
	Recipient     string
	Timestamp     time.Time
	Status        PaymentStatus
	Message       string
}

// Credentials is a demo-only login pair. Accepting it is not a security
// control.
type Credentials struct {
	Username string
	Password string
}
