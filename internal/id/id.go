package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TransactionPrefix is the prefix carried by every transaction ID.
const TransactionPrefix = "txn_"

// NewTransactionID returns a new unique transaction ID like
// "txn_6ba7b810-9dad-11d1-80b4-00c04fd430c8".
func NewTransactionID() string {
	return TransactionPrefix + uuid.NewString()
}

// ParseTransactionID validates an ID and returns its UUID part.
func ParseTransactionID(id string) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(id, TransactionPrefix)
	if !ok {
		return uuid.UUID{}, fmt.Errorf("invalid transaction ID format: %q", id)
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid transaction ID %q: %w", id, err)
	}
	return u, nil
}

// IsTransactionID reports whether id is a well-formed transaction ID.
func IsTransactionID(id string) bool {
	_, err := ParseTransactionID(id)
	return err == nil
}
