package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionID(t *testing.T) {
	txID := NewTransactionID()
	assert.True(t, IsTransactionID(txID))

	u, err := ParseTransactionID(txID)
	require.NoError(t, err)
	assert.Equal(t, TransactionPrefix+u.String(), txID)
}

func TestNewTransactionID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		txID := NewTransactionID()
		assert.False(t, seen[txID], "duplicate ID %s", txID)
		seen[txID] = true
	}
}

func TestParseTransactionID_Invalid(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"missing prefix", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"wrong prefix", "pay_6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{"garbage uuid", "txn_not-a-uuid"},
		{"prefix only", "txn_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTransactionID(tt.id)
			require.Error(t, err)
			assert.False(t, IsTransactionID(tt.id))
		})
	}
}
