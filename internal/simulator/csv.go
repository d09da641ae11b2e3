package simulator

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/payflow-dev/payflow/internal/model"
)

// Header is the CSV header for exported transaction history.
const Header = "id,type,amount,currency,counterparty,description,category,timestamp,status"

const (
	numFields       = 9
	colID           = 0
	colType         = 1
	colAmount       = 2
	colCurrency     = 3
	colCounterparty = 4
	colDescription  = 5
	colCategory     = 6
	colTimestamp    = 7
	colStatus       = 8
)

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = tx.ID
	row[colType] = string(tx.Type)
	row[colAmount] = tx.Amount.StringFixed(2)
	row[colCurrency] = tx.Currency
	row[colCounterparty] = tx.Counterparty
	row[colDescription] = tx.Description
	row[colCategory] = tx.Category
	row[colTimestamp] = tx.Timestamp.Format(time.RFC3339)
	row[colStatus] = string(tx.Status)
	return row
}

// WriteCSV writes the transaction history to w, header first.
func WriteCSV(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing transaction %d: %w", i, err)
		}
	}
	return cw.Error()
}
