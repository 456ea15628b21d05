// Package codec maps one Expense to and from one line of comma-delimited
// text, the on-disk format of the ledger file:
//
//	YYYY-MM-DD,category,payee,amount
//
// The format carries no escaping: a comma inside category or payee cannot
// round-trip. That limitation is inherited from the existing ledger files
// and kept for compatibility.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"tally/internal/core"
)

// ErrFormat marks any line that does not decode to a valid expense. Callers
// test for it with errors.Is.
var ErrFormat = errors.New("malformed ledger line")

// Encode renders an expense as a single ledger line. Encoding is
// deterministic: the same record always yields the same line.
func Encode(e core.Expense) string {
	return fmt.Sprintf("%s,%s,%s,%s", e.Date, e.Category, e.Payee, e.Amount)
}

// Decode parses one ledger line. The line is split on the first three
// commas into exactly four fields; the date must be a strict YYYY-MM-DD and
// the amount a positive decimal. Every failure wraps ErrFormat, including a
// field set that would not pass expense validation.
func Decode(line string) (core.Expense, error) {
	parts := strings.SplitN(line, ",", 4)
	if len(parts) != 4 {
		return core.Expense{}, fmt.Errorf("%w: want 4 fields, got %d", ErrFormat, len(parts))
	}
	date, err := core.ParseDate(parts[0])
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w: date %q", ErrFormat, parts[0])
	}
	cents, err := core.ParseDecimalToCents(parts[3])
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w: amount %q", ErrFormat, parts[3])
	}
	e, err := core.NewExpense(parts[1], parts[2], core.Money{Cents: cents}, date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return e, nil
}
