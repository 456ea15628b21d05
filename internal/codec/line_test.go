package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/core"
)

func TestEncode(t *testing.T) {
	e, err := core.NewExpense("Food", "Cafe", core.Money{Cents: 350}, core.NewDate(2024, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05,Food,Cafe,3.50", Encode(e))
	// Deterministic
	assert.Equal(t, Encode(e), Encode(e))
}

func TestRoundTrip(t *testing.T) {
	expenses := []core.Expense{
		mustExpense(t, "Food", "Market", 713, core.NewDate(2024, 3, 1)),
		mustExpense(t, "Rent", "Landlord", 120000, core.NewDate(2024, 3, 1)),
		mustExpense(t, "Misc", "Online shop", 1, core.NewDate(1999, 12, 31)),
	}
	for _, want := range expenses {
		got, err := Decode(Encode(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDecode(t *testing.T) {
	got, err := Decode("2024-01-05,Food,Cafe,3.50")
	require.NoError(t, err)
	assert.Equal(t, core.NewDate(2024, 1, 5), got.Date)
	assert.Equal(t, "Food", got.Category)
	assert.Equal(t, "Cafe", got.Payee)
	assert.Equal(t, int64(350), got.Amount.Cents)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "2024-01-05,Food,3.50"},
		{"empty line", ""},
		{"bad date", "05/01/2024,Food,Cafe,3.50"},
		{"impossible date", "2024-02-31,Food,Cafe,3.50"},
		{"bad amount", "2024-01-05,Food,Cafe,abc"},
		{"zero amount", "2024-01-05,Food,Cafe,0"},
		{"negative amount", "2024-01-05,Food,Cafe,-5"},
		{"blank category", "2024-01-05, ,Cafe,3.50"},
		{"blank payee", "2024-01-05,Food, ,3.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.line)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

// A comma inside payee shifts the remaining fields: the amount segment is no
// longer a valid decimal and decoding fails rather than silently corrupting.
func TestDecodeCommaInPayee(t *testing.T) {
	e := mustExpense(t, "Food", "Bar, Cafe", 350, core.NewDate(2024, 1, 5))
	_, err := Decode(Encode(e))
	assert.ErrorIs(t, err, ErrFormat)
}

func mustExpense(t *testing.T, category, payee string, cents int64, date core.Date) core.Expense {
	t.Helper()
	e, err := core.NewExpense(category, payee, core.Money{Cents: cents}, date)
	require.NoError(t, err)
	return e
}
