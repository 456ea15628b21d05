// Package report computes ordered and grouped summaries over expense
// sequences. Everything here is pure: inputs are copied, never mutated,
// and no I/O happens.
package report

import (
	"sort"

	"tally/internal/core"
)

// ByDateDesc returns the records sorted by date, most recent first. The
// sort is stable: records on the same day keep their insertion order, so
// output is deterministic for equal dates.
func ByDateDesc(records []core.Expense) []core.Expense {
	out := make([]core.Expense, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// Total returns the exact sum of all amounts, zero for an empty sequence.
// Sums are carried in cents, so repeated aggregation never drifts.
func Total(records []core.Expense) core.Money {
	var cents int64
	for _, e := range records {
		cents += e.Amount.Cents
	}
	return core.Money{Cents: cents}
}

// ByPayee groups records by exact payee text (case-sensitive) and sums
// each group, ordered by descending total. Groups with equal totals keep
// their first-encountered order.
func ByPayee(records []core.Expense) []core.GroupTotal {
	return groupBy(records, func(e core.Expense) string { return e.Payee })
}

// ByCategory is the ByPayee contract keyed by category.
func ByCategory(records []core.Expense) []core.GroupTotal {
	return groupBy(records, func(e core.Expense) string { return e.Category })
}

func groupBy(records []core.Expense, key func(core.Expense) string) []core.GroupTotal {
	index := make(map[string]int)
	var groups []core.GroupTotal
	for _, e := range records {
		k := key(e)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, core.GroupTotal{Name: k})
		}
		groups[i].Amount.Cents += e.Amount.Cents
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Amount.Cents > groups[j].Amount.Cents
	})
	return groups
}
