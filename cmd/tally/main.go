package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"tally/internal/backend"
	"tally/internal/cli"
	"tally/internal/core"
	"tally/internal/report"
	"tally/internal/ui"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	store, cleanup := cli.OpenBackend(logger, cfg)
	defer cleanup()

	sh := &shell{
		in:    bufio.NewReader(os.Stdin),
		store: store,
	}
	sh.run(context.Background())
}

type shell struct {
	in    *bufio.Reader
	store backend.Backend
}

func (s *shell) run(ctx context.Context) {
	ui.Header("tally — personal expense ledger")
	if all, err := s.store.All(ctx); err == nil {
		ui.Line("%d expense(s) on record.", len(all))
	}

	for {
		ui.Line("")
		ui.Line("  1) Add expense")
		ui.Line("  2) List expenses (newest first)")
		ui.Line("  3) Totals by payee")
		ui.Line("  4) Totals by category")
		ui.Line("  5) Grand total")
		ui.Line("  q) Quit")

		choice, err := s.prompt("> ")
		if err != nil {
			ui.Line("")
			return
		}

		switch choice {
		case "1":
			s.addExpense(ctx)
		case "2":
			s.listExpenses(ctx)
		case "3":
			s.totals(ctx, "Totals by payee", report.ByPayee)
		case "4":
			s.totals(ctx, "Totals by category", report.ByCategory)
		case "5":
			s.grandTotal(ctx)
		case "q", "Q":
			return
		default:
			ui.Warning("unknown choice %q", choice)
		}
	}
}

// addExpense prompts for the four fields and records one expense. Any
// invalid field aborts this one operation; the menu loop continues.
func (s *shell) addExpense(ctx context.Context) {
	category, err := s.prompt("Category: ")
	if err != nil {
		return
	}
	payee, err := s.prompt("Payee: ")
	if err != nil {
		return
	}
	rawAmount, err := s.prompt("Amount: ")
	if err != nil {
		return
	}
	rawDate, err := s.prompt("Date (YYYY-MM-DD, blank for today): ")
	if err != nil {
		return
	}

	cents, err := core.ParseDecimalToCents(rawAmount)
	if err != nil {
		ui.Error("amount %q: must be a positive decimal", rawAmount)
		return
	}

	date := core.Today()
	if rawDate != "" {
		date, err = core.ParseDate(rawDate)
		if err != nil {
			ui.Error("date %q: must be YYYY-MM-DD", rawDate)
			return
		}
	}

	e, err := core.NewExpense(category, payee, core.Money{Cents: cents}, date)
	if err != nil {
		ui.Error("%v", err)
		return
	}

	if err := s.store.Add(ctx, e); err != nil {
		ui.Error("could not save expense: %v", err)
		return
	}
	ui.Success("recorded %s to %s (%s, %s)", e.Amount, e.Payee, e.Category, e.Date)
}

func (s *shell) listExpenses(ctx context.Context) {
	records, err := s.store.All(ctx)
	if err != nil {
		ui.Error("could not read expenses: %v", err)
		return
	}
	ui.Header("Expenses, newest first")
	if len(records) == 0 {
		ui.Line("  (no expenses recorded)")
		return
	}
	for _, e := range report.ByDateDesc(records) {
		ui.Row(e.Date.String()+"  "+e.Payee+" / "+e.Category, e.Amount.String())
	}
}

func (s *shell) totals(ctx context.Context, title string, group func([]core.Expense) []core.GroupTotal) {
	records, err := s.store.All(ctx)
	if err != nil {
		ui.Error("could not read expenses: %v", err)
		return
	}
	ui.Header(title)
	if len(records) == 0 {
		ui.Line("  (no expenses recorded)")
		return
	}
	for _, g := range group(records) {
		ui.Row(g.Name, g.Amount.String())
	}
	ui.Row("TOTAL", report.Total(records).String())
}

func (s *shell) grandTotal(ctx context.Context) {
	records, err := s.store.All(ctx)
	if err != nil {
		ui.Error("could not read expenses: %v", err)
		return
	}
	ui.Line("")
	ui.Row("Grand total", report.Total(records).String())
}

// prompt reads one trimmed line from stdin. An EOF ends the session.
func (s *shell) prompt(label string) (string, error) {
	os.Stdout.WriteString(label)
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if err != nil && line == "" {
		return "", io.EOF
	}
	return strings.TrimSpace(line), nil
}
