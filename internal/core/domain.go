package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is a calendar day at UTC midnight. No time-of-day component is
	// ever attached; expenses entered the same day compare equal on Date.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Expense struct {
		Date     Date
		Category string
		Payee    string
		Amount   Money
	}
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrEmptyPayee    = errors.New("empty payee")
)

const dateLayout = "2006-01-02"

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day, the default date for expenses
// entered without one.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a strict YYYY-MM-DD date. Impossible calendar dates
// (2024-02-31) are rejected, not normalized.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// NewExpense builds a validated Expense. Category and payee are trimmed
// before validation; a record never exists with whitespace-only labels, a
// non-positive amount or a zero date.
func NewExpense(category, payee string, amount Money, date Date) (Expense, error) {
	e := Expense{
		Date:     date,
		Category: strings.TrimSpace(category),
		Payee:    strings.TrimSpace(payee),
		Amount:   amount,
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	return e, nil
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(e.Payee) == "" {
		return ErrEmptyPayee
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	return nil
}
