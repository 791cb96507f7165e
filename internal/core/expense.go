package core

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("empty expense name")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNoRows        = errors.New("export contains no data rows")
	ErrOutOfRange    = errors.New("expense position out of range")
)

// Expense is a named personal cost recorded against settled payouts.
// Entries are persisted across sessions and never mutated in place.
type Expense struct {
	Name   string
	Amount Money
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Name)) == 0 {
		return ErrEmptyName
	}
	if len(e.Name) > 200 {
		return errors.New("expense name too long (max 200 characters)")
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	return nil
}
