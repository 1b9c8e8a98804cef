// Package validation checks raw transaction input before it is classified.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/txnrisk/internal/common"
)

// Limits applied to transaction input.
const (
	MaxTitleLength = 100
	MaxAmount      = 1_000_000
)

// Validation messages, reported in this order.
const (
	MsgTitleRequired   = "title is required"
	MsgTitleTooLong    = "title too long"
	MsgAmountNotNumber = "amount must be a valid number"
	MsgAmountNegative  = "amount cannot be negative"
	MsgAmountTooLarge  = "amount exceeds maximum"
)

// Result holds every problem found with an input. It is valid when Errors is empty.
type Result struct {
	Errors []string
	Valid  bool
}

// Err returns nil for a valid result, otherwise a single error listing every
// message and wrapping common.ErrInvalidInput.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, msg := range r.Errors {
		errs = append(errs, errors.New(msg))
	}
	return fmt.Errorf("%w: %w", common.ErrInvalidInput, errors.Join(errs...))
}

// Validate checks a title and amount, collecting all failures rather than
// stopping at the first one.
//
// The length check looks at the untrimmed title and only runs for a non-empty
// title, so a long run of spaces reports both messages. Range checks still run
// after a non-finite amount; NaN fails neither of them.
func Validate(title string, amount float64) Result {
	var errs []string

	if strings.TrimSpace(title) == "" {
		errs = append(errs, MsgTitleRequired)
	}

	if title != "" && utf8.RuneCountInString(title) > MaxTitleLength {
		errs = append(errs, MsgTitleTooLong)
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		errs = append(errs, MsgAmountNotNumber)
	}

	if amount < 0 {
		errs = append(errs, MsgAmountNegative)
	}

	if amount > MaxAmount {
		errs = append(errs, MsgAmountTooLarge)
	}

	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
