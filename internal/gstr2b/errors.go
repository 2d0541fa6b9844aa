package gstr2b

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedFiling is returned when the input is not a JSON filing or an
	// amount field holds something other than a number.
	ErrMalformedFiling = errors.New("malformed filing")

	// ErrMissingSupplier is returned when an invoice's supplier group has no
	// trade name, so no creditor ledger can be named for it.
	ErrMissingSupplier = errors.New("supplier name missing")
)

// InvoiceError ties a failure to the invoice that caused it. Index is the
// invoice's position in extraction order.
type InvoiceError struct {
	Index         int
	InvoiceNumber string
	Err           error
}

func (e *InvoiceError) Error() string {
	return fmt.Sprintf("invoice %d (%q): %v", e.Index+1, e.InvoiceNumber, e.Err)
}

func (e *InvoiceError) Unwrap() error {
	return e.Err
}
