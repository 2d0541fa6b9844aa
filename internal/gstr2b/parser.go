package gstr2b

import (
	"encoding/json"
	"fmt"
	"io"

	enc "github.com/MrJamesThe3rd/gst2tally/internal/encoding"
)

// Parse decodes a GSTR-2B JSON document. The input may carry a BOM or be
// UTF-16 encoded.
func Parse(r io.Reader) (*Filing, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read filing: %w", err)
	}

	var f Filing
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFiling, err)
	}

	return &f, nil
}

// Extract flattens the filing into normalized invoices. Suppliers are walked
// in document order and each supplier's invoices in document order; the
// filing's return period is copied onto every record.
func Extract(f *Filing) []Invoice {
	period := f.returnPeriod()

	invoices := make([]Invoice, 0)

	for _, s := range f.suppliers() {
		for _, inv := range s.Invoices {
			invoices = append(invoices, Invoice{
				SupplierName:  s.TradeName,
				SupplierGSTIN: s.GSTIN,
				Date:          string(inv.Date),
				InvoiceNumber: string(inv.InvoiceNumber),
				ReturnPeriod:  period,
				TaxableValue:  inv.TaxableValue,
				IGST:          inv.IGST,
				CGST:          inv.CGST,
				SGST:          inv.SGST,
				TotalValue:    inv.TotalValue,
			})
		}
	}

	return invoices
}

// Read parses r and extracts its invoices.
func Read(r io.Reader) ([]Invoice, error) {
	f, err := Parse(r)
	if err != nil {
		return nil, err
	}

	return Extract(f), nil
}
