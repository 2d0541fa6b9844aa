package voucher

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gst2tally/internal/gstr2b"
	"github.com/MrJamesThe3rd/gst2tally/internal/ledger"
)

// ErrInvalidDate is returned for an invoice date that is not DD-MM-YYYY.
var ErrInvalidDate = errors.New("invalid invoice date")

// dateLayout accepts unpadded day and month, as filings occasionally do.
const dateLayout = "2-1-2006"

// Build books each invoice as a Purchase voucher, in order. A bad invoice
// aborts the whole build.
func Build(invoices []gstr2b.Invoice) ([]Voucher, error) {
	vouchers := make([]Voucher, 0, len(invoices))

	for i, inv := range invoices {
		v, err := build(inv)
		if err != nil {
			return nil, &gstr2b.InvoiceError{Index: i, InvoiceNumber: inv.InvoiceNumber, Err: err}
		}

		vouchers = append(vouchers, v)
	}

	return vouchers, nil
}

func build(inv gstr2b.Invoice) (Voucher, error) {
	party, ok := inv.Supplier()
	if !ok {
		return Voucher{}, gstr2b.ErrMissingSupplier
	}

	date, err := time.Parse(dateLayout, inv.Date)
	if err != nil {
		return Voucher{}, fmt.Errorf("%w %q", ErrInvalidDate, inv.Date)
	}

	var (
		taxable = R2(inv.TaxableValue)
		igst    = R2(inv.IGST)
		cgst    = R2(inv.CGST)
		sgst    = R2(inv.SGST)
		total   = R2(inv.TotalValue)
	)

	taxTotal := igst.Add(cgst).Add(sgst)
	debit := taxable.Add(taxTotal)
	r := rate(taxTotal, taxable)

	interstate := igst.IsPositive()

	purchaseLedger := ledger.LocalPurchase(r)
	if interstate {
		purchaseLedger = ledger.InterstatePurchase(r)
	}

	lines := []Line{
		{
			Ledger: party,
			Amount: total,
			Bill: &BillAllocation{
				Name:   inv.InvoiceNumber,
				Type:   BillTypeNewRef,
				Amount: total,
			},
		},
		debitLine(purchaseLedger, taxable),
	}

	if interstate {
		lines = append(lines, debitLine(ledger.InputIGST(r), igst))
	} else {
		lines = append(lines,
			debitLine(ledger.InputCGST(r), cgst),
			debitLine(ledger.InputSGST(r), sgst),
		)
	}

	if !debit.Equal(total) {
		diff := total.Sub(debit)
		lines = append(lines, Line{
			Ledger:         ledger.RoundOff,
			Amount:         diff.Neg(),
			DeemedPositive: !diff.IsPositive(),
		})
	}

	return Voucher{
		Type:        TypePurchase,
		Date:        date,
		Reference:   inv.InvoiceNumber,
		Number:      inv.InvoiceNumber,
		PartyLedger: party,
		Lines:       lines,
	}, nil
}

func debitLine(name string, amount decimal.Decimal) Line {
	return Line{Ledger: name, Amount: amount.Neg(), DeemedPositive: true}
}
