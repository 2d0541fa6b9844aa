package ledger

import (
	"math"

	"github.com/MrJamesThe3rd/gst2tally/internal/gstr2b"
)

// Rate is the tax bucket an invoice books into.
type Rate struct {
	Percent    int
	Interstate bool
}

// RateOf derives the tax bucket from an invoice's raw amounts. IGST wins
// over CGST/SGST. It reports false when the invoice carries no positive tax
// or no positive taxable value.
//
// The rate is computed per tax type in floating point and rounded half to
// even. The voucher builder derives its own rate from the rounded combined
// tax total; the two usually agree for purely interstate or purely local invoices.
func RateOf(inv gstr2b.Invoice) (Rate, bool) {
	taxable := inv.TaxableValue.InexactFloat64()
	igst := inv.IGST.InexactFloat64()
	cgst := inv.CGST.InexactFloat64()
	sgst := inv.SGST.InexactFloat64()

	if taxable <= 0 {
		return Rate{}, false
	}

	if igst > 0 {
		return Rate{Percent: percent(igst, taxable), Interstate: true}, true
	}

	if cgst > 0 || sgst > 0 {
		return Rate{Percent: percent(cgst+sgst, taxable)}, true
	}

	return Rate{}, false
}

func percent(tax, taxable float64) int {
	return int(math.RoundToEven(tax / taxable * 100))
}

// Plan derives the ledgers needed to book invoices, starting from an empty set.
func Plan(invoices []gstr2b.Invoice) (*Set, error) {
	return PlanInto(NewSet(), invoices)
}

// PlanInto registers into set the Round Off ledger, one creditor per
// supplier and the purchase and input tax ledgers of each invoice's rate.
// Names already in set are left untouched, so planning the same invoices
// again adds nothing. On error set is not modified.
func PlanInto(set *Set, invoices []gstr2b.Invoice) (*Set, error) {
	for i, inv := range invoices {
		if _, ok := inv.Supplier(); !ok {
			return nil, &gstr2b.InvoiceError{Index: i, InvoiceNumber: inv.InvoiceNumber, Err: gstr2b.ErrMissingSupplier}
		}
	}

	set.Add(Account{Name: RoundOff, Group: GroupIndirectExpenses})

	for _, inv := range invoices {
		supplier, _ := inv.Supplier()
		set.Add(creditor(supplier))

		rate, ok := RateOf(inv)
		if !ok {
			continue
		}

		if rate.Interstate {
			set.Add(purchase(InterstatePurchase(rate.Percent)))
			set.Add(tax(InputIGST(rate.Percent), DutyHeadIntegrated))

			continue
		}

		set.Add(purchase(LocalPurchase(rate.Percent)))
		set.Add(tax(InputCGST(rate.Percent), DutyHeadCentral))
		set.Add(tax(InputSGST(rate.Percent), DutyHeadState))
	}

	return set, nil
}
