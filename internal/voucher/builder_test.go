package voucher_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gst2tally/internal/gstr2b"
	"github.com/MrJamesThe3rd/gst2tally/internal/voucher"
)

func ptr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type amounts struct {
	taxable, igst, cgst, sgst, total string
}

func invoice(number string, a amounts) gstr2b.Invoice {
	zero := func(s string) string {
		if s == "" {
			return "0"
		}

		return s
	}

	return gstr2b.Invoice{
		SupplierName:  ptr("Shree Ganesh Traders"),
		Date:          "05-09-2024",
		InvoiceNumber: number,
		ReturnPeriod:  "092024",
		TaxableValue:  dec(zero(a.taxable)),
		IGST:          dec(zero(a.igst)),
		CGST:          dec(zero(a.cgst)),
		SGST:          dec(zero(a.sgst)),
		TotalValue:    dec(zero(a.total)),
	}
}

// line is a comparable view of voucher.Line.
type line struct {
	Ledger         string
	Amount         string
	DeemedPositive bool
}

func lines(v voucher.Voucher) []line {
	out := make([]line, 0, len(v.Lines))
	for _, l := range v.Lines {
		out = append(out, line{Ledger: l.Ledger, Amount: l.Amount.StringFixed(2), DeemedPositive: l.DeemedPositive})
	}

	return out
}

func buildOne(t *testing.T, inv gstr2b.Invoice) voucher.Voucher {
	t.Helper()

	vs, err := voucher.Build([]gstr2b.Invoice{inv})
	require.NoError(t, err)
	require.Len(t, vs, 1)

	return vs[0]
}

func TestR2(t *testing.T) {
	tests := map[string]string{
		"1.005":   "1.01",
		"2.675":   "2.68",
		"1.004":   "1.00",
		"-1.005":  "-1.01",
		"1180":    "1180.00",
		"99.9951": "100.00",
	}

	for in, want := range tests {
		assert.Equal(t, want, voucher.R2(dec(in)).StringFixed(2), in)
	}
}

func TestBuild_Interstate(t *testing.T) {
	v := buildOne(t, invoice("SGT/101", amounts{taxable: "1000", igst: "180", total: "1180"}))

	assert.Equal(t, voucher.TypePurchase, v.Type)
	assert.Equal(t, time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC), v.Date)
	assert.Equal(t, "SGT/101", v.Reference)
	assert.Equal(t, "SGT/101", v.Number)
	assert.Equal(t, "Shree Ganesh Traders", v.PartyLedger)

	assert.Equal(t, []line{
		{Ledger: "Shree Ganesh Traders", Amount: "1180.00"},
		{Ledger: "Interstate Purchase 18%", Amount: "-1000.00", DeemedPositive: true},
		{Ledger: "Input IGST 18%", Amount: "-180.00", DeemedPositive: true},
	}, lines(v))

	require.NotNil(t, v.Lines[0].Bill)
	assert.Equal(t, "SGT/101", v.Lines[0].Bill.Name)
	assert.Equal(t, voucher.BillTypeNewRef, v.Lines[0].Bill.Type)
	assert.Equal(t, "1180.00", v.Lines[0].Bill.Amount.StringFixed(2))

	for _, l := range v.Lines[1:] {
		assert.Nil(t, l.Bill)
	}

	assert.True(t, v.Balance().IsZero())
}

func TestBuild_Local(t *testing.T) {
	v := buildOne(t, invoice("MPM-77", amounts{taxable: "1000", cgst: "90", sgst: "90", total: "1180"}))

	assert.Equal(t, []line{
		{Ledger: "Shree Ganesh Traders", Amount: "1180.00"},
		{Ledger: "Local Purchase 18%", Amount: "-1000.00", DeemedPositive: true},
		{Ledger: "Input CGST 9%", Amount: "-90.00", DeemedPositive: true},
		{Ledger: "Input SGST 9%", Amount: "-90.00", DeemedPositive: true},
	}, lines(v))
	assert.True(t, v.Balance().IsZero())
}

func TestBuild_OddCombinedRateFloorsHalfLabels(t *testing.T) {
	v := buildOne(t, invoice("ODD-1", amounts{taxable: "1000", cgst: "85", sgst: "85", total: "1170"}))

	got := lines(v)
	assert.Equal(t, "Local Purchase 17%", got[1].Ledger)
	assert.Equal(t, "Input CGST 8%", got[2].Ledger)
	assert.Equal(t, "Input SGST 8%", got[3].Ledger)
}

func TestBuild_ZeroTaxableValue(t *testing.T) {
	v := buildOne(t, invoice("NIL-1", amounts{taxable: "0", cgst: "0", total: "0"}))

	got := lines(v)
	assert.Equal(t, "Local Purchase 0%", got[1].Ledger)
	assert.Equal(t, "Input CGST 0%", got[2].Ledger)
	assert.Equal(t, "Input SGST 0%", got[3].Ledger)
	assert.True(t, v.Balance().IsZero())
}

func TestBuild_ZeroTaxableWithTax(t *testing.T) {
	v := buildOne(t, invoice("ZT-1", amounts{taxable: "0", igst: "18", total: "18"}))

	got := lines(v)
	assert.Equal(t, "Interstate Purchase 0%", got[1].Ledger)
	assert.Equal(t, "Input IGST 0%", got[2].Ledger)
	assert.True(t, v.Balance().IsZero())
}

func TestBuild_RoundOff(t *testing.T) {
	type testCase struct {
		name      string
		total     string
		wantLine  line
		wantLines int
	}

	tests := []testCase{
		{
			name:      "TotalOneCentHigh",
			total:     "1180.01",
			wantLine:  line{Ledger: "Round Off", Amount: "-0.01", DeemedPositive: false},
			wantLines: 4,
		},
		{
			name:      "TotalOneCentLow",
			total:     "1179.99",
			wantLine:  line{Ledger: "Round Off", Amount: "0.01", DeemedPositive: true},
			wantLines: 4,
		},
		{
			name:      "TotalRoundedUpToRupee",
			total:     "1180.40",
			wantLine:  line{Ledger: "Round Off", Amount: "-0.40", DeemedPositive: false},
			wantLines: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := buildOne(t, invoice("RO-1", amounts{taxable: "1000", igst: "180", total: tt.total}))

			got := lines(v)
			require.Len(t, got, tt.wantLines)
			assert.Equal(t, tt.wantLine, got[len(got)-1])
			assert.True(t, v.Balance().IsZero(), "balance %s", v.Balance())
		})
	}
}

func TestBuild_NoRoundOffWhenBalanced(t *testing.T) {
	v := buildOne(t, invoice("B-1", amounts{taxable: "1000.004", igst: "179.996", total: "1180"}))

	for _, l := range v.Lines {
		assert.NotEqual(t, "Round Off", l.Ledger)
	}
}

func TestBuild_AmountsRoundedHalfUp(t *testing.T) {
	v := buildOne(t, invoice("R-1", amounts{taxable: "1000.005", igst: "180.005", total: "1180.01"}))

	got := lines(v)
	assert.Equal(t, "-1000.01", got[1].Amount)
	assert.Equal(t, "-180.01", got[2].Amount)
	// 1000.01 + 180.01 = 1180.02 against a stated 1180.01.
	assert.Equal(t, line{Ledger: "Round Off", Amount: "0.01", DeemedPositive: true}, got[3])
	assert.True(t, v.Balance().IsZero())
}

func TestBuild_BalanceInvariant(t *testing.T) {
	invoices := []gstr2b.Invoice{
		invoice("1", amounts{taxable: "1000", igst: "180", total: "1180"}),
		invoice("2", amounts{taxable: "999.99", cgst: "89.999", sgst: "90.001", total: "1180"}),
		invoice("3", amounts{taxable: "123.456", igst: "22.222", total: "145.68"}),
		invoice("4", amounts{taxable: "0", total: "0"}),
		invoice("5", amounts{taxable: "250", cgst: "6.25", sgst: "6.25", total: "262"}),
		invoice("6", amounts{taxable: "-100", cgst: "-9", sgst: "-9", total: "-118"}),
	}

	vs, err := voucher.Build(invoices)
	require.NoError(t, err)
	require.Len(t, vs, len(invoices))

	for _, v := range vs {
		assert.True(t, v.Balance().IsZero(), "voucher %s balance %s", v.Number, v.Balance())
	}
}

func TestBuild_OrderAndDuplicates(t *testing.T) {
	invoices := []gstr2b.Invoice{
		invoice("B", amounts{taxable: "100", igst: "18", total: "118"}),
		invoice("A", amounts{taxable: "100", igst: "18", total: "118"}),
		invoice("B", amounts{taxable: "100", igst: "18", total: "118"}),
	}

	vs, err := voucher.Build(invoices)
	require.NoError(t, err)

	var numbers []string
	for _, v := range vs {
		numbers = append(numbers, v.Number)
	}

	assert.Equal(t, []string{"B", "A", "B"}, numbers)
}

func TestBuild_CombinedRateIgnoresTaxType(t *testing.T) {
	// An invoice carrying IGST and CGST/SGST together books to the interstate
	// ledgers at the combined rate. Only IGST gets a line, so the voucher does
	// not balance.
	v := buildOne(t, invoice("MIX-1", amounts{taxable: "1000", igst: "100", cgst: "40", sgst: "40", total: "1180"}))

	assert.Equal(t, []line{
		{Ledger: "Shree Ganesh Traders", Amount: "1180.00"},
		{Ledger: "Interstate Purchase 18%", Amount: "-1000.00", DeemedPositive: true},
		{Ledger: "Input IGST 18%", Amount: "-100.00", DeemedPositive: true},
	}, lines(v))
	assert.Equal(t, "80.00", v.Balance().StringFixed(2))
}

func TestBuild_Errors(t *testing.T) {
	good := invoice("OK", amounts{taxable: "100", igst: "18", total: "118"})

	badDate := invoice("BAD-DATE", amounts{taxable: "100", igst: "18", total: "118"})
	badDate.Date = "2024-09-05"

	noSupplier := invoice("NO-SUP", amounts{taxable: "100", igst: "18", total: "118"})
	noSupplier.SupplierName = nil

	type testCase struct {
		name      string
		invoices  []gstr2b.Invoice
		wantErr   error
		wantIndex int
		wantNum   string
	}

	tests := []testCase{
		{name: "InvalidDate", invoices: []gstr2b.Invoice{good, badDate}, wantErr: voucher.ErrInvalidDate, wantIndex: 1, wantNum: "BAD-DATE"},
		{name: "EmptyDate", invoices: []gstr2b.Invoice{func() gstr2b.Invoice { i := good; i.Date = ""; return i }()}, wantErr: voucher.ErrInvalidDate, wantIndex: 0, wantNum: "OK"},
		{name: "MissingSupplier", invoices: []gstr2b.Invoice{good, good, noSupplier}, wantErr: gstr2b.ErrMissingSupplier, wantIndex: 2, wantNum: "NO-SUP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs, err := voucher.Build(tt.invoices)
			require.Error(t, err)
			assert.Nil(t, vs)
			assert.ErrorIs(t, err, tt.wantErr)

			var invErr *gstr2b.InvoiceError
			require.ErrorAs(t, err, &invErr)
			assert.Equal(t, tt.wantIndex, invErr.Index)
			assert.Equal(t, tt.wantNum, invErr.InvoiceNumber)
		})
	}
}

func TestBuild_UnpaddedDate(t *testing.T) {
	inv := invoice("D-1", amounts{taxable: "100", igst: "18", total: "118"})
	inv.Date = "5-9-2024"

	v := buildOne(t, inv)
	assert.Equal(t, time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC), v.Date)
}

func TestBuild_Empty(t *testing.T) {
	vs, err := voucher.Build(nil)
	require.NoError(t, err)
	assert.Empty(t, vs)
}
