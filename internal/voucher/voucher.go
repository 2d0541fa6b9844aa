package voucher

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypePurchase   = "Purchase"
	BillTypeNewRef = "New Ref"
)

// BillAllocation links a party line to the invoice it settles.
type BillAllocation struct {
	Name   string
	Type   string
	Amount decimal.Decimal
}

// Line is one ledger entry. Credits are positive, debits negative.
type Line struct {
	Ledger         string
	Amount         decimal.Decimal
	DeemedPositive bool
	Bill           *BillAllocation
}

// Voucher books one purchase invoice.
type Voucher struct {
	Type        string
	Date        time.Time
	Reference   string
	Number      string
	PartyLedger string
	Lines       []Line
}

// Balance is the signed sum of the voucher's lines; zero for a balanced voucher.
func (v Voucher) Balance() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range v.Lines {
		sum = sum.Add(l.Amount)
	}

	return sum
}
