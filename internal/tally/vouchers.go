package tally

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gst2tally/internal/voucher"
)

const (
	dateLayout     = "20060102"
	objTypeVoucher = "Voucher"
	viewAccounting = "Accounting Voucher View"
)

type voucherEntry struct {
	VchType         string        `xml:"VCHTYPE,attr"`
	Action          string        `xml:"ACTION,attr"`
	ObjType         string        `xml:"OBJTYPE,attr"`
	Date            string        `xml:"DATE"`
	ReferenceDate   string        `xml:"REFERENCEDATE"`
	VoucherTypeName string        `xml:"VOUCHERTYPENAME"`
	Reference       string        `xml:"REFERENCE"`
	VoucherNumber   string        `xml:"VOUCHERNUMBER"`
	PartyLedgerName string        `xml:"PARTYLEDGERNAME"`
	PersistedView   string        `xml:"PERSISTEDVIEW"`
	Entries         []ledgerEntry `xml:"ALLLEDGERENTRIES.LIST"`
}

type ledgerEntry struct {
	LedgerName     string          `xml:"LEDGERNAME"`
	DeemedPositive yesNo           `xml:"ISDEEMEDPOSITIVE"`
	Amount         string          `xml:"AMOUNT"`
	Bill           *billAllocation `xml:"BILLALLOCATIONS.LIST,omitempty"`
}

type billAllocation struct {
	Name     string `xml:"NAME"`
	BillType string `xml:"BILLTYPE"`
	Amount   string `xml:"AMOUNT"`
}

// Vouchers renders vouchers, in order, as a "Vouchers" import for company.
func Vouchers(company string, vouchers []voucher.Voucher) ([]byte, error) {
	messages := make([]message, 0, len(vouchers))

	for _, v := range vouchers {
		messages = append(messages, message{UDF: udfNamespace, Voucher: toEntry(v)})
	}

	return render(newEnvelope("", reportVouchers, company, messages))
}

func toEntry(v voucher.Voucher) *voucherEntry {
	date := v.Date.Format(dateLayout)

	e := &voucherEntry{
		VchType:         v.Type,
		Action:          actionCreate,
		ObjType:         objTypeVoucher,
		Date:            date,
		ReferenceDate:   date,
		VoucherTypeName: v.Type,
		Reference:       v.Reference,
		VoucherNumber:   v.Number,
		PartyLedgerName: v.PartyLedger,
		PersistedView:   viewAccounting,
		Entries:         make([]ledgerEntry, 0, len(v.Lines)),
	}

	for _, l := range v.Lines {
		le := ledgerEntry{
			LedgerName:     l.Ledger,
			DeemedPositive: yesNo(l.DeemedPositive),
			Amount:         amount(l.Amount),
		}

		if l.Bill != nil {
			le.Bill = &billAllocation{
				Name:     l.Bill.Name,
				BillType: l.Bill.Type,
				Amount:   amount(l.Bill.Amount),
			}
		}

		e.Entries = append(e.Entries, le)
	}

	return e
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
