package gstr2b

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// NoReturnPeriod is used when the filing does not state its return period.
const NoReturnPeriod = "N/A"

// Filing is the subset of a GSTR-2B statement the converter reads.
type Filing struct {
	Data *FilingData `json:"data"`
}

type FilingData struct {
	ReturnPeriod *string  `json:"rtnprd"`
	DocData      *DocData `json:"docdata"`
}

type DocData struct {
	B2B []Supplier `json:"b2b"`
}

// Supplier groups the B2B invoices received from one counterparty.
type Supplier struct {
	TradeName *string      `json:"trdnm"`
	GSTIN     *string      `json:"ctin"`
	Invoices  []RawInvoice `json:"inv"`
}

// RawInvoice is an invoice as it appears in the filing. Amounts accept JSON
// numbers and numeric strings; absent or null amounts decode as zero. The
// date and invoice number accept strings or bare numbers.
type RawInvoice struct {
	Date          Text            `json:"dt"`
	InvoiceNumber Text            `json:"inum"`
	TaxableValue  decimal.Decimal `json:"txval"`
	IGST          decimal.Decimal `json:"igst"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	TotalValue    decimal.Decimal `json:"val"`
}

func (f *Filing) returnPeriod() string {
	if f.Data == nil || f.Data.ReturnPeriod == nil {
		return NoReturnPeriod
	}

	return *f.Data.ReturnPeriod
}

func (f *Filing) suppliers() []Supplier {
	if f.Data == nil || f.Data.DocData == nil {
		return nil
	}

	return f.Data.DocData.B2B
}

// Text is a filing field that is usually a string but may be written as a
// number. Numbers keep their literal text; null decodes as empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*t = Text(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("text field: %w", err)
	}

	*t = Text(n)

	return nil
}
