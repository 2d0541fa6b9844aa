package gstr2b

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Invoice is a normalized purchase invoice, one per filing invoice.
// SupplierName and SupplierGSTIN are nil when the filing omits them.
type Invoice struct {
	SupplierName  *string
	SupplierGSTIN *string
	Date          string
	InvoiceNumber string
	ReturnPeriod  string
	TaxableValue  decimal.Decimal
	IGST          decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	TotalValue    decimal.Decimal
}

// Supplier returns the supplier name and whether the filing provided one.
func (i Invoice) Supplier() (string, bool) {
	if i.SupplierName == nil {
		return "", false
	}

	return *i.SupplierName, true
}

type invoiceJSON struct {
	SupplierName  *string     `json:"supplier_name"`
	SupplierGSTIN *string     `json:"supplier_gstin"`
	Date          string      `json:"date"`
	InvoiceNumber string      `json:"invoice_number"`
	ReturnPeriod  string      `json:"return_period"`
	TaxableValue  json.Number `json:"taxable_value"`
	IGST          json.Number `json:"igst_amount"`
	CGST          json.Number `json:"cgst_amount"`
	SGST          json.Number `json:"sgst_amount"`
	TotalValue    json.Number `json:"total_invoice_value"`
}

// MarshalJSON writes the cleaned-invoice record with amounts as JSON numbers.
func (i Invoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(invoiceJSON{
		SupplierName:  i.SupplierName,
		SupplierGSTIN: i.SupplierGSTIN,
		Date:          i.Date,
		InvoiceNumber: i.InvoiceNumber,
		ReturnPeriod:  i.ReturnPeriod,
		TaxableValue:  json.Number(i.TaxableValue.String()),
		IGST:          json.Number(i.IGST.String()),
		CGST:          json.Number(i.CGST.String()),
		SGST:          json.Number(i.SGST.String()),
		TotalValue:    json.Number(i.TotalValue.String()),
	})
}
