package export

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/gst2tally/internal/gstr2b"
)

// SheetName is the worksheet holding the invoice register.
const SheetName = "Invoices"

// numFmtAmount is the built-in "#,##0.00" format.
const numFmtAmount = 4

var sheetHeader = []any{
	"Supplier", "GSTIN", "Date", "Invoice Number", "Return Period",
	"Taxable Value", "IGST", "CGST", "SGST", "Total Invoice Value",
}

// InvoiceSheet renders invoices as an XLSX register, one row per invoice in
// order, followed by a totals row.
func InvoiceSheet(invoices []gstr2b.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &sheetHeader); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	totals := make([]decimal.Decimal, 5)

	for i, inv := range invoices {
		amounts := []decimal.Decimal{inv.TaxableValue, inv.IGST, inv.CGST, inv.SGST, inv.TotalValue}

		row := []any{
			deref(inv.SupplierName), deref(inv.SupplierGSTIN),
			inv.Date, inv.InvoiceNumber, inv.ReturnPeriod,
		}

		for j, a := range amounts {
			row = append(row, a.InexactFloat64())
			totals[j] = totals[j].Add(a)
		}

		if err := setRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	totalRow := []any{"Total", "", "", "", ""}
	for _, t := range totals {
		totalRow = append(totalRow, t.InexactFloat64())
	}

	last := len(invoices) + 2
	if err := setRow(f, last, totalRow); err != nil {
		return nil, err
	}

	if err := style(f, last); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}

	return nil
}

func style(f *excelize.File, last int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	amount, err := f.NewStyle(&excelize.Style{NumFmt: numFmtAmount})
	if err != nil {
		return fmt.Errorf("creating amount style: %w", err)
	}

	boldAmount, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: numFmtAmount})
	if err != nil {
		return fmt.Errorf("creating totals style: %w", err)
	}

	row := strconv.Itoa(last)

	for _, s := range []struct {
		from, to string
		id       int
	}{
		{"A1", "J1", bold},
		{"F2", "J" + row, amount},
		{"A" + row, "E" + row, bold},
		{"F" + row, "J" + row, boldAmount},
	} {
		if err := f.SetCellStyle(SheetName, s.from, s.to, s.id); err != nil {
			return fmt.Errorf("styling %s:%s: %w", s.from, s.to, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 32); err != nil {
		return err
	}

	return f.SetColWidth(SheetName, "B", "J", 18)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
