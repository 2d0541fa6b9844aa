// Package convert runs a GSTR-2B filing through extraction, ledger planning
// and voucher building, and renders the Tally import documents.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/gst2tally/internal/export"
	"github.com/MrJamesThe3rd/gst2tally/internal/gstr2b"
	"github.com/MrJamesThe3rd/gst2tally/internal/ledger"
	"github.com/MrJamesThe3rd/gst2tally/internal/tally"
	"github.com/MrJamesThe3rd/gst2tally/internal/voucher"
)

// Output file names.
const (
	FileInvoices = "cleaned_invoices.json"
	FileMasters  = "masters_import.xml"
	FileVouchers = "vouchers_import.xml"
	FileSheet    = "cleaned_invoices.xlsx"
)

//go:generate mockgen -source=service.go -destination=writer_mock.go -package=convert
type Writer interface {
	WriteFile(name string, data []byte) error
}

// Result is one conversion. Unplanned lists ledgers the vouchers reference
// that the masters document does not create.
type Result struct {
	ID          uuid.UUID
	Company     string
	Invoices    []gstr2b.Invoice
	Ledgers     *ledger.Set
	Vouchers    []voucher.Voucher
	MastersXML  []byte
	VouchersXML []byte
	Unplanned   []string
}

type Service struct {
	defaultCompany string
}

func NewService(defaultCompany string) *Service {
	return &Service{defaultCompany: defaultCompany}
}

// Convert reads a filing from r and converts it for company. A blank company
// falls back to the service default. Any failure aborts the conversion.
func (s *Service) Convert(r io.Reader, company string) (*Result, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		company = s.defaultCompany
	}

	invoices, err := gstr2b.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading filing: %w", err)
	}

	ledgers, err := ledger.Plan(invoices)
	if err != nil {
		return nil, fmt.Errorf("planning ledgers: %w", err)
	}

	vouchers, err := voucher.Build(invoices)
	if err != nil {
		return nil, fmt.Errorf("building vouchers: %w", err)
	}

	masters, err := tally.Masters(company, ledgers)
	if err != nil {
		return nil, fmt.Errorf("rendering masters: %w", err)
	}

	vouchersXML, err := tally.Vouchers(company, vouchers)
	if err != nil {
		return nil, fmt.Errorf("rendering vouchers: %w", err)
	}

	res := &Result{
		ID:          uuid.New(),
		Company:     company,
		Invoices:    invoices,
		Ledgers:     ledgers,
		Vouchers:    vouchers,
		MastersXML:  masters,
		VouchersXML: vouchersXML,
		Unplanned:   unplanned(ledgers, vouchers),
	}

	s.audit(res)

	return res, nil
}

// Save writes the cleaned invoices, both import documents and the invoice
// sheet through w.
func (s *Service) Save(res *Result, w Writer) error {
	cleaned, err := json.MarshalIndent(res.Invoices, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding invoices: %w", err)
	}

	sheet, err := export.InvoiceSheet(res.Invoices)
	if err != nil {
		return fmt.Errorf("building invoice sheet: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{FileInvoices, cleaned},
		{FileMasters, res.MastersXML},
		{FileVouchers, res.VouchersXML},
		{FileSheet, sheet},
	}

	for _, f := range files {
		if err := w.WriteFile(f.name, f.data); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
	}

	return nil
}

// IsInputError reports whether err was caused by the uploaded filing rather
// than by the service.
func IsInputError(err error) bool {
	var invErr *gstr2b.InvoiceError

	return errors.Is(err, gstr2b.ErrMalformedFiling) ||
		errors.Is(err, gstr2b.ErrMissingSupplier) ||
		errors.Is(err, voucher.ErrInvalidDate) ||
		errors.As(err, &invErr)
}

func (s *Service) audit(res *Result) {
	slog.Info("converted filing",
		"id", res.ID,
		"company", res.Company,
		"invoices", len(res.Invoices),
		"ledgers", res.Ledgers.Len(),
		"vouchers", len(res.Vouchers),
	)

	for _, name := range res.Unplanned {
		slog.Warn("voucher references a ledger missing from masters", "id", res.ID, "ledger", name)
	}

	for _, v := range res.Vouchers {
		if b := v.Balance(); !b.IsZero() {
			slog.Warn("voucher does not balance", "id", res.ID, "voucher", v.Number, "balance", b.StringFixed(2))
		}
	}
}

func unplanned(set *ledger.Set, vouchers []voucher.Voucher) []string {
	var (
		missing []string
		seen    = make(map[string]struct{})
	)

	for _, v := range vouchers {
		for _, l := range v.Lines {
			if set.Has(l.Ledger) {
				continue
			}

			if _, ok := seen[l.Ledger]; ok {
				continue
			}

			seen[l.Ledger] = struct{}{}
			missing = append(missing, l.Ledger)
		}
	}

	return missing
}
