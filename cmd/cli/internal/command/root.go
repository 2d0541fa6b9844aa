// Package command holds the gst2tally cobra commands.
package command

import (
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/gst2tally/internal/config"
)

var version = "1.0.0"

func NewRoot(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "gst2tally",
		Short: "Convert GSTR-2B filings into Tally import files",
		Long: `gst2tally reads a GSTR-2B JSON download from the GST portal and writes
the files needed to book its B2B purchase invoices in Tally:

  cleaned_invoices.json   normalized invoices
  cleaned_invoices.xlsx   invoice register
  masters_import.xml      ledger masters
  vouchers_import.xml     purchase vouchers`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newConvertCommand(cfg))

	return root
}
