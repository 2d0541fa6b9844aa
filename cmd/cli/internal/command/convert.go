package command

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/gst2tally/internal/config"
	"github.com/MrJamesThe3rd/gst2tally/internal/convert"
	"github.com/MrJamesThe3rd/gst2tally/internal/export"
)

func newConvertCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [gstr2b-file]",
		Short: "Convert a GSTR-2B JSON file",
		Long: `Convert a GSTR-2B JSON file into Tally ledger masters and purchase vouchers.

Without a file argument the single .json file in the current directory is used.`,
		Example: `  # Convert into the current directory
  gst2tally convert returns_092024.json --company "Acme Traders"

  # Write outputs elsewhere and print the cleaned invoices
  gst2tally convert returns_092024.json -c "Acme Traders" -o ./tally --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, cfg, args)
		},
	}

	cmd.Flags().StringP("company", "c", "", "Tally company name (default from DEFAULT_COMPANY)")
	cmd.Flags().StringP("out", "o", cfg.Convert.OutputDir, "Output directory")
	cmd.Flags().Bool("json", false, "Print the cleaned invoices as JSON")

	return cmd
}

func runConvert(cmd *cobra.Command, cfg *config.Config, args []string) error {
	company, _ := cmd.Flags().GetString("company")
	outDir, _ := cmd.Flags().GetString("out")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	path, err := inputPath(args)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening filing: %w", err)
	}
	defer f.Close()

	svc := convert.NewService(cfg.Convert.DefaultCompany)

	res, err := svc.Convert(f, company)
	if err != nil {
		return err
	}

	w, err := export.NewDirWriter(outDir)
	if err != nil {
		return err
	}

	if err := svc.Save(res, w); err != nil {
		return err
	}

	for _, name := range res.Unplanned {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ledger %q is used by vouchers but missing from masters\n", name)
	}

	out := cmd.OutOrStdout()

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(res.Invoices)
	}

	fmt.Fprintf(out, "Converted %d invoices for %s\n", len(res.Invoices), res.Company)

	for i, name := range []string{convert.FileInvoices, convert.FileMasters, convert.FileVouchers, convert.FileSheet} {
		fmt.Fprintf(out, "%d. %s\n", i+1, w.Path(name))
	}

	return nil
}

// inputPath returns args[0], or the only .json file in the working directory
// other than a previous run's cleaned invoices.
func inputPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	found, err := filepath.Glob("*.json")
	if err != nil {
		return "", err
	}

	var matches []string

	for _, m := range found {
		if m != convert.FileInvoices {
			matches = append(matches, m)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no .json files found in the current directory")
	case 1:
		return matches[0], nil
	}

	return "", fmt.Errorf("several .json files found, pass one of: %s", strings.Join(matches, ", "))
}
