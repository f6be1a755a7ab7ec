package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/choenig/ASN-Label-Generator/internal/export"
	"github.com/choenig/ASN-Label-Generator/internal/models"
	"github.com/choenig/ASN-Label-Generator/internal/pdf"
	"github.com/choenig/ASN-Label-Generator/internal/rangespec"
	"github.com/choenig/ASN-Label-Generator/internal/sheet"
	"github.com/choenig/ASN-Label-Generator/internal/values"

	"github.com/spf13/cobra"
)

var (
	pdfOutput string
	csvOutput string

	// Build information (injected by GoReleaser)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const cfgHelp = `Each <cfg> has the format <year>:<first>:<last>.
<year> can be omitted, default year is '0'. <first> is the starting ASN
and can be omitted, default start is '1'. <last> is the last ASN to
generate. It can either be an integer or a value starting with 'x' like
'x3' which means to generate 3 blocks of 16 labels. If omitted, a full
sheet of labels is generated.`

func main() {
	rootCmd := &cobra.Command{
		Use:   "asn-label-generator",
		Short: "Generate asset serial number labels",
		Long:  "A tool for generating sequentially numbered ASN labels with QR codes, laid out on Avery 4732 label sheets.",
	}

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate <cfg>...",
		Short: "Generate a PDF of ASN labels",
		Long:  "Generate a PDF with one QR-coded label per serial number.\n\n" + cfgHelp,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVar(&pdfOutput, "output", "output.pdf", "name of the PDF to generate")
	rootCmd.AddCommand(generateCmd)

	// CSV command
	csvCmd := &cobra.Command{
		Use:   "csv <cfg>...",
		Short: "Write the label data as CSV instead of a PDF",
		Long:  "Write one CSV row per label cell, in the reading order of the printed sheets.\n\n" + cfgHelp,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCSV,
	}
	csvCmd.Flags().StringVar(&csvOutput, "output", "", "name of the CSV file to write (default stdout)")
	rootCmd.AddCommand(csvCmd)

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("asn-label-generator version %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built at: %s\n", date)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tpl := sheet.Avery4732()

	items, err := expandSpecs(args, tpl)
	if err != nil {
		return err
	}

	output := pdfOutput
	if !strings.HasSuffix(output, ".pdf") {
		output += ".pdf"
	}

	renderer := pdf.NewRenderer(tpl, values.DefaultPalette())
	if err := renderer.WriteFile(output, items); err != nil {
		return err
	}

	fmt.Printf("Generated %d label(s) on %d page(s): %s\n", len(items), tpl.Pages(len(items)), output)
	return nil
}

func runCSV(cmd *cobra.Command, args []string) error {
	tpl := sheet.Avery4732()

	items, err := expandSpecs(args, tpl)
	if err != nil {
		return err
	}

	out := os.Stdout
	if csvOutput != "" {
		f, err := os.Create(csvOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return export.WriteCSV(out, items, tpl, values.DefaultPalette())
}

// expandSpecs parses each range spec and concatenates the expansions in
// the order given. A spec with the wrong field count is reported and
// contributes no labels; any other parse error is fatal.
func expandSpecs(specs []string, tpl sheet.Template) ([]models.Item, error) {
	var items []models.Item
	for _, spec := range specs {
		r, err := rangespec.Parse(spec, tpl.Rows, tpl.Cols)
		if errors.Is(err, rangespec.ErrInvalidFormat) {
			fmt.Fprintf(os.Stderr, "Error: invalid config: %s\n", spec)
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, r.Items()...)
	}
	return items, nil
}
