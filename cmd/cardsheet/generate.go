package main

import (
	"fmt"
	"os"

	"github.com/hevi0/cardprint/internal/layout"
	"github.com/hevi0/cardprint/internal/sheetcfg"
	"github.com/hevi0/cardprint/pkg/sheet"
	"github.com/spf13/cobra"
)

var (
	generatePrefix string
	generatePPI    string
	generatePaper  string
)

var generateCmd = &cobra.Command{
	Use:   "generate <config-file>",
	Short: "Render card sheet pages from a config file",
	Long: `Renders the cards listed in the config file into pages of nine, saved as
<prefix>NN.png where NN is the page number. The --ppi and --paper flags
override the values in the config file.

The config file is line-oriented; blank lines and # comments are skipped:

  paper size (US | A4)
  ppi (300 | 600 | 1200)
  card background color as "r g b a"
  cut line color as "r g b a"
  rounded corner toggle (0 | 1)
  one card image path per line`,
	Example: `  # Render pages named page01.png, page02.png, ...
  cardsheet generate deck.txt

  # Custom output name and print resolution
  cardsheet generate deck.txt --output-prefix sheets/run --ppi 600`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generatePrefix, "output-prefix", "o", "page",
		"Prefix for output page files")
	generateCmd.Flags().StringVar(&generatePPI, "ppi", "",
		"Override print resolution: 300, 600, or 1200")
	generateCmd.Flags().StringVar(&generatePaper, "paper", "",
		"Override paper size: US or A4")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	configPath := args[0]

	printInfo("Loading %s\n", configPath)
	cfg, err := sheetcfg.Load(configPath)
	if err != nil {
		return err
	}

	// Command-line parameters win over config values.
	if generatePaper != "" {
		if cfg.Paper, err = layout.ParsePaperSize(generatePaper); err != nil {
			return err
		}
	}
	if generatePPI != "" {
		if cfg.PPI, err = layout.ParsePPI(generatePPI); err != nil {
			return err
		}
	}

	printVerbose("Paper: %s, PPI: %d, rounded corners: %v, %d cards\n",
		cfg.Paper, cfg.PPI, cfg.RoundedCorners, len(cfg.Cards))

	opts := &sheet.Options{OutputPrefix: generatePrefix}
	if verbose && !quiet {
		opts.Logf = func(format string, a ...any) {
			fmt.Fprintf(os.Stdout, format+"\n", a...)
		}
	}

	res, err := sheet.Generate(cfg, opts)
	for _, w := range res.Warnings {
		printError("%s\n", w)
	}
	if err != nil {
		return err
	}

	printInfo("Wrote %d pages\n", len(res.Pages))
	if len(res.Warnings) > 0 {
		return fmt.Errorf("completed with %d warnings", len(res.Warnings))
	}
	return nil
}
