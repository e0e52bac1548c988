package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/glyphcheck/internal/config"
	"github.com/f3rmion/glyphcheck/internal/report"
	"github.com/spf13/cobra"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage [characters...]",
	Short: "Check a list of characters against every font",
	Long: `Check a whole character list against each configured font and show
which characters every font is missing.

Without arguments the 'characters' list from the config file is used.
Duplicate characters, spaces and commas are ignored.

Example:
  glyphcheck coverage
  glyphcheck coverage 手口木 --json coverage.json`,
	RunE: runCoverage,
}

func init() {
	rootCmd.AddCommand(coverageCmd)
	coverageCmd.Flags().String("json", "", "also write the result to this JSON file")
}

func runCoverage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}

	input := cfg.Characters
	if len(args) > 0 {
		input = strings.Join(args, "")
	}
	chars := config.ParseCharacters(input)
	if len(chars) == 0 {
		return fmt.Errorf("no characters to check")
	}

	fonts := cfg.FontPaths()
	verbosef("fonts: %v", fonts)

	cov := newChecker(cmd, cfg, nil).Coverage(chars, fonts)
	cov.Categories = cfg.CategoryRunes()
	report.NewPrinter(cmd.OutOrStdout()).Coverage(cov)

	if path, _ := cmd.Flags().GetString("json"); path != "" {
		if err := report.WriteCoverageFile(path, cov); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nResult saved to %s\n", path)
	}

	return nil
}
