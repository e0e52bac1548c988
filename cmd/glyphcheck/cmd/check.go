package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [character]",
	Short: "Check the configured fonts for a character",
	Long: `Check whether each configured font maps the character to a glyph.

Only the first code point of the argument is used unless --strict is set,
in which case longer input is rejected.

Example:
  glyphcheck check 手
  glyphcheck check 手 --font fonts/OeasyOracle.ttf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
