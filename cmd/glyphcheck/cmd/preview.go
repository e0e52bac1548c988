package cmd

import (
	"fmt"

	"github.com/f3rmion/glyphcheck/internal/checker"
	"github.com/f3rmion/glyphcheck/internal/fontfile"
	"github.com/f3rmion/glyphcheck/internal/glyph"
	"github.com/f3rmion/glyphcheck/internal/report"
	"github.com/f3rmion/glyphcheck/internal/tui/bigchar"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [character]",
	Short: "Draw the character from every font that contains it",
	Long: `Check each configured font and, for fonts that contain the character,
draw its glyph as block art so the shapes can be compared side by side.

Example:
  glyphcheck preview 手 --cols 40 --rows 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Int("cols", 32, "preview width in terminal cells")
	previewCmd.Flags().Int("rows", 16, "preview height in terminal cells")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	target, err := cfg.Target()
	if err != nil {
		return fmt.Errorf("invalid character: %w", err)
	}

	cols, _ := cmd.Flags().GetInt("cols")
	rows, _ := cmd.Flags().GetInt("rows")
	out := cmd.OutOrStdout()

	printer := report.NewPrinter(out)
	c := newChecker(cmd, cfg, printer)
	for _, path := range cfg.FontPaths() {
		if !checker.FileExists(path) {
			printer.Result(glyph.Result{Path: path, Target: target, Outcome: glyph.OutcomeMissingFile})
			continue
		}
		if res := c.Check(path, target); res.Found() {
			art, err := renderGlyph(path, cfg.FaceIndex, target.Rune, cols, rows)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not render %s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "%s\n\n", art)
		}
	}

	return nil
}

func renderGlyph(path string, faceIndex int, r rune, cols, rows int) (string, error) {
	f, err := fontfile.Open(path, faceIndex)
	if err != nil {
		return "", err
	}
	defer f.Close()

	rd, err := bigchar.New(f.SFNT())
	if err != nil {
		return "", err
	}
	defer rd.Close()

	return rd.Render(r, cols, rows), nil
}
