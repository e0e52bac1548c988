package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/glyphcheck/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default glyphcheck.yaml",
	Long: `Write the default configuration to glyphcheck.yaml in the current
directory (or the path given with --path).

The file lists the character to check, the font directory, the fonts and the
character list used by 'glyphcheck coverage'. Edit it to match your fonts.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing file")
	initCmd.Flags().String("path", config.FileName, "where to write the config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("path")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Put your font files in the fonts/ directory or edit font_dir")
	fmt.Fprintln(out, "  2. Run 'glyphcheck' to check the configured character")
	fmt.Fprintln(out, "  3. Run 'glyphcheck coverage' to check the whole character list")

	return nil
}
