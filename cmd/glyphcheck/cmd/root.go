// Package cmd contains all CLI commands for glyphcheck.
package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/glyphcheck/internal/checker"
	"github.com/f3rmion/glyphcheck/internal/config"
	"github.com/f3rmion/glyphcheck/internal/pinyin"
	"github.com/f3rmion/glyphcheck/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "glyphcheck [character]",
	Short: "Check whether fonts contain a character",
	Long: `glyphcheck looks a character up in the character map (cmap) of each
configured font file and reports, per font, whether a glyph exists for it.

Fonts are checked in order. Missing files and fonts that cannot be parsed are
reported and skipped; the run always ends with a summary of the fonts that
contain the character.

Running 'glyphcheck' without a character checks the configured one (手 by default).

Example:
  glyphcheck
  glyphcheck 口
  glyphcheck 口 --font fonts/OeasyOracle.ttf --font /usr/share/fonts/foo.ttc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./glyphcheck.yaml or $HOME/.config/glyphcheck/glyphcheck.yaml)")
	pf.Bool("verbose", false, "verbose output")
	pf.StringArray("font", nil, "font file to check, repeatable (replaces the configured list)")
	pf.String("font-dir", "", "directory relative font names are resolved against")
	pf.Int("face-index", 0, "face to use inside font collections (.ttc/.otc)")
	pf.Bool("strict", false, "require the character argument to be exactly one code point")

	viper.BindPFlag("verbose", pf.Lookup("verbose"))
	viper.BindPFlag("fonts", pf.Lookup("font"))
	viper.BindPFlag("font_dir", pf.Lookup("font-dir"))
	viper.BindPFlag("face_index", pf.Lookup("face-index"))
	viper.BindPFlag("strict", pf.Lookup("strict"))
}

// initConfig locates the config file and enables ENV overrides.
func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.Find()
	}
	viper.Set("config_file", path)

	viper.SetEnvPrefix("GLYPHCHECK")
	viper.AutomaticEnv()
}

func verbose() bool {
	return viper.GetBool("verbose")
}

func verbosef(format string, args ...any) {
	if verbose() {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// loadConfig builds the effective configuration: defaults, then the config
// file, then ENV and flags, then the character argument.
func loadConfig(args []string) (*config.Config, error) {
	cfg := config.Default()

	if path := viper.GetString("config_file"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		verbosef("using config file %s", path)
	}

	if viper.IsSet("character") {
		cfg.Character = viper.GetString("character")
	}
	if viper.IsSet("fonts") {
		// Fonts given on the command line are used as-is unless --font-dir is set too.
		cfg.Fonts = viper.GetStringSlice("fonts")
		cfg.FontDir = ""
	}
	if viper.IsSet("font_dir") {
		cfg.FontDir = viper.GetString("font_dir")
	}
	if viper.IsSet("face_index") {
		cfg.FaceIndex = viper.GetInt("face_index")
	}
	if viper.IsSet("strict") {
		cfg.Strict = viper.GetBool("strict")
	}
	if len(args) > 0 {
		cfg.Character = args[0]
	}

	return cfg, nil
}

// newChecker creates a checker wired to cfg and the verbose flag.
func newChecker(cmd *cobra.Command, cfg *config.Config, r checker.Reporter) *checker.Checker {
	c := checker.New(r)
	c.FaceIndex = cfg.FaceIndex
	if verbose() {
		c.Verbose = cmd.ErrOrStderr()
	}
	return c
}

// runCheck checks the character against every configured font.
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	target, err := cfg.Target()
	if err != nil {
		return fmt.Errorf("invalid character: %w", err)
	}
	if target.Input != target.String() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: only the first character of %q is checked\n", target.Input)
	}

	fonts := cfg.FontPaths()
	verbosef("fonts: %v", fonts)

	printer := report.NewPrinter(cmd.OutOrStdout()).WithPinyin(pinyin.NewParser())
	newChecker(cmd, cfg, printer).Run(checker.Plan{
		Target:     target,
		Fonts:      fonts,
		Suggestion: cfg.Suggestion,
	})

	// Outcomes never change the exit status.
	return nil
}
