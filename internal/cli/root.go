// Package cli defines the droidcat command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/five82/droidcat/internal/app"
	"github.com/five82/droidcat/internal/logging"
	"github.com/five82/droidcat/internal/record"
)

type rootFlags struct {
	configPath   string
	profilesPath string
	profile      string
	highlight    []string
	input        string
	tail         int
	width        int
	verbose      bool
	quiet        bool
}

// NewRootCommand builds the droidcat command tree.
func NewRootCommand() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "droidcat",
		Short: "Render log records for the terminal",
		Long: `droidcat reads newline-delimited JSON log records from stdin (or a file)
and renders them as aligned, colored terminal lines. Tags, process and thread
ids get stable colors, long messages wrap under the message column and logcat
buffer boundaries are marked with a rule.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(f.verbose, f.quiet)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:   f.configPath,
				ProfilesPath: f.profilesPath,
				Profile:      f.profile,
				Highlight:    f.highlight,
				Input:        f.input,
				Tail:         f.tail,
				Width:        f.width,
				Flags:        cmd.Flags(),
				Stdin:        cmd.InOrStdin(),
				Stdout:       cmd.OutOrStdout(),
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "config file (default ~/.config/droidcat/config.toml)")
	pf.StringVar(&f.profilesPath, "profiles", "", "profiles file (default ~/.config/droidcat/profiles.toml)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to stderr")
	pf.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")

	fl := cmd.Flags()
	fl.StringP(app.FlagFormat, "o", record.Human.String(), "output format: human, csv, json, raw")
	fl.BoolP(app.FlagMonochrome, "m", false, "disable colors")
	fl.Bool(app.FlagHideTimestamp, false, "hide the time of day")
	fl.Bool(app.FlagNoDimm, false, "draw secondary text in white instead of gray")
	fl.BoolP(app.FlagShortenTags, "s", false, "strip vowels from tags that do not fit")
	fl.Bool(app.FlagShowDate, false, "prefix timestamps with the date")
	fl.Int(app.FlagTagWidth, 0, "tag column width (default follows the terminal width)")
	fl.BoolP(app.FlagShowTimeDiff, "d", false, "show time since the previous record with the same tag")
	fl.Int(app.FlagTimeDiffWidth, 8, "width of the time diff column")
	fl.StringArrayVarP(&f.highlight, "highlight", "H", nil, "regex to highlight (repeatable, commas are part of the pattern)")
	fl.StringVarP(&f.profile, "profile", "p", "", "profile to apply")
	fl.StringVarP(&f.input, "input", "i", "", "read records from a file instead of stdin")
	fl.IntVar(&f.tail, "tail", 0, "render only the last N records once the input ends")
	fl.IntVar(&f.width, "width", 0, "force the terminal width")

	cmd.AddCommand(newProfilesCommand(&f))
	return cmd
}
