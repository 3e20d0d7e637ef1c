package root

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Paintersrp/minigrep/internal/config"
	"github.com/Paintersrp/minigrep/internal/constants"
	"github.com/Paintersrp/minigrep/internal/document"
	"github.com/Paintersrp/minigrep/internal/logging"
	"github.com/Paintersrp/minigrep/internal/pathutil"
	"github.com/Paintersrp/minigrep/internal/printer"
	"github.com/Paintersrp/minigrep/internal/search"
)

type options struct {
	configPath string
	noColor    bool
	copy       bool
}

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func NewCmdRoot(v *viper.Viper, out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   constants.AppName + " <query> <filename> [-s]",
		Short: "Print the lines of a file that contain a query",
		Long: heredoc.Doc(`
			Search a file for a query and print every line that contains it, with the
			matched text highlighted. Matching ignores case unless -s is given.

			The highlight color comes from --color, MINIGREP_COLOR or the config file,
			in that order, and defaults to red.
		`),
		Example: heredoc.Doc(`
			minigrep duct poem.txt
			minigrep Rust poem.txt -s
			MINIGREP_COLOR=cyan minigrep -n three poem.txt
		`),
		Version:       constants.Version,
		Args:          usageArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, out, opts, args[0], args[1])
		},
	}

	cmd.SetUsageTemplate(constants.Usage)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{msg: err.Error()}
	})

	cmd.Flags().BoolP("case-sensitive", "s", false, "match the query's letter case exactly")
	cmd.Flags().BoolP("line-number", "n", false, "prefix each line with its line number")
	cmd.Flags().String("color", "", "highlight color ("+strings.Join(config.ColorNames(), ", ")+")")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable highlighting")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the matching lines to the clipboard")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.minigrep/cfg.yaml)")

	v.BindPFlag(config.KeyCaseSensitive, cmd.Flags().Lookup("case-sensitive"))
	v.BindPFlag(config.KeyLineNumbers, cmd.Flags().Lookup("line-number"))
	v.BindPFlag(config.KeyColor, cmd.Flags().Lookup("color"))

	return cmd
}

func usageArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) < 2:
		return &UsageError{msg: "not enough arguments: expected <query> <filename>"}
	case len(args) > 2:
		return &UsageError{msg: fmt.Sprintf("unexpected argument %q", args[2])}
	}
	return nil
}

func run(cmd *cobra.Command, v *viper.Viper, out io.Writer, opts options, query, filename string) error {
	configPath, err := resolveConfigPath(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	file, err := config.Load(configPath)
	if err != nil {
		return err
	}
	config.Bind(v, file)

	resolved, fellBack := config.Resolve(v)
	if fellBack {
		logging.L().Warnw("unknown highlight color, using default",
			"color", v.GetString(config.KeyColor),
			"default", config.DefaultColor,
		)
	}

	contents, err := document.Load(filename)
	if err != nil {
		return err
	}

	matches := search.Matches(query, contents, resolved.CaseSensitive)
	logging.L().Debugw("search finished",
		"file", filename,
		"case_sensitive", resolved.CaseSensitive,
		"matches", len(matches),
	)

	p := printer.New(out, printer.Options{
		Color:       resolved.Color,
		Profile:     colorProfile(out, opts.noColor, cmd.Flags().Changed("color")),
		LineNumbers: resolved.LineNumbers,
	})
	if err := p.Print(matches); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if opts.copy {
		lines := make([]string, len(matches))
		for i, m := range matches {
			lines[i] = m.Line
		}
		if err := copyToClipboard(strings.Join(lines, "\n")); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	return nil
}

func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return pathutil.ExpandHome(flagValue)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	return config.GetConfigPath(home), nil
}

// colorProfile picks ANSI output for terminals or when a color was requested
// explicitly, and plain text otherwise. NO_COLOR and --no-color always win.
func colorProfile(out io.Writer, noColor, forced bool) termenv.Profile {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if forced {
		return termenv.ANSI
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.ANSI
	}
	return termenv.Ascii
}

// normalizeArgs accepts the short case flag in either letter case.
func normalizeArgs(args []string) []string {
	normalized := make([]string, len(args))
	for i, arg := range args {
		if arg == "--" {
			copy(normalized[i:], args[i:])
			break
		}
		if strings.EqualFold(arg, "-s") {
			arg = "-s"
		}
		normalized[i] = arg
	}
	return normalized
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewCmdRoot(viper.New(), stdout)
	cmd.SetArgs(normalizeArgs(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "Problem parsing arguments: %v\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
	} else {
		logging.L().Errorw("search failed", "error", err)
		fmt.Fprintf(stderr, "Application error: %v\n", err)
	}
	return ExitCode(err)
}
