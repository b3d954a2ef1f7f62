// Package main provides the CLI entrypoint for ldif2vcard.
//
// ldif2vcard converts Thunderbird LDIF address-book exports into vCard 3.0
// cards suitable for iCloud:
//   - Combines multi-line street addresses into ADR properties
//   - Writes contacts' ringtones as X-ACTIVITY-ALERT properties
//   - Skips mailing-list (groupOfNames) entries
//   - Reports LDIF attributes it has no mapping for
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ldif2vcard/internal/apperr"
	"ldif2vcard/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and maps its error to an exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}

	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	fmt.Fprintln(stderr, err)

	if _, ok := apperr.As(err); ok {
		return apperr.ExitCode
	}

	return 1
}

type options struct {
	configPath string
	output     string
	ringtone   string
	verbose    bool
	uid        bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "ldif2vcard [flags] FILE...",
		Short: "Convert Thunderbird LDIF to vCard 3.0 for iCloud",
		Long: `Convert Thunderbird LDIF address books to vCard 3.0 suitable for iCloud.

Use "-" as FILE to read from standard input. Cards are written to standard
output unless --output is given. Diagnostics go to standard error.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return apperr.New("at least one input file is required")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			return convertFiles(cfg, args, stdin, stdout, stderr)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.Stdio, "Output file")
	cmd.Flags().StringVarP(&opts.ringtone, "ringtone", "r", "",
		"Use this ringtone for contacts that don't explicitly specify one")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug info to stderr")
	cmd.Flags().BoolVar(&opts.uid, "uid", false, "Add a UID derived from each entry's DN")

	return cmd
}

// resolveConfig loads the config file, if any, and applies the flags the
// user set explicitly on top of it.
func resolveConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, apperr.Wrap(err, "cannot load config")
		}

		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}

	if flags.Changed("ringtone") {
		cfg.Ringtone = opts.ringtone
	}

	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	if flags.Changed("uid") {
		cfg.UID = opts.uid
	}

	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
