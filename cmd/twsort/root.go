package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/grindlemire/twsort/internal/config"
	"github.com/grindlemire/twsort/internal/log"
	"github.com/grindlemire/twsort/internal/report"
	"github.com/grindlemire/twsort/internal/runner"
	"github.com/grindlemire/twsort/internal/walk"
)

// sortFlags holds the flags that are not config keys.
type sortFlags struct {
	write      bool
	dryRun     bool
	check      bool
	stdin      bool
	configFile string
	verbose    bool
	logFile    string
	hidden     bool
	noIgnore   bool
}

// mode returns the write mode selected by the flags.
func (f *sortFlags) mode() runner.Mode {
	switch {
	case f.write:
		return runner.ModeWrite
	case f.dryRun:
		return runner.ModeDryRun
	case f.check:
		return runner.ModeCheck
	default:
		return runner.ModeConsole
	}
}

func newRootCmd() *cobra.Command {
	var flags sortFlags

	cmd := &cobra.Command{
		Use:   "twsort [flags] [path...]",
		Short: "Sort Tailwind CSS classes into canonical order",
		Long: `twsort finds class and className attributes in any text file and rewrites
their classes into the canonical Tailwind order. Classes it does not know are
kept, after the known ones, in their original order.

Paths may be files, directories (walked recursively) or ./... patterns.
Without --write the sorted content is printed to the console.`,
		Example: `  twsort --dry-run ./...
  twsort --write ./src
  twsort --check-formatted .
  cat index.html | twsort --stdin`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, &flags, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.write, "write", false, "rewrite files in place")
	f.BoolVar(&flags.dryRun, "dry-run", false, "list files that would change")
	f.BoolVar(&flags.check, "check-formatted", false, "exit non-zero if any file is not sorted")
	f.BoolVar(&flags.stdin, "stdin", false, "sort content read from stdin and print it")
	addSorterFlags(f, &flags.configFile)
	f.StringSlice("ignored-files", nil, "gitignore-style patterns of files to skip (repeatable)")
	f.Int("workers", 0, "number of files processed at once (default: number of CPUs)")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose logging")
	f.StringVar(&flags.logFile, "log-file", "", "write logs to a file instead of stderr")
	f.BoolVar(&flags.hidden, "hidden", false, "include hidden files and directories")
	f.BoolVar(&flags.noIgnore, "no-gitignore", false, "do not read .gitignore files")
	cmd.MarkFlagsMutuallyExclusive("write", "dry-run", "check-formatted", "stdin")

	cmd.AddCommand(newTableCmd(), newLSPCmd(), newVersionCmd())
	return cmd
}

// addSorterFlags adds the flags that select how classes are sorted.
func addSorterFlags(f *pflag.FlagSet, configFile *string) {
	f.Bool("allow-duplicates", false, "keep duplicate classes")
	f.String("custom-regex", "", "regex matching class lists; the first participating group holds the classes")
	f.String("order-file", "", "YAML file with the class order to use instead of the built-in one")
	f.Bool("warn-unknown", false, "report classes that are not in the class order, with suggestions")
	f.StringVar(configFile, "config", "", "config file (default: ./"+config.DefaultFile+" if present)")
}

// loadConfig merges flags, environment and the config file.
func loadConfig(f *pflag.FlagSet, configFile string) (*config.Config, error) {
	v := config.New()
	if err := config.BindFlags(v, f); err != nil {
		return nil, err
	}
	if err := config.ReadFile(v, configFile); err != nil {
		return nil, err
	}
	return config.Load(v)
}

// runSort implements the root command.
func runSort(cmd *cobra.Command, flags *sortFlags, paths []string) error {
	cfg, err := loadConfig(cmd.Flags(), flags.configFile)
	if err != nil {
		return err
	}

	logOpts := log.Options{Verbose: flags.verbose, File: flags.logFile}
	if flags.logFile == "" {
		logOpts.Output = cmd.ErrOrStderr()
	}
	logger, closeLog, err := log.New(logOpts)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := cfg.Sorter()
	if err != nil {
		return err
	}

	if flags.stdin {
		if len(paths) > 0 {
			return errors.New("paths cannot be combined with --stdin")
		}
		return sortStdin(cmd.InOrStdin(), cmd.OutOrStdout(), s.Sort)
	}

	// Default to current directory if no paths specified
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := walk.Collect(paths, walk.Options{
		Ignored:     cfg.IgnoredFiles,
		NoGitignore: flags.noIgnore,
		Hidden:      flags.hidden,
	})
	if err != nil {
		return err
	}
	logger.Debug("collected files", zap.Int("count", len(files)))

	mode := flags.mode()
	r := runner.New(s, logger, runner.Options{
		Mode:        mode,
		Workers:     cfg.Workers,
		WarnUnknown: cfg.WarnUnknown,
	})

	// Report what was done before an interrupt, then fail with it.
	results, runErr := r.Run(cmd.Context(), files)
	sum := runner.Print(report.New(cmd.OutOrStdout()), mode, results)
	if runErr != nil {
		return fmt.Errorf("sorting interrupted: %w", runErr)
	}
	return runner.Check(mode, sum)
}

// sortStdin sorts everything read from r and writes it to w.
func sortStdin(r io.Reader, w io.Writer, sort func(string) string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if _, err := io.WriteString(w, sort(string(data))); err != nil {
		return fmt.Errorf("writing stdout: %w", err)
	}
	return nil
}
