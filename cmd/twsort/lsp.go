package main

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/twsort/internal/log"
	"github.com/grindlemire/twsort/internal/lsp"
)

func newLSPCmd() *cobra.Command {
	var (
		configFile string
		logPath    string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the language server on stdio (for editor integration)",
		Long: `lsp speaks the Language Server Protocol on stdin and stdout. It sorts class
lists on textDocument/formatting and reports unsorted class lists as
diagnostics. Logs go to stderr unless --log is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			s, err := cfg.Sorter()
			if err != nil {
				return err
			}

			logOpts := log.Options{Verbose: verbose, File: logPath}
			if logPath == "" {
				logOpts.Output = cmd.ErrOrStderr()
			}
			logger, closeLog, err := log.New(logOpts)
			if err != nil {
				return err
			}
			defer closeLog()

			lsp.Version = version
			server := lsp.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), s, logger)
			server.WarnUnknown = cfg.WarnUnknown
			return server.Run(cmd.Context())
		},
	}

	f := cmd.Flags()
	addSorterFlags(f, &configFile)
	f.StringVar(&logPath, "log", "", "path to log file for debugging")
	f.BoolVarP(&verbose, "verbose", "v", false, "log every message")
	return cmd
}
