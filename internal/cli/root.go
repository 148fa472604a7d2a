package cli

import (
	"github.com/spf13/cobra"

	"github.com/itsjohncs/addlink/internal/config"
	"github.com/itsjohncs/addlink/internal/insert"
	"github.com/itsjohncs/addlink/internal/version"
)

func Execute() error {
	return newRootCommand().Execute()
}

type rootOptions struct {
	configPath string
	mode       string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:           "addlink [flags] <source> <destination>",
		Short:         "Copy a README, adding a link to its formatted version after the third line",
		Version:       version.String(),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddLink(cmd, opts, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "settings file to load instead of the built-in defaults")
	flags.StringVar(&opts.mode, "mode", "", "copy mode, stream or buffered (overrides the settings file)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print a summary after writing")

	return cmd
}

func runAddLink(cmd *cobra.Command, opts rootOptions, src, dst string) error {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}

	mode, err := cfg.InsertMode()
	if err != nil {
		return err
	}
	if opts.mode != "" {
		if mode, err = insert.ParseMode(opts.mode); err != nil {
			return err
		}
	}

	res, err := insert.CopyFile(src, dst, mode, cfg.Options())
	if err != nil {
		return err
	}

	if opts.verbose {
		printSummary(cmd.OutOrStdout(), dst, cfg, res)
	}
	return nil
}
