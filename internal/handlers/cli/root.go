package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/cmdalias/internal/core/domain/expansion"
	"github.com/AntonioJCosta/cmdalias/internal/core/ports"
	"github.com/AntonioJCosta/cmdalias/internal/handlers/ui"
	"github.com/AntonioJCosta/cmdalias/internal/logger"
)

type rootOptions struct {
	configPath  string
	init        bool
	checkConfig bool
	list        bool
	dryRun      bool
	logLevel    string
}

// NewRootCommand creates the cmdalias command. Everything after the first
// positional argument belongs to the expanded command, not to cmdalias.
func NewRootCommand(version string, expansionService ports.ExpansionService) *cobra.Command {
	if expansionService == nil {
		panic("expansionService cannot be nil")
	}

	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "cmdalias [flags] [--] <command> [args...]",
		Short: "cmdalias expands nested, per-command aliases.",
		Long: `cmdalias rewrites an invocation of a configured command using its alias
tree, then replaces itself with the expanded command.

Load the shell aliases that route commands through cmdalias with:

  eval "$(cmdalias --init)"`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, opts, expansionService)
		},
	}
	cmd.SetVersionTemplate("CmdAlias {{.Version}}\n")

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file or directory (default $CMDALIAS_CONFIG or ~/.cmdalias).")
	flags.BoolVarP(&opts.init, "init", "i", false, "Print the shell aliases for every configured command.")
	flags.BoolVar(&opts.checkConfig, "check-config", false, "Check the configuration and exit.")
	flags.BoolVarP(&opts.list, "list", "l", false, "List the configured commands and their aliases.")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the expanded command instead of running it.")
	flags.StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level: debug, info, warn or error (default $CMDALIAS_LOG_LEVEL or warn).")
	flags.BoolP("version", "V", false, "Print the version and exit.")

	return cmd
}

func runRootCmd(
	cmd *cobra.Command,
	args []string,
	opts *rootOptions,
	expansionService ports.ExpansionService,
) error {
	if err := logger.Configure(opts.logLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}

	catalog, err := expansionService.LoadCatalog(opts.configPath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch {
	case opts.checkConfig:
		fmt.Fprintln(out, ui.SuccessColor("Syntax OK"))
		return nil
	case opts.init:
		for _, line := range expansionService.ShellAliases(catalog, opts.configPath) {
			fmt.Fprintln(out, line)
		}
		return nil
	case opts.list:
		return renderCatalog(out, catalog, opts.configPath)
	}

	if len(args) == 0 {
		_ = cmd.Usage()
		return expansion.ErrNoCommand
	}

	outcome, err := expansionService.Expand(catalog, args)
	if err != nil {
		return err
	}
	if outcome.Kind == expansion.NotFound {
		return &expansion.NotFoundError{Name: outcome.Command}
	}

	if opts.dryRun {
		fmt.Fprintln(out, formatArgv(outcome.Argv))
		return nil
	}
	return expansionService.Execute(outcome)
}
