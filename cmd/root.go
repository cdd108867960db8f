package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mbu09a/Code-Xanadu/internal/config"
	"github.com/mbu09a/Code-Xanadu/internal/library"
	"github.com/mbu09a/Code-Xanadu/internal/logging"
	"github.com/mbu09a/Code-Xanadu/internal/query"
	"github.com/mbu09a/Code-Xanadu/internal/version"
)

// options holds the parsed command-line flags of one invocation.
type options struct {
	cfgFile string
	root    string
	verbose bool
	noColor bool

	section   int
	chapter   string
	character string
	verbs     bool
	modes     bool
	safety    bool
	tools     bool
}

// NewRootCmd builds the xanadu command. Each call returns a fresh command
// with its own flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "xanadu",
		Short: "Xanadu metadata helper",
		Long: `Xanadu is a metadata browser for the Xanadu book. It reads the table of
contents, the page text and the behavior, mode and safety lists from the
source directory and prints one lookup per invocation.

Selectors are honored in a fixed order when more than one is given:
--section, --chapter, --character, --verbs, --modes, --safety, --tools.`,
		Example: `  xanadu --section 3
  xanadu --chapter "Arrival"
  xanadu --character Kaguya
  xanadu --verbs --root ./prompts`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(opts.verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, logger)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.section, "section", 0, "Section number")
	flags.StringVar(&opts.chapter, "chapter", "", "Chapter name")
	flags.StringVar(&opts.character, "character", "", "Character name")
	flags.BoolVar(&opts.verbs, "verbs", false, "List the behaviors")
	flags.BoolVar(&opts.modes, "modes", false, "List the modes")
	flags.BoolVar(&opts.safety, "safety", false, "List the safety rules")
	flags.BoolVar(&opts.tools, "tools", false, "List the tools")

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./xanadu.yaml or ~/.xanadu/xanadu.yaml)")
	cmd.PersistentFlags().StringVar(&opts.root, "root", config.DefaultConfig().Root, "directory holding the book sources")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	cmd.Version = version.Version
	cmd.SetVersionTemplate(fmt.Sprintf("xanadu %s\n", version.String()))

	return cmd
}

// run honors the first selector present on the command line. Lookup misses
// are printed as a result line; only failures to read the sources are errors.
func run(cmd *cobra.Command, opts *options, logger *zap.Logger) error {
	sel, ok := pick(cmd.Flags())
	if !ok {
		return cmd.Help()
	}

	cfg, err := config.Load(opts.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger.Debug("Dispatching lookup",
		zap.String("selector", sel.flag),
		zap.String("root", cfg.Root))

	req := &request{
		lib:     library.Open(cfg, logger),
		printer: query.NewPrinter(cmd.OutOrStdout(), opts.noColor),
		opts:    opts,
	}
	err = sel.run(req)
	if query.IsLookupError(err) {
		logger.Debug("Lookup missed", zap.String("selector", sel.flag), zap.Error(err))
		req.printer.Error(err)
		return nil
	}
	return err
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
