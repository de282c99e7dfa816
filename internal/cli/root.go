package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/infra/fsworkspace"
	"github.com/aalvaropc/bankcore/internal/infra/logger"
	"github.com/aalvaropc/bankcore/internal/infra/workspacefinder"
	"github.com/aalvaropc/bankcore/internal/ui/tui"
)

// rootOpts carries the persistent flags every subcommand reads.
type rootOpts struct {
	workspace string
	debug     bool

	cleanup func() error
}

func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and maps the outcome to a process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &rootOpts{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		logger.L().Error("cli.failed", "args", args, "err", err)
		fmt.Fprintf(stderr, "Error: %s\n", err)
	}
	if opts.cleanup != nil {
		_ = opts.cleanup()
	}
	return exitCode(err)
}

func newRootCmd(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bankcore",
		Short:         "bankcore: accounts, discounts and payments from a local workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			setupLogging(opts)
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                opts.debug,
			}

			ws, err := loadWorkspace(opts.workspace)
			switch {
			case err == nil:
				deps.WorkspaceRoot = ws.root
				deps.Accounts = ws.teller
				deps.Discounts = ws.discounts
				deps.Payments = ws.payments
			case isWorkspaceMissing(err):
				st, err := newStrategies(domain.DefaultConfig())
				if err != nil {
					return err
				}
				deps.Discounts = st.discounts
				deps.Payments = st.payments
			default:
				return err
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .bankcore/logs/bankcore.log")

	cmd.AddCommand(
		initCmd(),
		openCmd(opts),
		depositCmd(opts),
		withdrawCmd(opts),
		investCmd(opts),
		loanCmd(opts),
		bonusCmd(opts),
		accountsCmd(opts),
		discountCmd(opts),
		payCmd(opts),
		strategiesCmd(opts),
		versionCmd(),
	)
	return cmd
}

// setupLogging starts the file logger when a workspace is reachable. Commands that run
// outside a workspace log nowhere.
func setupLogging(opts *rootOpts) {
	root, err := resolveWorkspaceRoot(opts.workspace)
	if err != nil {
		return
	}

	mask := true
	if cfg, err := workspacefinder.LoadConfig(root); err == nil {
		mask = cfg.Masking.Enabled
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: opts.debug, MaskHolders: mask})
	if err == nil {
		opts.cleanup = cleanup
	}
}
