package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Flarenzy/hostreg/internal/app"
	"github.com/Flarenzy/hostreg/internal/domain"
	"github.com/Flarenzy/hostreg/internal/inventory"
	"github.com/spf13/cobra"
)

const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
)

// state is shared by the subcommands of one root command.
type state struct {
	inventoryPath string
	logLevel      string
	logFormat     string

	logger  *slog.Logger
	svc     domain.RegistryService
	report  inventory.Report
	loadErr error
}

func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "hostreg",
		Short: "In-memory registry of hosts grouped into networks",
		Long: `hostreg loads an inventory of networks and hosts into memory and
checks it: addresses and hostnames (case-insensitive) must be unique within a
network, and ipv4/ipv6 networks only accept hosts of their family.

Configuration comes from HOSTREG_INVENTORY, HOSTREG_LOG_LEVEL and
HOSTREG_LOG_FORMAT; flags take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.setup(cmd, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&st.inventoryPath, "inventory", "f", "", "Inventory file (YAML)")
	root.PersistentFlags().StringVar(&st.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&st.logFormat, "log-format", "", "Log format: text or json")
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newCheckCommand(st),
		newListCommand(st),
		newLookupCommand(st),
		newExportCommand(st),
	)
	return root
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrConflict):
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}

func (st *state) setup(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := app.LoadConfig()
	if err != nil && !st.flagsOverride(cmd) {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("inventory") {
		cfg.InventoryPath = st.inventoryPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = st.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = st.logFormat
	}

	st.logger, err = app.NewLogger(cfg, stderr)
	if err != nil {
		return err
	}

	svc, report, err := app.Bootstrap(cmd.Context(), cfg, st.logger)
	if svc == nil {
		return err
	}
	st.svc, st.report, st.loadErr = svc, report, err
	return nil
}

// flagsOverride reports whether the logging flags replace both env settings
// that LoadConfig validates.
func (st *state) flagsOverride(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("log-level") && cmd.Flags().Changed("log-format")
}

// warnPartialLoad is used by commands that can run on a partially loaded
// inventory.
func (st *state) warnPartialLoad(ctx context.Context) {
	if st.loadErr != nil {
		st.logger.WarnContext(ctx, "inventory partially loaded", "rejected", st.report.Rejected, "err", st.loadErr.Error())
	}
}

func (st *state) network(ctx context.Context, name string) (domain.NetworkEntry, error) {
	entry, err := st.svc.GetNetworkByName(ctx, name)
	if err != nil {
		return domain.NetworkEntry{}, fmt.Errorf("%q: %w", name, err)
	}
	return entry, nil
}
