package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Flarenzy/hostreg/internal/domain"
	"github.com/Flarenzy/hostreg/internal/inventory"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go4.org/netipx"
)

func newCheckCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the inventory and report every rejected network or host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			entries, err := st.svc.ListNetworks(ctx)
			if err != nil {
				return err
			}
			summaries, err := inventory.Summarize(entries)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NETWORK\tFAMILY\tHOSTS\tRANGES")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", s.Name, s.Family, s.Hosts, formatRanges(s.Ranges))
			}
			if err = tw.Flush(); err != nil {
				return err
			}

			if st.loadErr != nil {
				fmt.Fprintf(out, "\n%d rejected:\n", st.report.Rejected)
				for _, e := range multierr.Errors(st.loadErr) {
					fmt.Fprintf(out, "  %s\n", e)
				}
				return fmt.Errorf("inventory check failed: %w", st.loadErr)
			}
			fmt.Fprintf(out, "\nok: %d networks, %d hosts\n", st.report.Networks, st.report.Hosts)
			return nil
		},
	}
}

func newListCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "list [network]",
		Short: "List the hosts of one network or of all networks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st.warnPartialLoad(ctx)

			var entries []domain.NetworkEntry
			if len(args) == 1 {
				entry, err := st.network(ctx, args[0])
				if err != nil {
					return err
				}
				entries = append(entries, entry)
			} else {
				var err error
				if entries, err = st.svc.ListNetworks(ctx); err != nil {
					return err
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NETWORK\tADDRESS\tFAMILY\tHOSTNAME")
			for _, entry := range entries {
				hosts, err := st.svc.ListHosts(ctx, entry.ID)
				if err != nil {
					return err
				}
				for _, h := range hosts {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", entry.Name, h.Address(), h.Family(), h.HostName())
				}
			}
			return tw.Flush()
		},
	}
}

func newLookupCommand(st *state) *cobra.Command {
	var ip, name string

	cmd := &cobra.Command{
		Use:   "lookup <network>",
		Short: "Find a host by address or by hostname",
		Long: `Find a host by address (--ip) or hostname (--name). Address lookups
never cross families: 10.0.0.1 does not match ::ffff:10.0.0.1. Hostname
lookups ignore case and surrounding whitespace.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st.warnPartialLoad(ctx)

			entry, err := st.network(ctx, args[0])
			if err != nil {
				return err
			}

			var host domain.Host
			if cmd.Flags().Changed("ip") {
				host, err = st.svc.GetHostByIP(ctx, entry.ID, ip)
			} else {
				host, err = st.svc.GetHostByName(ctx, entry.ID, name)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", host.Address(), host.Family(), host.HostName())
			return err
		},
	}

	cmd.Flags().StringVar(&ip, "ip", "", "Address to look up")
	cmd.Flags().StringVar(&name, "name", "", "Hostname to look up")
	cmd.MarkFlagsMutuallyExclusive("ip", "name")
	cmd.MarkFlagsOneRequired("ip", "name")
	return cmd
}

func newExportCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the loaded registry as an inventory document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st.warnPartialLoad(cmd.Context())
			return inventory.Export(cmd.Context(), st.svc, cmd.OutOrStdout())
		},
	}
}

func formatRanges(ranges []netipx.IPRange) string {
	if len(ranges) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		if r.From() == r.To() {
			parts = append(parts, r.From().String())
			continue
		}
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ", ")
}
