package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"multi-ai/backend/internal/app"
)

func newProvidersCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the registered providers and whether they are ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.withApp(func(a *app.App) error {
				providers, err := a.Providers.List(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tDISPLAY NAME\tNEEDS KEY\tREADY")
				for _, p := range providers {
					fmt.Fprintf(tw, "%s\t%s\t%t\t%t\n", p.Name, p.DisplayName, p.RequiresCredential, p.Configured)
				}
				return tw.Flush()
			})
		},
	}
}

func newSetKeyCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "set-key <provider> [key]",
		Short: "Store an API key for a provider; omit the key to remove it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 2 {
				key = args[1]
			}
			return s.withApp(func(a *app.App) error {
				if err := a.Settings.SetAPIKey(cmd.Context(), args[0], key); err != nil {
					return err
				}
				if key == "" {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed key for %s\n", args[0])
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "saved key for %s\n", args[0])
				return err
			})
		},
	}
}
